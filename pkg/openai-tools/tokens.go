package openai_tools

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"
)

const (
	tokensPerMessage = 3
	tokensPerName    = 1
	tokensPerReply   = 3
)

// CountToken estimates the prompt size of messages for model. Image parts
// are not counted.
func CountToken(messages []openai.ChatCompletionMessage, model string) (int, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoding, err = tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
		if err != nil {
			return 0, fmt.Errorf("failed to get encoding: %w", err)
		}
	}

	return countTokens(
		messages, func(text string) int {
			return len(encoding.Encode(text, nil, nil))
		},
	), nil
}

func countTokens(messages []openai.ChatCompletionMessage, encode func(text string) int) int {
	count := tokensPerReply
	for _, message := range messages {
		count += tokensPerMessage
		count += encode(message.Role)
		count += encode(message.Content)
		for _, part := range message.MultiContent {
			if part.Type == openai.ChatMessagePartTypeText {
				count += encode(part.Text)
			}
		}
		if message.Name != "" {
			count += tokensPerName
			count += encode(message.Name)
		}
	}
	return count
}
