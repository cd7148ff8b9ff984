package openai_tools

import (
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(text string) int {
	return len(strings.Fields(text))
}

func TestCountTokensEmpty(t *testing.T) {
	assert.Equal(t, tokensPerReply, countTokens(nil, words))
}

func TestCountTokensMessages(t *testing.T) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: "be brief"},
		{Role: openai.ChatMessageRoleUser, Content: "explain entropy please", Name: "lina"},
	}

	// reply + 2 messages + roles + contents + name
	expected := tokensPerReply + 2*tokensPerMessage + 2 + 2 + 3 + tokensPerName + 1
	assert.Equal(t, expected, countTokens(messages, words))
}

func TestCountTokensSkipsImageParts(t *testing.T) {
	messages := []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: "what is shown"},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: "data:image/png;base64,AAAA"},
				},
			},
		},
	}

	assert.Equal(t, tokensPerReply+tokensPerMessage+1+3, countTokens(messages, words))
}

func TestCountTokenFallsBackForUnknownModel(t *testing.T) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: "Explain Newton's laws"},
	}

	known, err := CountToken(messages, "gpt-4")
	if err != nil {
		t.Skipf("tiktoken encoding unavailable: %v", err)
	}
	unknown, err := CountToken(messages, "study-model-x")
	require.NoError(t, err)

	// gpt-4 uses cl100k_base, the fallback encoding.
	assert.Equal(t, known, unknown)
	assert.Greater(t, known, tokensPerReply+tokensPerMessage)

	longer, err := CountToken(
		append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "Three laws."}),
		"gpt-4",
	)
	require.NoError(t, err)
	assert.Greater(t, longer, known)
}
