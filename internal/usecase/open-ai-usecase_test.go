package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/i7k15/ai-study-advisor/config"
	"github.com/i7k15/ai-study-advisor/internal/prompt"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenAIMessages(t *testing.T) {
	messages, err := openAIMessages(
		prompt.Request{
			SystemInstruction: "rules",
			Parts: []prompt.Part{
				{Text: "topic"},
				{InlineData: &prompt.InlineData{MimeType: "image/png", Data: []byte("png")}},
				{InlineData: &prompt.InlineData{MimeType: "text/plain", Data: []byte("notes")}},
			},
		},
	)
	require.NoError(t, err)

	require.Len(t, messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, messages[0].Role)
	assert.Equal(t, "rules", messages[0].Content)

	user := messages[1]
	assert.Equal(t, openai.ChatMessageRoleUser, user.Role)
	require.Len(t, user.MultiContent, 3)
	assert.Equal(t, "topic", user.MultiContent[0].Text)
	assert.Equal(t, openai.ChatMessagePartTypeImageURL, user.MultiContent[1].Type)
	assert.Equal(t, "data:image/png;base64,cG5n", user.MultiContent[1].ImageURL.URL)
	assert.Equal(t, "notes", user.MultiContent[2].Text)
}

func TestOpenAIMessagesRejectsBrokenPDF(t *testing.T) {
	_, err := openAIMessages(
		prompt.Request{
			Parts: []prompt.Part{
				{InlineData: &prompt.InlineData{MimeType: "application/pdf", Data: []byte("not a pdf")}},
			},
		},
	)
	assert.Error(t, err)
}

func TestOpenAIGenerateStreamsAnswer(t *testing.T) {
	var received openai.ChatCompletionRequest
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

				w.Header().Set("Content-Type", "text/event-stream")
				for _, chunk := range []string{"Hello", ", student"} {
					_, _ = fmt.Fprintf(
						w,
						"data: {\"id\":\"1\",\"object\":\"chat.completion.chunk\",\"model\":\"test\",\"choices\":[{\"index\":0,\"delta\":{\"content\":%q}}]}\n\n",
						chunk,
					)
				}
				_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
			},
		),
	)
	defer server.Close()

	gpt := NewOpenAIUsecase(
		config.LLM{OpenAIAPIKey: "key", OpenAIBaseURL: server.URL + "/v1", Model: "test"},
		zap.NewNop(),
	)

	answer, err := gpt.Generate(
		context.Background(), prompt.Request{
			SystemInstruction: "rules",
			Parts:             []prompt.Part{{Text: "topic"}},
			Temperature:       prompt.Temperature,
			TopP:              prompt.TopP,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "Hello, student", answer)
	assert.Equal(t, "test", received.Model)
	assert.True(t, received.Stream)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, "rules", received.Messages[0].Content)
}

func TestOpenAIGenerateWrapsProviderError(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = fmt.Fprint(w, `{"error":{"message":"quota exceeded","type":"rate_limit"}}`)
			},
		),
	)
	defer server.Close()

	gpt := NewOpenAIUsecase(config.LLM{OpenAIAPIKey: "key", OpenAIBaseURL: server.URL + "/v1"}, zap.NewNop())

	_, err := gpt.Generate(context.Background(), prompt.Request{Parts: []prompt.Part{{Text: "topic"}}})

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "openai", providerErr.Provider)
	assert.Contains(t, providerErr.Err.Error(), "quota exceeded")
}
