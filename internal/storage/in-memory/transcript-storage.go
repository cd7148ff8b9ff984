package in_memory

import (
	"context"
	"sync"

	"github.com/i7k15/ai-study-advisor/internal/model"
)

type TranscriptStorage struct {
	mu          sync.RWMutex
	transcripts map[int64][]model.ChatMessage
}

func NewTranscriptStorage() *TranscriptStorage {
	return &TranscriptStorage{
		transcripts: make(map[int64][]model.ChatMessage),
	}
}

func (t *TranscriptStorage) GetTranscript(_ context.Context, chatID int64) ([]model.ChatMessage, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	messages, ok := t.transcripts[chatID]
	if !ok {
		return nil, model.ErrTranscriptDoesNotExist
	}
	return append([]model.ChatMessage(nil), messages...), nil
}

func (t *TranscriptStorage) SaveTranscript(_ context.Context, chatID int64, messages []model.ChatMessage) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.transcripts[chatID] = append([]model.ChatMessage(nil), messages...)
	return nil
}

func (t *TranscriptStorage) DeleteTranscript(_ context.Context, chatID int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.transcripts, chatID)
	return nil
}
