package key_value

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/redis/go-redis/v9"
)

type messageInternal struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Mode    string   `json:"mode"`
	Files   []string `json:"files,omitempty"`
	Failed  bool     `json:"failed,omitempty"`
}

type transcriptInternal struct {
	TranscriptID string            `json:"transcript_id"`
	ChatID       int64             `json:"chat_id"`
	Messages     []messageInternal `json:"messages"`
}

type TranscriptStorage struct {
	rdb *redis.Client
}

func NewTranscriptStorage(rdb *redis.Client) *TranscriptStorage {
	return &TranscriptStorage{
		rdb: rdb,
	}
}

// GetTranscript skips stored messages with an unknown role.
func (t *TranscriptStorage) GetTranscript(ctx context.Context, chatID int64) ([]model.ChatMessage, error) {
	transcriptInt, err := t.getTranscriptInt(ctx, chatID)
	if err != nil {
		return nil, err
	}
	messages := make([]model.ChatMessage, 0, len(transcriptInt.Messages))
	for _, msg := range transcriptInt.Messages {
		role, ok := model.ParseRole(msg.Role)
		if !ok {
			continue
		}
		messages = append(
			messages, model.ChatMessage{
				Role:    role,
				Content: msg.Content,
				Mode:    model.StudyMode(msg.Mode),
				Files:   msg.Files,
				Failed:  msg.Failed,
			},
		)
	}
	return messages, nil
}

func (t *TranscriptStorage) SaveTranscript(ctx context.Context, chatID int64, messages []model.ChatMessage) error {
	transcriptInt, err := t.getTranscriptInt(ctx, chatID)
	if err != nil {
		if !errors.Is(err, model.ErrTranscriptDoesNotExist) {
			return fmt.Errorf("failed to get transcript: %w", err)
		}
		transcriptInt = transcriptInternal{
			TranscriptID: uuid.New().String(),
			ChatID:       chatID,
		}
	}
	transcriptInt.Messages = make([]messageInternal, 0, len(messages))
	for _, msg := range messages {
		transcriptInt.Messages = append(
			transcriptInt.Messages, messageInternal{
				Role:    string(msg.Role),
				Content: msg.Content,
				Mode:    string(msg.Mode),
				Files:   msg.Files,
				Failed:  msg.Failed,
			},
		)
	}
	return t.setTranscriptInt(ctx, chatID, transcriptInt)
}

func (t *TranscriptStorage) DeleteTranscript(ctx context.Context, chatID int64) error {
	transcriptKey := getTranscriptKey(chatID)
	if err := t.rdb.Del(ctx, transcriptKey).Err(); err != nil {
		return fmt.Errorf("failed to delete transcript %s: %w", transcriptKey, err)
	}
	return nil
}

func (t *TranscriptStorage) getTranscriptInt(ctx context.Context, chatID int64) (transcriptInternal, error) {
	transcriptKey := getTranscriptKey(chatID)
	transcriptRaw, err := t.rdb.Get(ctx, transcriptKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return transcriptInternal{}, model.ErrTranscriptDoesNotExist
		}
		return transcriptInternal{}, fmt.Errorf("failed to get transcript %s: %w", transcriptKey, err)
	}
	var transcriptInt transcriptInternal
	if err = json.Unmarshal([]byte(transcriptRaw), &transcriptInt); err != nil {
		return transcriptInternal{}, fmt.Errorf("failed to unmarshal transcript %s: %w", transcriptKey, err)
	}
	return transcriptInt, nil
}

func (t *TranscriptStorage) setTranscriptInt(ctx context.Context, chatID int64, transcriptInt transcriptInternal) error {
	transcriptJSON, err := json.Marshal(transcriptInt)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}
	transcriptKey := getTranscriptKey(chatID)
	if err = t.rdb.Set(ctx, transcriptKey, transcriptJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save transcript %s: %w", transcriptKey, err)
	}
	return nil
}

func getTranscriptKey(chatID int64) string {
	return fmt.Sprintf("transcript:%d", chatID)
}
