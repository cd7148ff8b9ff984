package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/i7k15/ai-study-advisor/internal/catalog"
	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/i7k15/ai-study-advisor/internal/prompt"
	"github.com/i7k15/ai-study-advisor/internal/session"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Generator submits one composed request to the model provider.
type Generator interface {
	Generate(ctx context.Context, req prompt.Request) (string, error)
}

// ProviderError is a failed generation call.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type TranscriptStorage interface {
	GetTranscript(ctx context.Context, chatID int64) ([]model.ChatMessage, error)
	SaveTranscript(ctx context.Context, chatID int64, messages []model.ChatMessage) error
	DeleteTranscript(ctx context.Context, chatID int64) error
}

type StudyUsecaseDeps struct {
	Generator   Generator
	Transcripts TranscriptStorage
	Logger      *zap.Logger
}

type StudyUsecase struct {
	StudyUsecaseDeps
	requestTimeout time.Duration
}

func NewStudyUsecase(deps StudyUsecaseDeps, requestTimeout time.Duration) *StudyUsecase {
	return &StudyUsecase{
		StudyUsecaseDeps: deps,
		requestTimeout:   requestTimeout,
	}
}

type SendInput struct {
	Topic   string
	Mode    model.StudyMode
	Files   []model.AttachedFile
	Profile model.UserProfile
}

// Turn is the outcome of one accepted send.
type Turn struct {
	Question model.ChatMessage
	Answer   model.ChatMessage
	Err      error
}

// SendDraft sends topic together with the session's draft attachments,
// using the session's current mode and profile. The draft is taken in the
// same step that starts the request.
func (s *StudyUsecase) SendDraft(ctx context.Context, sess *session.Session, topic string) (Turn, bool) {
	return s.send(
		ctx, sess, SendInput{
			Topic:   topic,
			Mode:    sess.Mode(),
			Profile: sess.Profile(),
		}, true,
	)
}

// Send runs one request/response cycle. It returns false without touching
// the session when there is nothing to send or a request is in flight.
// Every failure after that point ends up as the assistant message of the turn.
func (s *StudyUsecase) Send(ctx context.Context, sess *session.Session, in SendInput) (Turn, bool) {
	return s.send(ctx, sess, in, false)
}

func (s *StudyUsecase) send(ctx context.Context, sess *session.Session, in SendInput, withDraft bool) (Turn, bool) {
	var (
		files    []model.AttachedFile
		question model.ChatMessage
	)
	ticket, ok := sess.Begin(
		func(draft []model.AttachedFile) (model.ChatMessage, bool) {
			files = append([]model.AttachedFile(nil), in.Files...)
			if withDraft {
				files = append(files, draft...)
			}
			if strings.TrimSpace(in.Topic) == "" && len(files) == 0 {
				return model.ChatMessage{}, false
			}
			question = newQuestion(in, files)
			return question, true
		}, in.Profile.SaveHistory,
	)
	if !ok {
		return Turn{}, false
	}

	log := s.Logger.With(
		zap.Int64("chat_id", sess.ChatID),
		zap.Stringer("session_id", sess.ID),
		zap.String("mode", string(in.Mode)),
	)
	started := time.Now()

	text, err := s.generate(ctx, in.Topic, in.Mode, files, in.Profile)
	var answer model.ChatMessage
	switch {
	case err != nil:
		log.Warn("generation failed", zap.Error(err), zap.Int("files", len(files)))
		answer = model.NewAssistantMessage(failureContent(err, in.Profile), in.Mode, true)
	case text == "":
		log.Warn("generation returned empty result")
		answer = model.NewAssistantMessage(MessageEmptyResult, in.Mode, true)
	default:
		log.Info(
			"generation finished",
			zap.Int("files", len(files)),
			zap.Int("answer_len", len(text)),
			zap.Duration("took", time.Since(started)),
		)
		answer = model.NewAssistantMessage(text, in.Mode, false)
	}

	if !sess.Finish(ticket, answer) {
		log.Info("transcript changed during generation, reply not recorded")
	}
	if s.Transcripts != nil {
		saveErr := sess.Persist(
			ticket, func(profile model.UserProfile, transcript []model.ChatMessage) error {
				if !profile.SaveHistory {
					return nil
				}
				return s.Transcripts.SaveTranscript(ctx, sess.ChatID, transcript)
			},
		)
		if saveErr != nil {
			log.Error("failed to save transcript", zap.Error(saveErr))
		}
	}

	return Turn{Question: question, Answer: answer, Err: err}, true
}

func newQuestion(in SendInput, files []model.AttachedFile) model.ChatMessage {
	content := in.Topic
	if content == "" {
		content = TextAnalyzeAttachedFiles.Text(in.Profile.Language)
	}
	fileNames := lo.Map(
		files, func(f model.AttachedFile, _ int) string {
			return f.FileName
		},
	)
	return model.NewUserMessage(content, in.Mode, fileNames)
}

func (s *StudyUsecase) generate(
	ctx context.Context,
	topic string,
	mode model.StudyMode,
	files []model.AttachedFile,
	profile model.UserProfile,
) (string, error) {
	req, err := prompt.Compose(topic, mode, files, profile)
	if err != nil {
		return "", err
	}
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}
	return s.Generator.Generate(ctx, req)
}

// failureContent picks the text shown for a failed turn: the provider's own
// message when it has one, the generic localized text otherwise.
func failureContent(err error, profile model.UserProfile) string {
	generic := TextGenericFailure.Text(profile.Language)
	if errors.Is(err, catalog.ErrUnknownMode) {
		return generic
	}
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		if providerErr.Err == nil {
			return generic
		}
		err = providerErr.Err
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return generic
}
