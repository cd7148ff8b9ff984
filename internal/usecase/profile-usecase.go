package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/i7k15/ai-study-advisor/internal/session"
	"go.uber.org/zap"
)

type ProfileStorage interface {
	GetProfile(ctx context.Context, chatID int64) (model.UserProfile, error)
	SaveProfile(ctx context.Context, chatID int64, profile model.UserProfile) error
	GetStep(ctx context.Context, chatID int64) (model.OnboardingStep, error)
	SaveStep(ctx context.Context, chatID int64, step model.OnboardingStep) error
	DeleteUser(ctx context.Context, chatID int64) error
}

type ProfileUsecaseDeps struct {
	ProfileStorage ProfileStorage
	Transcripts    TranscriptStorage
	Sessions       *session.Store
	Logger         *zap.Logger
}

type ProfileUsecase struct {
	ProfileUsecaseDeps
}

func NewProfileUsecase(deps ProfileUsecaseDeps) *ProfileUsecase {
	return &ProfileUsecase{
		ProfileUsecaseDeps: deps,
	}
}

// LoadProfile never fails on missing or malformed records: the user gets
// the default profile instead.
func (p *ProfileUsecase) LoadProfile(ctx context.Context, chatID int64) (model.UserProfile, error) {
	profile, err := p.ProfileStorage.GetProfile(ctx, chatID)
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, model.ErrProfileDoesNotExist):
		return model.DefaultProfile(), nil
	case errors.Is(err, model.ErrProfileMalformed):
		p.Logger.Warn("stored profile is malformed, using defaults", zap.Int64("chat_id", chatID), zap.Error(err))
		return model.DefaultProfile(), nil
	default:
		return model.UserProfile{}, fmt.Errorf("failed to get profile: %w", err)
	}
}

// Session returns the live session of the chat, restoring it from storage
// when the registry has none.
func (p *ProfileUsecase) Session(ctx context.Context, chatID int64) (*session.Session, error) {
	if sess, ok := p.Sessions.Get(chatID); ok {
		return sess, nil
	}

	profile, err := p.LoadProfile(ctx, chatID)
	if err != nil {
		return nil, err
	}

	var transcript []model.ChatMessage
	if profile.SaveHistory {
		transcript, err = p.Transcripts.GetTranscript(ctx, chatID)
		if err != nil && !errors.Is(err, model.ErrTranscriptDoesNotExist) {
			p.Logger.Warn("failed to restore transcript", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}

	sess := p.Sessions.Add(session.New(chatID, profile, transcript))
	p.Logger.Debug(
		"session restored",
		zap.Int64("chat_id", chatID),
		zap.Stringer("session_id", sess.ID),
		zap.Int("messages", len(transcript)),
	)
	return sess, nil
}

func (p *ProfileUsecase) Step(ctx context.Context, chatID int64) (model.OnboardingStep, error) {
	step, err := p.ProfileStorage.GetStep(ctx, chatID)
	if err != nil && !errors.Is(err, model.ErrStepDoesNotExist) {
		return model.OnboardingStepLanguage, fmt.Errorf("failed to get onboarding step: %w", err)
	}
	return step, nil
}

func (p *ProfileUsecase) SetStep(ctx context.Context, chatID int64, step model.OnboardingStep) error {
	if err := p.ProfileStorage.SaveStep(ctx, chatID, step); err != nil {
		return fmt.Errorf("failed to save onboarding step: %w", err)
	}
	return nil
}

// Update applies mutate to the session's profile and persists the result.
// Turning history off also removes the stored transcript.
func (p *ProfileUsecase) Update(
	ctx context.Context,
	sess *session.Session,
	mutate func(profile *model.UserProfile),
) (model.UserProfile, error) {
	before := sess.Profile()
	profile := before
	mutate(&profile)
	if err := profile.Validate(); err != nil {
		return before, err
	}

	err := sess.Exclusive(
		func() error {
			sess.SetProfile(profile)
			if err := p.ProfileStorage.SaveProfile(ctx, sess.ChatID, profile); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			if before.SaveHistory && !profile.SaveHistory {
				if err := p.Transcripts.DeleteTranscript(ctx, sess.ChatID); err != nil {
					return fmt.Errorf("failed to delete transcript: %w", err)
				}
			}
			return nil
		},
	)
	return profile, err
}

func (p *ProfileUsecase) ClearHistory(ctx context.Context, sess *session.Session) error {
	return sess.Exclusive(
		func() error {
			sess.ClearTranscript()
			if err := p.Transcripts.DeleteTranscript(ctx, sess.ChatID); err != nil {
				return fmt.Errorf("failed to delete transcript: %w", err)
			}
			return nil
		},
	)
}

// Logout forgets everything stored about the chat. A request still in
// flight for the chat does not write its transcript back.
func (p *ProfileUsecase) Logout(ctx context.Context, chatID int64) error {
	forget := func() error {
		p.Sessions.Delete(chatID)
		if err := p.ProfileStorage.DeleteUser(ctx, chatID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if err := p.Transcripts.DeleteTranscript(ctx, chatID); err != nil {
			return fmt.Errorf("failed to delete transcript: %w", err)
		}
		return nil
	}

	var err error
	if sess, ok := p.Sessions.Get(chatID); ok {
		err = sess.Exclusive(
			func() error {
				sess.Close()
				return forget()
			},
		)
	} else {
		err = forget()
	}
	if err != nil {
		return err
	}
	p.Logger.Info("user logged out", zap.Int64("chat_id", chatID))
	return nil
}
