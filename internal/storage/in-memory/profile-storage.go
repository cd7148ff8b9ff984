package in_memory

import (
	"context"
	"sync"

	"github.com/i7k15/ai-study-advisor/internal/model"
)

type ProfileStorage struct {
	mu       sync.RWMutex
	profiles map[int64]model.UserProfile
	steps    map[int64]model.OnboardingStep
}

func NewProfileStorage() *ProfileStorage {
	return &ProfileStorage{
		profiles: make(map[int64]model.UserProfile),
		steps:    make(map[int64]model.OnboardingStep),
	}
}

func (p *ProfileStorage) GetProfile(_ context.Context, chatID int64) (model.UserProfile, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	profile, ok := p.profiles[chatID]
	if !ok {
		return model.UserProfile{}, model.ErrProfileDoesNotExist
	}
	return profile, nil
}

func (p *ProfileStorage) SaveProfile(_ context.Context, chatID int64, profile model.UserProfile) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profiles[chatID] = profile
	return nil
}

func (p *ProfileStorage) GetStep(_ context.Context, chatID int64) (model.OnboardingStep, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	step, ok := p.steps[chatID]
	if !ok {
		return model.OnboardingStepLanguage, model.ErrStepDoesNotExist
	}
	return step, nil
}

func (p *ProfileStorage) SaveStep(_ context.Context, chatID int64, step model.OnboardingStep) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.steps[chatID] = step
	return nil
}

func (p *ProfileStorage) DeleteUser(_ context.Context, chatID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.profiles, chatID)
	delete(p.steps, chatID)
	return nil
}
