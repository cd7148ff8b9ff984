package key_value

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/i7k15/ai-study-advisor/pkg/local"
	"github.com/redis/go-redis/v9"
)

// profileInternal uses the camelCase field names of the web client record.
type profileInternal struct {
	Language          string `json:"language"`
	Theme             string `json:"theme"`
	StudyLevel        string `json:"studyLevel,omitempty"`
	Major             string `json:"major,omitempty"`
	DefaultStyle      string `json:"defaultStyle"`
	DetailLevel       string `json:"detailLevel"`
	AllowGeneralChat  bool   `json:"allowGeneralChat"`
	StrictSourcesOnly bool   `json:"strictSourcesOnly"`
	SaveHistory       bool   `json:"saveHistory"`
	Name              string `json:"name,omitempty"`
}

type ProfileStorage struct {
	rdb *redis.Client
}

func NewProfileStorage(rdb *redis.Client) *ProfileStorage {
	return &ProfileStorage{
		rdb: rdb,
	}
}

// GetProfile returns model.ErrProfileMalformed when the stored record cannot
// be decoded or holds values outside the known enumerations.
func (p *ProfileStorage) GetProfile(ctx context.Context, chatID int64) (model.UserProfile, error) {
	profileKey := getProfileKey(chatID)
	profileRaw, err := p.rdb.Get(ctx, profileKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.UserProfile{}, model.ErrProfileDoesNotExist
		}
		return model.UserProfile{}, fmt.Errorf("failed to get profile %s: %w", profileKey, err)
	}
	var profileInt profileInternal
	if err = json.Unmarshal([]byte(profileRaw), &profileInt); err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: failed to unmarshal profile %s: %v", model.ErrProfileMalformed, profileKey, err)
	}
	profile := model.UserProfile{
		Language:          local.Language(profileInt.Language),
		Theme:             model.Theme(profileInt.Theme),
		StudyLevel:        profileInt.StudyLevel,
		Major:             profileInt.Major,
		DefaultStyle:      model.StudyMode(profileInt.DefaultStyle),
		DetailLevel:       model.DetailLevel(profileInt.DetailLevel),
		AllowGeneralChat:  profileInt.AllowGeneralChat,
		StrictSourcesOnly: profileInt.StrictSourcesOnly,
		SaveHistory:       profileInt.SaveHistory,
		Name:              profileInt.Name,
	}
	if err = profile.Validate(); err != nil {
		return model.UserProfile{}, fmt.Errorf("invalid profile %s: %w", profileKey, err)
	}
	return profile, nil
}

func (p *ProfileStorage) SaveProfile(ctx context.Context, chatID int64, profile model.UserProfile) error {
	profileInt := profileInternal{
		Language:          string(profile.Language),
		Theme:             string(profile.Theme),
		StudyLevel:        profile.StudyLevel,
		Major:             profile.Major,
		DefaultStyle:      string(profile.DefaultStyle),
		DetailLevel:       string(profile.DetailLevel),
		AllowGeneralChat:  profile.AllowGeneralChat,
		StrictSourcesOnly: profile.StrictSourcesOnly,
		SaveHistory:       profile.SaveHistory,
		Name:              profile.Name,
	}
	profileJSON, err := json.Marshal(profileInt)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	profileKey := getProfileKey(chatID)
	if err = p.rdb.Set(ctx, profileKey, profileJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", profileKey, err)
	}
	return nil
}

func (p *ProfileStorage) GetStep(ctx context.Context, chatID int64) (model.OnboardingStep, error) {
	stepKey := getStepKey(chatID)
	stepRaw, err := p.rdb.Get(ctx, stepKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.OnboardingStepLanguage, model.ErrStepDoesNotExist
		}
		return model.OnboardingStepLanguage, fmt.Errorf("failed to get onboarding step %s: %w", stepKey, err)
	}
	return model.ParseOnboardingStep(stepRaw), nil
}

func (p *ProfileStorage) SaveStep(ctx context.Context, chatID int64, step model.OnboardingStep) error {
	stepKey := getStepKey(chatID)
	if err := p.rdb.Set(ctx, stepKey, string(step), 0).Err(); err != nil {
		return fmt.Errorf("failed to save onboarding step %s: %w", stepKey, err)
	}
	return nil
}

func (p *ProfileStorage) DeleteUser(ctx context.Context, chatID int64) error {
	if err := p.rdb.Del(ctx, getProfileKey(chatID), getStepKey(chatID)).Err(); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", chatID, err)
	}
	return nil
}

func getProfileKey(chatID int64) string {
	return fmt.Sprintf("user_profile:%d", chatID)
}

func getStepKey(chatID int64) string {
	return fmt.Sprintf("onboarding_step:%d", chatID)
}
