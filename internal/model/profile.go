package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/i7k15/ai-study-advisor/pkg/local"
)

type Theme string

const (
	ThemeLight = Theme("light")
	ThemeDark  = Theme("dark")
	ThemeAuto  = Theme("auto")
)

var Themes = []Theme{ThemeLight, ThemeDark, ThemeAuto}

type DetailLevel string

const (
	DetailLevelShort    = DetailLevel("short")
	DetailLevelMedium   = DetailLevel("medium")
	DetailLevelDetailed = DetailLevel("detailed")
)

var DetailLevels = []DetailLevel{DetailLevelShort, DetailLevelMedium, DetailLevelDetailed}

type UserProfile struct {
	Language          local.Language `validate:"oneof=ar en"`
	Theme             Theme          `validate:"oneof=light dark auto"`
	StudyLevel        string
	Major             string
	DefaultStyle      StudyMode `validate:"studymode"`
	DetailLevel       DetailLevel
	AllowGeneralChat  bool
	StrictSourcesOnly bool
	SaveHistory       bool
	Name              string
}

// DefaultProfile is the profile of a user seen for the first time.
func DefaultProfile() UserProfile {
	return UserProfile{
		Language:          local.Default,
		Theme:             ThemeAuto,
		DefaultStyle:      StudyModeAdvisor,
		DetailLevel:       DetailLevelMedium,
		AllowGeneralChat:  true,
		StrictSourcesOnly: false,
		SaveHistory:       true,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(
		"studymode", func(fl validator.FieldLevel) bool {
			return StudyMode(fl.Field().String()).IsValid()
		},
	)
	return v
}

// Validate checks the enumerated fields. DetailLevel is not checked: an
// unknown level is served with the medium instruction.
func (p UserProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrProfileMalformed, err)
	}
	return nil
}
