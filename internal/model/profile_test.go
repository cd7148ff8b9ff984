package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfileIsValid(t *testing.T) {
	profile := DefaultProfile()

	require.NoError(t, profile.Validate())
	assert.Equal(t, StudyModeAdvisor, profile.DefaultStyle)
	assert.Equal(t, DetailLevelMedium, profile.DetailLevel)
	assert.True(t, profile.SaveHistory)
	assert.False(t, profile.StrictSourcesOnly)
}

func TestProfileValidateRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *UserProfile)
	}{
		{"language", func(p *UserProfile) { p.Language = "fr" }},
		{"theme", func(p *UserProfile) { p.Theme = "sepia" }},
		{"default style", func(p *UserProfile) { p.DefaultStyle = "POETRY" }},
		{"empty default style", func(p *UserProfile) { p.DefaultStyle = "" }},
	}
	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				profile := DefaultProfile()
				tt.mutate(&profile)
				assert.ErrorIs(t, profile.Validate(), ErrProfileMalformed)
			},
		)
	}
}

func TestProfileValidateAcceptsUnknownDetailLevel(t *testing.T) {
	profile := DefaultProfile()
	profile.DetailLevel = "verbose"

	assert.NoError(t, profile.Validate())
}

func TestStudyModesAreValidAndUnique(t *testing.T) {
	seen := make(map[StudyMode]struct{})
	for _, mode := range StudyModes {
		assert.True(t, mode.IsValid())
		_, dup := seen[mode]
		assert.False(t, dup, "duplicate mode %s", mode)
		seen[mode] = struct{}{}
	}
	assert.Len(t, seen, 12)
	assert.False(t, StudyMode("CHESS").IsValid())
}

func TestIsAcceptedMimeType(t *testing.T) {
	assert.True(t, IsAcceptedMimeType("application/pdf"))
	assert.True(t, IsAcceptedMimeType("image/png"))
	assert.True(t, IsAcceptedMimeType("text/plain; charset=utf-8"))
	assert.False(t, IsAcceptedMimeType("application/zip"))
	assert.False(t, IsAcceptedMimeType(""))
}

func TestParseOnboardingStep(t *testing.T) {
	assert.Equal(t, OnboardingStepApp, ParseOnboardingStep("app"))
	assert.Equal(t, OnboardingStepLanguage, ParseOnboardingStep("settings"))
	assert.Equal(t, OnboardingStepLanguage, ParseOnboardingStep(""))
}
