package model

import "errors"

var (
	ErrProfileDoesNotExist    = errors.New("profile does not exist")
	ErrProfileMalformed       = errors.New("profile is malformed")
	ErrStepDoesNotExist       = errors.New("onboarding step does not exist")
	ErrTranscriptDoesNotExist = errors.New("transcript does not exist")
)
