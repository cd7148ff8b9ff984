package model

type OnboardingStep string

const (
	OnboardingStepLanguage  = OnboardingStep("language")
	OnboardingStepLogin     = OnboardingStep("login")
	OnboardingStepProfiling = OnboardingStep("profiling")
	OnboardingStepApp       = OnboardingStep("app")
)

// ParseOnboardingStep returns the language step for anything it does not know.
func ParseOnboardingStep(s string) OnboardingStep {
	switch OnboardingStep(s) {
	case OnboardingStepLogin:
		return OnboardingStepLogin
	case OnboardingStepProfiling:
		return OnboardingStepProfiling
	case OnboardingStepApp:
		return OnboardingStepApp
	default:
		return OnboardingStepLanguage
	}
}
