package domain

// OnboardingAnswers carries the questionnaire results that drive plan
// generation. All fields are required; validation happens in the
// onboarding service before anything is persisted.
type OnboardingAnswers struct {
	Age          int    `json:"age"`
	Weight       int    `json:"weight"` // kilograms
	Goal         Goal   `json:"goal"`
	FitnessLevel string `json:"fitnessLevel"`
	Equipment    string `json:"equipment"`
}
