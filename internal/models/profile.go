package models

// RawProfile holds the raw questionnaire answers submitted during onboarding.
// Five trait ratings plus two free-text answers. Values are passed to the
// refinement prompt verbatim; no validation is performed on their content.
type RawProfile struct {
	Openness          string `json:"openness"`
	Conscientiousness string `json:"conscientiousness"`
	Extraversion      string `json:"extraversion"`
	Agreeableness     string `json:"agreeableness"`
	Neuroticism       string `json:"neuroticism"`
	Passions          string `json:"passions"`
	LifeGoals         string `json:"life_goals"`
}

// RefinedProfile is the structured output of the profile refinement call.
type RefinedProfile struct {
	ProfileSummary      string `json:"profile_summary"`
	GrowthOpportunities string `json:"growth_opportunities"`
}

// UserProfile is the persisted profile document, one per user. It is
// created or overwritten wholesale by the profile refinement service and
// read-only everywhere else.
type UserProfile struct {
	Summary       string `json:"summary" firestore:"summary"`
	Opportunities string `json:"opportunities" firestore:"opportunities"`
}
