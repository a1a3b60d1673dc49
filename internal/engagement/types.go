package engagement

// SeniorityDynamic classifies the relative professional standing between the
// user and the target profile.
type SeniorityDynamic string

const (
	SeniorityPeerToPeer     SeniorityDynamic = "Peer to Peer"
	SeniorityJuniorToSenior SeniorityDynamic = "Junior to Senior"
	SenioritySeniorToJunior SeniorityDynamic = "Senior to Junior"
)

// KnownSeniority reports whether s is one of the three fixed labels.
func KnownSeniority(s SeniorityDynamic) bool {
	switch s {
	case SeniorityPeerToPeer, SeniorityJuniorToSenior, SenioritySeniorToJunior:
		return true
	}
	return false
}

// Confidence is the banded strength of a connection vector.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// ConfidenceForScore maps a 1-10 score to its confidence band:
// 8-10 High, 5-7 Medium, 1-4 Low. Scores outside 1-10 yield an empty band.
func ConfidenceForScore(score int) Confidence {
	switch {
	case score >= 8 && score <= 10:
		return ConfidenceHigh
	case score >= 5 && score <= 7:
		return ConfidenceMedium
	case score >= 1 && score <= 4:
		return ConfidenceLow
	}
	return ""
}

// The four vector categories the analysis stage enumerates. The type field is
// an open set, so these are guidance for prompts rather than a validation
// whitelist.
const (
	VectorTimelyHook       = "Timely Hook"
	VectorValueProposition = "Value Proposition"
	VectorSharedExperience = "Shared Experience"
	VectorCommonGround     = "Common Ground"
)

// ConnectionVector is one ranked, scored reason two people might engage.
type ConnectionVector struct {
	Rank             int        `json:"rank"`
	Type             string     `json:"type"`
	Confidence       Confidence `json:"confidence"`
	Score            int        `json:"score,omitempty"`
	Detail           string     `json:"detail"`
	ActionableOpener string     `json:"actionable_opener"`
}

// EngagementBrief is the analysis result for a profile pair: a seniority
// classification plus at most three ranked connection vectors.
type EngagementBrief struct {
	SeniorityDynamic  SeniorityDynamic   `json:"seniority_dynamic"`
	ConnectionVectors []ConnectionVector `json:"connection_vectors"`
}
