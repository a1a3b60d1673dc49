package outreach

// Message length options accepted by the drafting stage. All are soft word
// targets except LengthConnectionRequest, which carries a hard character
// ceiling imposed by the platform's connection-note limit.
const (
	LengthShort             = "short"
	LengthMedium            = "medium"
	LengthLong              = "long"
	LengthConnectionRequest = "Connection Request"
)

// ParseProfileRequest is the body of POST /parse_profile.
type ParseProfileRequest struct {
	HTMLContent string `json:"html_content"`

	// Optional per-request model overrides.
	Provider    string   `json:"provider,omitempty"`
	Model       string   `json:"model,omitempty"`
	Temperature *float32 `json:"temperature,omitempty"`
}

// GenerateMessageRequest is the body of POST /generate. UserData is the
// caller's own already-parsed profile as an untyped mapping; the target
// arrives as raw HTML and is parsed within the same pipeline run.
type GenerateMessageRequest struct {
	UserData         map[string]any `json:"user_data"`
	TargetHTML       string         `json:"target_html"`
	Tone             string         `json:"tone"`
	Length           string         `json:"length"`
	CallToAction     string         `json:"call_to_action"`
	ExtraInstruction string         `json:"extra_instruction,omitempty"`

	// Optional per-request model overrides.
	Provider    string   `json:"provider,omitempty"`
	Model       string   `json:"model,omitempty"`
	Temperature *float32 `json:"temperature,omitempty"`
}

// GenerateMessageResponse is the success body of POST /generate.
type GenerateMessageResponse struct {
	GeneratedMessage string `json:"generated_message"`
	Status           string `json:"status"`
}

// LegacyGenerateRequest is the body early extension clients still send to the
// legacy generate endpoint. Message carries raw profile HTML.
type LegacyGenerateRequest struct {
	Message   string `json:"message"`
	URL       string `json:"url"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
}

// LegacyGenerateResponse mirrors the historical response shape. Message
// duplicates GeneratedMessage for compatibility with clients that read
// either field.
type LegacyGenerateResponse struct {
	GeneratedMessage string `json:"generated_message"`
	Message          string `json:"message"`
	ProcessedURL     string `json:"processed_url"`
	Timestamp        string `json:"timestamp"`
}
