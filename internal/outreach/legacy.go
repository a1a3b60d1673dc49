package outreach

import (
	"fmt"
	"unicode/utf8"
)

const legacyTargetGreeting = "Hi! I'd love to connect and learn more about your experience. Would you be open to a brief chat?"

// LegacyGenerate reproduces the canned behavior early clients depend on: a
// fixed greeting for TARGET_PROFILE requests, otherwise an echo embedding the
// HTML character count (characters, not bytes). No model call is involved.
func LegacyGenerate(req LegacyGenerateRequest) LegacyGenerateResponse {
	msg := legacyTargetGreeting
	if req.Type != "TARGET_PROFILE" {
		msg = fmt.Sprintf("Generated response based on profile data (HTML length: %d)", utf8.RuneCountInString(req.Message))
	}

	return LegacyGenerateResponse{
		GeneratedMessage: msg,
		Message:          msg,
		ProcessedURL:     req.URL,
		Timestamp:        req.Timestamp,
	}
}
