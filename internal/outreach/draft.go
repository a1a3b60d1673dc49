package outreach

import (
	"regexp"
	"strings"
	"unicode"
)

// connectionRequestMaxChars is the platform ceiling for connection notes.
// This is the only length with hard enforcement; the word targets below are
// requested of the model but not enforced.
const connectionRequestMaxChars = 200

// placeholderPattern matches unresolved template markers like {tone} or
// {first_name} that a model sometimes leaves in its output.
var placeholderPattern = regexp.MustCompile(`\{[A-Za-z0-9_][A-Za-z0-9_ \-]*\}`)

// wordTarget returns the word range requested from the model for a length
// option. Connection requests are framed in characters instead.
func wordTarget(length string) string {
	switch length {
	case LengthLong:
		return "150-200 words"
	case LengthShort:
		return "25-50 words"
	case LengthConnectionRequest:
		return "under 200 characters total"
	default:
		return "75-100 words"
	}
}

// StripPlaceholders removes unresolved template markers and tidies the
// whitespace left behind.
func StripPlaceholders(text string) string {
	cleaned := placeholderPattern.ReplaceAllString(text, "")
	cleaned = regexp.MustCompile(`[ \t]{2,}`).ReplaceAllString(cleaned, " ")
	cleaned = regexp.MustCompile(` +([.,!?;:])`).ReplaceAllString(cleaned, "$1")
	return strings.TrimSpace(cleaned)
}

// EnforceLength applies the hard ceiling for connection requests, truncating
// at the last word boundary that fits. Other lengths pass through untouched.
func EnforceLength(text, length string) string {
	if length != LengthConnectionRequest {
		return text
	}

	runes := []rune(text)
	if len(runes) <= connectionRequestMaxChars {
		return text
	}

	cut := connectionRequestMaxChars
	for cut > 0 && !unicode.IsSpace(runes[cut]) {
		cut--
	}
	if cut == 0 {
		cut = connectionRequestMaxChars
	}

	return strings.TrimRight(string(runes[:cut]), " \t\n.,;:-")
}

// FinalizeDraft applies all server-side drafting policy to raw model output.
func FinalizeDraft(text, length string) string {
	return EnforceLength(StripPlaceholders(strings.TrimSpace(text)), length)
}
