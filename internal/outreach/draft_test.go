package outreach

import (
	"strings"
	"testing"
)

func TestStripPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"no placeholders",
			"Great to meet you, Alex.",
			"Great to meet you, Alex.",
		},
		{
			"single marker",
			"Hi {first_name}, loved your post.",
			"Hi, loved your post.",
		},
		{
			"marker with spaces",
			"Your work at {company name} stands out.",
			"Your work at stands out.",
		},
		{
			"multiple markers",
			"Hi {name}, your take on {topic} resonated.",
			"Hi, your take on resonated.",
		},
		{
			"json braces untouched",
			`The payload {"key": "value"} stays intact.`,
			`The payload {"key": "value"} stays intact.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripPlaceholders(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnforceLengthConnectionRequest(t *testing.T) {
	long := strings.Repeat("word ", 60)

	got := EnforceLength(long, LengthConnectionRequest)
	if n := len([]rune(got)); n > 200 {
		t.Fatalf("expected at most 200 characters, got %d", n)
	}
	if strings.HasSuffix(got, " ") {
		t.Error("expected trailing whitespace trimmed")
	}
	// Truncation must land on a word boundary, not mid-word.
	for _, w := range strings.Fields(got) {
		if w != "word" {
			t.Fatalf("truncation split a word: %q", w)
		}
	}
}

func TestEnforceLengthShortInputUntouched(t *testing.T) {
	msg := "Would love to connect."
	if got := EnforceLength(msg, LengthConnectionRequest); got != msg {
		t.Errorf("short message changed: %q", got)
	}
}

func TestEnforceLengthOtherLengthsUntouched(t *testing.T) {
	long := strings.Repeat("word ", 100)
	if got := EnforceLength(long, LengthLong); got != long {
		t.Error("non-connection-request lengths must pass through unchanged")
	}
}

func TestFinalizeDraft(t *testing.T) {
	raw := "  Hi {first_name}, your post caught my eye. Would you be open to a chat?  "
	want := "Hi, your post caught my eye. Would you be open to a chat?"
	if got := FinalizeDraft(raw, LengthMedium); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWordTarget(t *testing.T) {
	tests := []struct {
		length string
		want   string
	}{
		{LengthShort, "25-50 words"},
		{LengthMedium, "75-100 words"},
		{LengthLong, "150-200 words"},
		{LengthConnectionRequest, "under 200 characters total"},
		{"", "75-100 words"},
		{"unknown", "75-100 words"},
	}

	for _, tt := range tests {
		if got := wordTarget(tt.length); got != tt.want {
			t.Errorf("wordTarget(%q) = %q, want %q", tt.length, got, tt.want)
		}
	}
}
