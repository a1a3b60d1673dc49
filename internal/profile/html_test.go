package profile

import (
	"strings"
	"testing"
)

func TestCleanProfileHTMLStripsScripts(t *testing.T) {
	raw := `<html><head><script>window.tracking = true;</script>
	<style>.hidden { display: none; }</style></head>
	<body><h1>Jane Doe</h1><p>Platform Engineer at Acme</p></body></html>`

	got := CleanProfileHTML(raw)

	if strings.Contains(got, "tracking") {
		t.Errorf("script content leaked into cleaned text: %q", got)
	}
	if strings.Contains(got, "display") {
		t.Errorf("style content leaked into cleaned text: %q", got)
	}
	if !strings.Contains(got, "Jane Doe") || !strings.Contains(got, "Platform Engineer at Acme") {
		t.Errorf("visible text missing from cleaned output: %q", got)
	}
}

func TestCleanProfileHTMLEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		if got := CleanProfileHTML(in); got != "" {
			t.Errorf("CleanProfileHTML(%q) = %q, want empty", in, got)
		}
	}
}

func TestCleanProfileHTMLPreservesTextOrder(t *testing.T) {
	raw := `<div><span>Experience</span><ul><li>Engineer, 2020</li><li>Senior Engineer, 2023</li></ul></div>`

	got := CleanProfileHTML(raw)

	first := strings.Index(got, "Engineer, 2020")
	second := strings.Index(got, "Senior Engineer, 2023")
	if first == -1 || second == -1 || first > second {
		t.Errorf("text order not preserved: %q", got)
	}
}

func TestCleanProfileHTMLCollapsesWhitespace(t *testing.T) {
	raw := "<p>Name</p>\n\n\n\n\n<p>Headline    with     gaps</p>"

	got := CleanProfileHTML(raw)

	if strings.Contains(got, "\n\n\n") {
		t.Errorf("newline runs not collapsed: %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("space runs not collapsed: %q", got)
	}
}
