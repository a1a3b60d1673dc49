package pipeline

import "strings"

// ExtractJSONSpan locates the JSON object inside raw model output. Models are
// instructed to emit bare JSON but routinely wrap it in prose or markdown
// fencing, so the caller takes the longest span from the first '{' to the
// last '}'.
func ExtractJSONSpan(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", ErrUnparseableOutput
	}

	return raw[start : end+1], nil
}
