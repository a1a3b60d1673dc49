package profile

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// profileSchema is the contract the extraction stage's JSON output must meet
// before it is unmarshaled into a LinkedInProfile.
const profileSchema = `{
	"type": "object",
	"required": ["name", "headline"],
	"properties": {
		"name": {"type": "string"},
		"headline": {"type": "string"},
		"about": {"type": "string"},
		"experiences": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title", "company"],
				"properties": {
					"title": {"type": "string"},
					"company": {"type": "string"},
					"employment_type": {"type": "string"},
					"duration": {"type": "string"},
					"description": {"type": "string"}
				}
			}
		},
		"education": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["institution"],
				"properties": {
					"institution": {"type": "string"},
					"degree": {"type": "string"},
					"field_of_study": {"type": "string"},
					"duration": {"type": "string"},
					"grade": {"type": "string"}
				}
			}
		},
		"activities": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"type": {"type": "string"},
					"posted_ago": {"type": "string"},
					"content": {"type": "string"}
				}
			}
		},
		"interests": {"type": "string"},
		"strengths": {"type": "array", "items": {"type": "string"}},
		"others": {"type": "string"}
	}
}`

// ValidateJSON checks a raw JSON document against the profile schema and
// returns a descriptive error listing every violated field.
func ValidateJSON(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(profileSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("profile schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("profile does not match schema: %s", strings.Join(msgs, "; "))
}
