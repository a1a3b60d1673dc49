package engagement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrNoVectors marks a brief that violates the at-least-one-vector contract.
// The model's schema nominally forbids this, but model output is not trusted.
var ErrNoVectors = errors.New("engagement: brief contains no connection vectors")

const maxVectors = 3

// ValidateBrief enforces the brief contract: a known seniority label, between
// one and three vectors ranked consecutively from 1, known confidence bands,
// and score/band agreement whenever the model disclosed a score.
func ValidateBrief(b *EngagementBrief) error {
	if b == nil || len(b.ConnectionVectors) == 0 {
		return ErrNoVectors
	}
	if !KnownSeniority(b.SeniorityDynamic) {
		return fmt.Errorf("engagement: unknown seniority dynamic %q", b.SeniorityDynamic)
	}
	if len(b.ConnectionVectors) > maxVectors {
		return fmt.Errorf("engagement: %d connection vectors exceeds the limit of %d", len(b.ConnectionVectors), maxVectors)
	}

	for i, v := range b.ConnectionVectors {
		if v.Rank != i+1 {
			return fmt.Errorf("engagement: vector %d has rank %d, want %d", i, v.Rank, i+1)
		}
		switch v.Confidence {
		case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		default:
			return fmt.Errorf("engagement: vector %d has unknown confidence %q", i, v.Confidence)
		}
		if v.Score != 0 {
			if v.Score < 1 || v.Score > 10 {
				return fmt.Errorf("engagement: vector %d score %d outside 1-10", i, v.Score)
			}
			if band := ConfidenceForScore(v.Score); band != v.Confidence {
				return fmt.Errorf("engagement: vector %d confidence %q disagrees with score %d (band %q)", i, v.Confidence, v.Score, band)
			}
		}
		if strings.TrimSpace(v.ActionableOpener) == "" {
			return fmt.Errorf("engagement: vector %d is missing an actionable opener", i)
		}
	}

	return nil
}

// briefSchema is the shape contract for the analysis stage's raw JSON output.
const briefSchema = `{
	"type": "object",
	"required": ["seniority_dynamic", "connection_vectors"],
	"properties": {
		"seniority_dynamic": {
			"type": "string",
			"enum": ["Peer to Peer", "Junior to Senior", "Senior to Junior"]
		},
		"connection_vectors": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["rank", "type", "confidence", "actionable_opener"],
				"properties": {
					"rank": {"type": "integer", "minimum": 1},
					"type": {"type": "string"},
					"confidence": {"type": "string", "enum": ["High", "Medium", "Low"]},
					"score": {"type": "integer", "minimum": 1, "maximum": 10},
					"detail": {"type": "string"},
					"actionable_opener": {"type": "string"}
				}
			}
		}
	}
}`

// ValidateJSON checks a raw JSON document against the brief schema.
func ValidateJSON(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(briefSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("brief schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("brief does not match schema: %s", strings.Join(msgs, "; "))
}
