package pipeline

import "errors"

var (
	// ErrMissingInput marks a request that lacks a required field before any
	// model call happens. Maps to a client error at the HTTP boundary.
	ErrMissingInput = errors.New("pipeline: required input is missing")

	// ErrUnparseableOutput marks model output with no locatable JSON object.
	ErrUnparseableOutput = errors.New("pipeline: no JSON object found in model output")

	// ErrSchemaViolation marks model output that parsed as JSON but failed the
	// declared schema.
	ErrSchemaViolation = errors.New("pipeline: model output does not match schema")

	// ErrEmptyBrief marks an analysis result with no connection vectors at all.
	// Distinct from ErrSchemaViolation so the two show up separately in metrics.
	ErrEmptyBrief = errors.New("pipeline: analysis produced an empty brief")

	// ErrStageTimeout marks a stage that exceeded its per-stage deadline.
	ErrStageTimeout = errors.New("pipeline: stage timed out")

	// ErrUpstream wraps a failure reported by the model provider itself.
	ErrUpstream = errors.New("pipeline: upstream model call failed")
)

// FailureKind names an error class for metrics labels.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, ErrMissingInput):
		return "missing_input"
	case errors.Is(err, ErrUnparseableOutput):
		return "unparseable_output"
	case errors.Is(err, ErrSchemaViolation):
		return "schema_violation"
	case errors.Is(err, ErrEmptyBrief):
		return "empty_brief"
	case errors.Is(err, ErrStageTimeout):
		return "timeout"
	default:
		return "upstream"
	}
}
