package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/outreachai/outreach-ai-platform/internal/observability/metrics"
	"github.com/outreachai/outreach-ai-platform/pkg/logging"
)

var pipelineTracer = otel.Tracer("outreach.internal.pipeline")

// Stage is one bounded unit of pipeline work: it consumes the named outputs
// of earlier stages and produces one typed output, usually backed by a single
// model invocation.
type Stage struct {
	Name   string
	Inputs []string
	Run    func(ctx context.Context, inputs map[string]any) (any, error)
}

// Runner executes stages in declaration order, threading each stage's output
// to later stages by name. A Runner is built per request with its stages and
// configuration fixed at construction; it holds no mutable shared state.
type Runner struct {
	name         string
	stages       []Stage
	stageTimeout time.Duration
	logger       *logging.Logger
	metrics      *metrics.PipelineMetrics
}

// NewRunner creates a runner for one pipeline execution. A zero stageTimeout
// disables per-stage deadlines.
func NewRunner(name string, stages []Stage, stageTimeout time.Duration, logger *logging.Logger, m *metrics.PipelineMetrics) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{
		name:         name,
		stages:       stages,
		stageTimeout: stageTimeout,
		logger:       logger,
		metrics:      m,
	}
}

// Run executes every stage once and returns the terminal stage's output.
func (r *Runner) Run(ctx context.Context) (any, error) {
	if len(r.stages) == 0 {
		return nil, errors.New("pipeline: no stages configured")
	}

	outputs := make(map[string]any, len(r.stages))
	var final any

	for _, stage := range r.stages {
		inputs := make(map[string]any, len(stage.Inputs))
		for _, dep := range stage.Inputs {
			out, ok := outputs[dep]
			if !ok {
				return nil, fmt.Errorf("pipeline: stage %q depends on %q which has not run", stage.Name, dep)
			}
			inputs[dep] = out
		}

		out, err := r.runStage(ctx, stage, inputs)
		if err != nil {
			r.metrics.ObserveStageFailure(stage.Name, FailureKind(err))
			r.metrics.ObserveRun(r.name, "error")
			return nil, fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		outputs[stage.Name] = out
		final = out
	}

	r.metrics.ObserveRun(r.name, "success")
	return final, nil
}

func (r *Runner) runStage(ctx context.Context, stage Stage, inputs map[string]any) (any, error) {
	if r.stageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.stageTimeout)
		defer cancel()
	}

	ctx, span := pipelineTracer.Start(ctx, "pipeline.stage")
	defer span.End()
	span.SetAttributes(
		attribute.String("pipeline", r.name),
		attribute.String("stage", stage.Name),
	)

	start := time.Now()
	r.logger.Info("pipeline stage started", "pipeline", r.name, "stage", stage.Name)

	out, err := stage.Run(ctx, inputs)
	elapsed := time.Since(start)
	r.metrics.ObserveStageDuration(stage.Name, elapsed.Seconds())

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || (ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded)) {
			err = fmt.Errorf("%w after %s: %v", ErrStageTimeout, elapsed.Round(time.Millisecond), err)
		}
		span.RecordError(err)
		r.logger.Error("pipeline stage failed",
			"pipeline", r.name,
			"stage", stage.Name,
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	r.logger.Info("pipeline stage completed",
		"pipeline", r.name,
		"stage", stage.Name,
		"duration_ms", elapsed.Milliseconds(),
	)
	return out, nil
}
