package outreach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/outreachai/outreach-ai-platform/internal/config"
	"github.com/outreachai/outreach-ai-platform/internal/llm"
	"github.com/outreachai/outreach-ai-platform/internal/observability/metrics"
	"github.com/outreachai/outreach-ai-platform/internal/pipeline"
	"github.com/outreachai/outreach-ai-platform/internal/profile"
	"github.com/outreachai/outreach-ai-platform/pkg/logging"
)

// Service runs outreach pipelines. All per-request state (client, stages,
// runner) is constructed inside each call: two concurrent requests never
// share a client or a credential.
type Service struct {
	factory      llm.Factory
	model        string
	temperature  float32
	maxTokens    int32
	stageTimeout time.Duration
	logger       *logging.Logger
	metrics      *metrics.PipelineMetrics
}

// NewService creates the outreach service from process configuration. The
// model credential is deliberately absent here: it arrives per request.
func NewService(factory llm.Factory, cfg *config.Config, logger *logging.Logger, m *metrics.PipelineMetrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		factory:      factory,
		model:        cfg.LLMModel,
		temperature:  cfg.LLMTemperature,
		maxTokens:    int32(cfg.LLMMaxTokens),
		stageTimeout: cfg.StageTimeout,
		logger:       logger,
		metrics:      m,
	}
}

// ParseProfile runs the extraction stage alone: HTML in, LinkedInProfile out.
func (s *Service) ParseProfile(ctx context.Context, credential string, req ParseProfileRequest) (*profile.LinkedInProfile, error) {
	if strings.TrimSpace(req.HTMLContent) == "" {
		return nil, fmt.Errorf("%w: html_content", pipeline.ErrMissingInput)
	}

	cfg, err := s.newStageConfig(ctx, credential, req.Provider, req.Model, req.Temperature)
	if err != nil {
		return nil, err
	}
	defer cfg.client.Close()

	runner := pipeline.NewRunner("parse_profile",
		[]pipeline.Stage{extractProfileStage(cfg, req.HTMLContent)},
		s.stageTimeout, s.logger, s.metrics)

	out, err := runner.Run(ctx)
	if err != nil {
		return nil, err
	}
	parsed, ok := out.(*profile.LinkedInProfile)
	if !ok {
		return nil, fmt.Errorf("outreach: unexpected pipeline output type %T", out)
	}
	return parsed, nil
}

// GenerateMessage runs the full extraction, analysis, drafting pipeline and
// returns the drafted message text.
func (s *Service) GenerateMessage(ctx context.Context, credential string, req GenerateMessageRequest) (string, error) {
	if strings.TrimSpace(req.TargetHTML) == "" {
		return "", fmt.Errorf("%w: target_html", pipeline.ErrMissingInput)
	}

	cfg, err := s.newStageConfig(ctx, credential, req.Provider, req.Model, req.Temperature)
	if err != nil {
		return "", err
	}
	defer cfg.client.Close()

	runner := pipeline.NewRunner("generate_message",
		[]pipeline.Stage{
			extractProfileStage(cfg, req.TargetHTML),
			analyzeEngagementStage(cfg, req.UserData),
			draftMessageStage(cfg, req),
		},
		s.stageTimeout, s.logger, s.metrics)

	out, err := runner.Run(ctx)
	if err != nil {
		return "", err
	}
	message, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("outreach: unexpected pipeline output type %T", out)
	}
	return message, nil
}

// newStageConfig builds the request-scoped client with per-request overrides
// applied over the process defaults. The caller owns the returned client and
// must Close it when the pipeline run finishes.
func (s *Service) newStageConfig(ctx context.Context, credential, provider, model string, temperature *float32) (stageConfig, error) {
	if model == "" {
		model = s.model
	}
	temp := s.temperature
	if temperature != nil {
		temp = *temperature
	}

	client, err := s.factory.NewClient(ctx, llm.Options{
		Provider:    provider,
		Model:       model,
		Credential:  credential,
		Temperature: temp,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return stageConfig{}, fmt.Errorf("outreach: building model client: %w", err)
	}

	return stageConfig{
		client:      client,
		temperature: temp,
		maxTokens:   s.maxTokens,
	}, nil
}
