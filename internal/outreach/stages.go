package outreach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/outreachai/outreach-ai-platform/internal/engagement"
	"github.com/outreachai/outreach-ai-platform/internal/llm"
	"github.com/outreachai/outreach-ai-platform/internal/pipeline"
	"github.com/outreachai/outreach-ai-platform/internal/profile"
)

// Stage names double as the keys later stages use to declare dependencies.
const (
	stageExtractProfile    = "extract_profile"
	stageAnalyzeEngagement = "analyze_engagement"
	stageDraftMessage      = "draft_message"
)

// stageConfig binds one request's client and sampling parameters. It is
// captured by value in stage closures and never mutated afterwards.
type stageConfig struct {
	client      llm.Client
	temperature float32
	maxTokens   int32
}

func (c stageConfig) complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.Complete(ctx, llm.Request{
		System:      []string{system},
		Messages:    []llm.ChatMessage{{Role: llm.ChatRoleUser, Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", pipeline.ErrUpstream, err)
	}
	return resp.Text, nil
}

// extractProfileStage turns raw profile HTML into a validated LinkedInProfile.
func extractProfileStage(cfg stageConfig, rawHTML string) pipeline.Stage {
	return pipeline.Stage{
		Name: stageExtractProfile,
		Run: func(ctx context.Context, _ map[string]any) (any, error) {
			content := profile.CleanProfileHTML(rawHTML)
			if content == "" {
				return nil, fmt.Errorf("%w: profile HTML has no visible content", pipeline.ErrMissingInput)
			}

			text, err := cfg.complete(ctx, extractorSystemPrompt, fmt.Sprintf(extractorPromptTemplate, content))
			if err != nil {
				return nil, err
			}

			span, err := pipeline.ExtractJSONSpan(text)
			if err != nil {
				return nil, err
			}
			if err := profile.ValidateJSON([]byte(span)); err != nil {
				return nil, fmt.Errorf("%w: %w", pipeline.ErrSchemaViolation, err)
			}

			var p profile.LinkedInProfile
			if err := json.Unmarshal([]byte(span), &p); err != nil {
				return nil, fmt.Errorf("%w: %w", pipeline.ErrSchemaViolation, err)
			}
			p.Normalize()
			return &p, nil
		},
	}
}

// analyzeEngagementStage compares the caller's profile with the freshly
// extracted target profile and produces a validated EngagementBrief.
func analyzeEngagementStage(cfg stageConfig, userData map[string]any) pipeline.Stage {
	return pipeline.Stage{
		Name:   stageAnalyzeEngagement,
		Inputs: []string{stageExtractProfile},
		Run: func(ctx context.Context, inputs map[string]any) (any, error) {
			target, ok := inputs[stageExtractProfile].(*profile.LinkedInProfile)
			if !ok {
				return nil, fmt.Errorf("outreach: unexpected %s output type %T", stageExtractProfile, inputs[stageExtractProfile])
			}
			targetJSON, err := json.Marshal(target)
			if err != nil {
				return nil, fmt.Errorf("outreach: marshal target profile: %w", err)
			}

			if userData == nil {
				userData = map[string]any{}
			}
			userJSON, err := json.Marshal(userData)
			if err != nil {
				return nil, fmt.Errorf("outreach: marshal user profile: %w", err)
			}

			text, err := cfg.complete(ctx, analystSystemPrompt, fmt.Sprintf(analystPromptTemplate, userJSON, targetJSON))
			if err != nil {
				return nil, err
			}

			span, err := pipeline.ExtractJSONSpan(text)
			if err != nil {
				return nil, err
			}
			if err := engagement.ValidateJSON([]byte(span)); err != nil {
				return nil, fmt.Errorf("%w: %w", pipeline.ErrSchemaViolation, err)
			}

			var brief engagement.EngagementBrief
			if err := json.Unmarshal([]byte(span), &brief); err != nil {
				return nil, fmt.Errorf("%w: %w", pipeline.ErrSchemaViolation, err)
			}

			// The model is asked for ranked output but order is not trusted.
			sort.SliceStable(brief.ConnectionVectors, func(i, j int) bool {
				return brief.ConnectionVectors[i].Rank < brief.ConnectionVectors[j].Rank
			})
			if err := engagement.ValidateBrief(&brief); err != nil {
				if errors.Is(err, engagement.ErrNoVectors) {
					return nil, fmt.Errorf("%w: %w", pipeline.ErrEmptyBrief, err)
				}
				return nil, fmt.Errorf("%w: %w", pipeline.ErrSchemaViolation, err)
			}

			return &brief, nil
		},
	}
}

// draftMessageStage turns the brief into the final outreach message, with
// server-side length and placeholder enforcement applied on top of whatever
// the model produced.
func draftMessageStage(cfg stageConfig, req GenerateMessageRequest) pipeline.Stage {
	return pipeline.Stage{
		Name:   stageDraftMessage,
		Inputs: []string{stageAnalyzeEngagement},
		Run: func(ctx context.Context, inputs map[string]any) (any, error) {
			brief, ok := inputs[stageAnalyzeEngagement].(*engagement.EngagementBrief)
			if !ok {
				return nil, fmt.Errorf("outreach: unexpected %s output type %T", stageAnalyzeEngagement, inputs[stageAnalyzeEngagement])
			}
			briefJSON, err := json.Marshal(brief)
			if err != nil {
				return nil, fmt.Errorf("outreach: marshal brief: %w", err)
			}

			tone := req.Tone
			if strings.TrimSpace(tone) == "" {
				tone = "professional and friendly"
			}
			cta := req.CallToAction
			if strings.TrimSpace(cta) == "" {
				cta = "suggest staying in touch"
			}
			extra := req.ExtraInstruction
			if strings.TrimSpace(extra) == "" {
				extra = "none"
			}

			prompt := fmt.Sprintf(drafterPromptTemplate, wordTarget(req.Length), briefJSON, tone, cta, extra)
			text, err := cfg.complete(ctx, drafterSystemPrompt, prompt)
			if err != nil {
				return nil, err
			}

			final := FinalizeDraft(text, req.Length)
			if final == "" {
				return nil, errors.New("outreach: drafting produced an empty message")
			}
			return final, nil
		},
	}
}
