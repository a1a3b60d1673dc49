package outreach

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachai/outreach-ai-platform/internal/engagement"
	"github.com/outreachai/outreach-ai-platform/internal/pipeline"
	"github.com/outreachai/outreach-ai-platform/internal/profile"
)

func TestExtractProfileStage(t *testing.T) {
	client := &scriptedClient{responses: []string{targetProfileJSON}}
	stage := extractProfileStage(stageConfig{client: client}, "<p>Alex Rivera, VP of Engineering</p>")

	out, err := stage.Run(context.Background(), nil)
	require.NoError(t, err)

	parsed, ok := out.(*profile.LinkedInProfile)
	require.True(t, ok, "stage output type %T", out)
	assert.Equal(t, "Alex Rivera", parsed.Name)
	assert.NotNil(t, parsed.Strengths, "normalize must default nil slices")

	client.mu.Lock()
	defer client.mu.Unlock()
	require.Len(t, client.requests, 1)
	prompt := client.requests[0].Messages[0].Content
	assert.Contains(t, prompt, "Alex Rivera, VP of Engineering")
	assert.NotContains(t, prompt, "<p>", "markup must be stripped before prompting")
}

func TestExtractProfileStageMarkdownFencedOutput(t *testing.T) {
	fenced := "```json\n" + targetProfileJSON + "\n```"
	client := &scriptedClient{responses: []string{fenced}}
	stage := extractProfileStage(stageConfig{client: client}, "<p>Alex</p>")

	out, err := stage.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Alex Rivera", out.(*profile.LinkedInProfile).Name)
}

func TestExtractProfileStageEmptyAfterCleaning(t *testing.T) {
	client := &scriptedClient{}
	stage := extractProfileStage(stageConfig{client: client}, "<script>alert(1)</script>")

	_, err := stage.Run(context.Background(), nil)
	require.ErrorIs(t, err, pipeline.ErrMissingInput)
	assert.Empty(t, client.requests, "no model call for empty content")
}

func TestAnalyzeEngagementStageSortsRanks(t *testing.T) {
	// Ranks arrive out of order; the stage must not trust model ordering.
	outOfOrder := `{
		"seniority_dynamic": "Peer to Peer",
		"connection_vectors": [
			{"rank": 2, "type": "Common Ground", "confidence": "Medium", "detail": "d", "actionable_opener": "second opener"},
			{"rank": 1, "type": "Timely Hook", "confidence": "High", "detail": "d", "actionable_opener": "first opener"}
		]
	}`
	client := &scriptedClient{responses: []string{outOfOrder}}
	stage := analyzeEngagementStage(stageConfig{client: client}, map[string]any{"name": "Sam"})

	target := &profile.LinkedInProfile{Name: "Alex Rivera", Headline: "VP of Engineering"}
	out, err := stage.Run(context.Background(), map[string]any{stageExtractProfile: target})
	require.NoError(t, err)

	brief := out.(*engagement.EngagementBrief)
	require.Len(t, brief.ConnectionVectors, 2)
	assert.Equal(t, 1, brief.ConnectionVectors[0].Rank)
	assert.Equal(t, "first opener", brief.ConnectionVectors[0].ActionableOpener)
}

func TestAnalyzeEngagementStageRejectsBadConfidence(t *testing.T) {
	bad := `{
		"seniority_dynamic": "Peer to Peer",
		"connection_vectors": [
			{"rank": 1, "type": "Timely Hook", "confidence": "Certain", "detail": "d", "actionable_opener": "o"}
		]
	}`
	client := &scriptedClient{responses: []string{bad}}
	stage := analyzeEngagementStage(stageConfig{client: client}, nil)

	target := &profile.LinkedInProfile{Name: "Alex"}
	_, err := stage.Run(context.Background(), map[string]any{stageExtractProfile: target})
	require.ErrorIs(t, err, pipeline.ErrSchemaViolation)
}

func TestDraftMessageStageDefaults(t *testing.T) {
	client := &scriptedClient{responses: []string{draftedMessage}}
	stage := draftMessageStage(stageConfig{client: client}, GenerateMessageRequest{})

	brief := &engagement.EngagementBrief{
		SeniorityDynamic: engagement.SeniorityPeerToPeer,
		ConnectionVectors: []engagement.ConnectionVector{
			{Rank: 1, Type: engagement.VectorTimelyHook, Confidence: engagement.ConfidenceHigh, Detail: "d", ActionableOpener: "o"},
		},
	}
	out, err := stage.Run(context.Background(), map[string]any{stageAnalyzeEngagement: brief})
	require.NoError(t, err)
	assert.Equal(t, draftedMessage, out)

	client.mu.Lock()
	defer client.mu.Unlock()
	prompt := client.requests[0].Messages[0].Content
	assert.Contains(t, prompt, "professional and friendly")
	assert.Contains(t, prompt, "suggest staying in touch")
	assert.Contains(t, prompt, "Extra instructions: none")
}

func TestDraftMessageStageEmptyOutput(t *testing.T) {
	// Nothing but placeholders: stripping leaves an empty message.
	client := &scriptedClient{responses: []string{"{greeting} {body}"}}
	stage := draftMessageStage(stageConfig{client: client}, GenerateMessageRequest{})

	brief := &engagement.EngagementBrief{
		SeniorityDynamic: engagement.SeniorityPeerToPeer,
		ConnectionVectors: []engagement.ConnectionVector{
			{Rank: 1, Type: engagement.VectorTimelyHook, Confidence: engagement.ConfidenceHigh, Detail: "d", ActionableOpener: "o"},
		},
	}
	_, err := stage.Run(context.Background(), map[string]any{stageAnalyzeEngagement: brief})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "empty message"))
}
