package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalski/recruitment-api/internal/types"
)

// stubClient captures the last prompt so tests can assert what reached the
// model.
type stubClient struct {
	lastPrompt string
	response   string
	err        error
}

func (c *stubClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	c.lastPrompt = prompt
	return c.response, c.err
}

func (c *stubClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.GenerateContent(ctx, prompt, tier)
}

func (c *stubClient) GetModel(ModelTier) string { return "stub" }

func (c *stubClient) Close() error { return nil }

func TestDraftDecisionEmail_OfferCarriesCandidateContext(t *testing.T) {
	client := &stubClient{response: "Subject: Offer\n\nDear Anna, ..."}
	input := EmailInput{
		CandidateName:   "Anna Nowak",
		PositionTitle:   "Backend Developer",
		TechnicalSkills: []string{"Go", "PostgreSQL"},
		Strengths:       []string{"Has 3 of 4 key skills", "Higher education"},
	}

	draft, err := DraftDecisionEmail(context.Background(), client, input, types.DecisionOffered)
	require.NoError(t, err)

	assert.Equal(t, "Subject: Offer\n\nDear Anna, ...", draft)
	assert.Contains(t, client.lastPrompt, "job offer")
	assert.Contains(t, client.lastPrompt, "Anna Nowak")
	assert.Contains(t, client.lastPrompt, "Backend Developer")
	assert.Contains(t, client.lastPrompt, "Go, PostgreSQL")
	assert.Contains(t, client.lastPrompt, "Has 3 of 4 key skills, Higher education")
}

func TestDraftDecisionEmail_RejectionNamesDevelopmentAreas(t *testing.T) {
	client := &stubClient{response: "Subject: Your application"}
	input := EmailInput{
		CandidateName:       "Jan Kowalski",
		PositionTitle:       "Backend Developer",
		AreasForDevelopment: []string{"Missing key technical skills"},
	}

	_, err := DraftDecisionEmail(context.Background(), client, input, types.DecisionRejected)
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "rejection email")
	assert.Contains(t, client.lastPrompt, "Missing key technical skills")
}

func TestDraftDecisionEmail_EmptyFieldsFallBack(t *testing.T) {
	client := &stubClient{response: "draft"}

	_, err := DraftDecisionEmail(context.Background(), client, EmailInput{}, types.DecisionOffered)
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "Candidate")
	assert.Contains(t, client.lastPrompt, "soft skills from the AI interview")
}
