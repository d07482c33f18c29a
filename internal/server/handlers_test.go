package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalski/recruitment-api/internal/db"
	"github.com/mkowalski/recruitment-api/internal/pipeline"
	"github.com/mkowalski/recruitment-api/internal/types"
)

func floatPtr(v float64) *float64 { return &v }

func testApplication() *db.Application {
	return &db.Application{
		ID:          uuid.New(),
		CandidateID: uuid.New(),
		PositionID:  uuid.New(),
	}
}

// TestBuildApplicationView_NewApplication verifies the derived state for a
// freshly created application
func TestBuildApplicationView_NewApplication(t *testing.T) {
	app := testApplication()

	view := buildApplicationView(app, nil)

	assert.Equal(t, pipeline.StageNewApplications, view.Stage)
	assert.Equal(t, 0.0, view.Scores.Combined)
	assert.False(t, view.Gates.CanSendRecruitmentTask)
	assert.False(t, view.Gates.IsEligibleForInterview)
	assert.False(t, view.Gates.IsQualified)
	assert.True(t, view.Gates.CanMakeDecision)
}

// TestBuildApplicationView_ScoredApplication verifies stage and gates after
// technical scoring
func TestBuildApplicationView_ScoredApplication(t *testing.T) {
	app := testApplication()
	app.TechnicalScore = floatPtr(80)

	view := buildApplicationView(app, nil)

	assert.Equal(t, pipeline.StageCVScreening, view.Stage)
	assert.True(t, view.Gates.IsQualified)
	assert.True(t, view.Gates.IsEligibleForInterview)
	// 80 technical with no interview blends to 52 combined, above the task
	// send threshold
	assert.Equal(t, 52.0, view.Scores.Combined)
	assert.True(t, view.Gates.CanSendRecruitmentTask)
}

// TestBuildApplicationView_InterviewBlend verifies the soft-skill blend uses
// the latest interview
func TestBuildApplicationView_InterviewBlend(t *testing.T) {
	app := testApplication()
	app.TechnicalScore = floatPtr(80)
	taskSent := types.TaskSent
	app.TaskStatus = &taskSent

	interviews := []types.Interview{
		{
			Status:              types.InterviewCompleted,
			SoftSkillAssessment: map[string]float64{"teamwork": 8, "adaptability": 8},
		},
	}

	view := buildApplicationView(app, interviews)

	assert.Equal(t, pipeline.StageRecruitmentTask, view.Stage)
	require.NotNil(t, view.Scores.SoftSkills)
	assert.Equal(t, 8.0, *view.Scores.SoftSkills)
	assert.Equal(t, 80.0, view.Scores.Combined)
	assert.False(t, view.Gates.CanSendRecruitmentTask)
	assert.False(t, view.Gates.IsEligibleForInterview)
}

// TestBuildApplicationView_Decision verifies a decided application lands in
// the decision stage with its decision gate closed
func TestBuildApplicationView_Decision(t *testing.T) {
	app := testApplication()
	app.TechnicalScore = floatPtr(60)
	taskDone := types.TaskCompleted
	app.TaskStatus = &taskDone
	decision := types.DecisionOffered
	app.Decision = &decision

	interviews := []types.Interview{{Status: types.InterviewCompleted}}

	view := buildApplicationView(app, interviews)

	assert.Equal(t, pipeline.StageDecision, view.Stage)
	assert.False(t, view.Gates.CanMakeDecision)
}

// TestParseQueryInt tests the parseQueryInt helper function
func TestParseQueryInt(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		key          string
		defaultValue int
		maxValue     int
		want         int
	}{
		{
			name:         "valid value",
			query:        "?limit=25",
			key:          "limit",
			defaultValue: 50,
			maxValue:     100,
			want:         25,
		},
		{
			name:         "missing value uses default",
			query:        "?offset=10",
			key:          "limit",
			defaultValue: 50,
			maxValue:     100,
			want:         50,
		},
		{
			name:         "value exceeds max",
			query:        "?limit=200",
			key:          "limit",
			defaultValue: 50,
			maxValue:     100,
			want:         100,
		},
		{
			name:         "invalid value uses default",
			query:        "?limit=abc",
			key:          "limit",
			defaultValue: 50,
			maxValue:     100,
			want:         50,
		},
		{
			name:         "negative value uses default",
			query:        "?limit=-10",
			key:          "limit",
			defaultValue: 50,
			maxValue:     100,
			want:         50,
		},
		{
			name:         "zero value",
			query:        "?offset=0",
			key:          "offset",
			defaultValue: 0,
			maxValue:     0,
			want:         0,
		},
		{
			name:         "candidate list bounds",
			query:        "?limit=1000",
			key:          "limit",
			defaultValue: defaultListLimit,
			maxValue:     maxListLimit,
			want:         maxListLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/positions"+tt.query, nil)
			got := parseQueryInt(req, tt.key, tt.defaultValue, tt.maxValue)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParsePathID tests UUID path parameter parsing
func TestParsePathID(t *testing.T) {
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/applications/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	got, ok := parsePathID(req, "id")
	require.True(t, ok)
	assert.Equal(t, id, got)

	req = httptest.NewRequest(http.MethodGet, "/applications/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	_, ok = parsePathID(req, "id")
	assert.False(t, ok)
}
