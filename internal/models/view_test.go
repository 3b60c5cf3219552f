package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestProject(t *testing.T) {
	base := NewSessionState(uuid.New(), time.Now())

	testCases := []struct {
		name  string
		state func() SessionState
		kind  ContractKind
		want  PageView
	}{
		{
			name:  "empty session",
			state: func() SessionState { return base },
			kind:  ContractFullAnalysis,
			want:  PageView{Skills: []string{}, Transcript: []ChatMessage{}},
		},
		{
			name: "processing",
			state: func() SessionState {
				s := base.Clone()
				s.IsProcessing = true
				return s
			},
			kind: ContractScoreFeedback,
			want: PageView{Processing: ProcessingText, Skills: []string{}, Transcript: []ChatMessage{}},
		},
		{
			name: "full analysis result",
			state: func() SessionState {
				s := base.Clone()
				s.CurrentResult = &AnalysisResult{
					Score:    ptr(7),
					Enhanced: "better resume",
					Skills:   []string{"Python"},
					Original: "resume",
					JobRole:  "Data Scientist",
				}
				return s
			},
			kind: ContractFullAnalysis,
			want: PageView{
				ScoreLine:   "7/10 for Data Scientist",
				Enhanced:    "better resume",
				Skills:      []string{"Python"},
				Transcript:  []ChatMessage{},
				ChatEnabled: true,
			},
		},
		{
			name: "score feedback result",
			state: func() SessionState {
				s := base.Clone()
				s.CurrentResult = &AnalysisResult{Score: ptr(6.5), Feedback: "Meets basic requirements"}
				return s
			},
			kind: ContractScoreFeedback,
			want: PageView{
				ScoreLine:  "Score: 6.5",
				Feedback:   "Meets basic requirements",
				Skills:     []string{},
				Transcript: []ChatMessage{},
			},
		},
		{
			name: "result without score hides score line",
			state: func() SessionState {
				s := base.Clone()
				s.CurrentResult = &AnalysisResult{Feedback: "no score"}
				return s
			},
			kind: ContractScoreFeedback,
			want: PageView{Feedback: "no score", Skills: []string{}, Transcript: []ChatMessage{}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Project(tc.state(), tc.kind))
		})
	}
}

func TestSessionStateCloneIsDeep(t *testing.T) {
	s := NewSessionState(uuid.New(), time.Now())
	s.CurrentResult = &AnalysisResult{Score: ptr(5), Skills: []string{"Go"}}
	s.ChatTranscript = append(s.ChatTranscript, ChatMessage{Content: "hi", IsUser: true})
	s.Notice = &Notice{Message: "x", Kind: NoticeFeedback}

	c := s.Clone()
	*c.CurrentResult.Score = 9
	c.CurrentResult.Skills[0] = "Rust"
	c.ChatTranscript[0].Content = "changed"
	c.Notice.Message = "y"

	assert.Equal(t, 5.0, *s.CurrentResult.Score)
	assert.Equal(t, "Go", s.CurrentResult.Skills[0])
	assert.Equal(t, "hi", s.ChatTranscript[0].Content)
	assert.Equal(t, "x", s.Notice.Message)
}

func TestParseJobRole(t *testing.T) {
	for _, role := range JobRoles() {
		got, err := ParseJobRole(string(role))
		assert.NoError(t, err)
		assert.Equal(t, role, got)
	}

	_, err := ParseJobRole("Astronaut")
	assert.ErrorIs(t, err, ErrInvalidJobRole)

	_, err = ParseJobRole("software engineer")
	assert.ErrorIs(t, err, ErrInvalidJobRole)

	assert.Len(t, JobRoles(), 8)
	assert.Equal(t, RoleSoftwareEngineer, DefaultJobRole)
}
