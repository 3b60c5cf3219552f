package models

import (
	"fmt"
	"math"
	"strconv"
)

type ContractKind string

const (
	ContractScoreFeedback ContractKind = "score_feedback"
	ContractFullAnalysis  ContractKind = "full_analysis"
	ContractAnalyzeResume ContractKind = "analyze_resume"
)

const ProcessingText = "Processing resume..."

// PageView is everything the page renders. It is derived from SessionState
// alone and carries no state of its own.
type PageView struct {
	Processing  string        `json:"processing,omitempty"`
	ScoreLine   string        `json:"score_line,omitempty"`
	Feedback    string        `json:"feedback,omitempty"`
	Enhanced    string        `json:"enhanced,omitempty"`
	Skills      []string      `json:"skills"`
	Notice      *Notice       `json:"notice,omitempty"`
	Transcript  []ChatMessage `json:"transcript"`
	ChatEnabled bool          `json:"chat_enabled"`
	Sending     bool          `json:"sending"`
}

func Project(state SessionState, kind ContractKind) PageView {
	view := PageView{
		Skills:     []string{},
		Transcript: append([]ChatMessage{}, state.ChatTranscript...),
		Sending:    state.IsSending,
	}
	if state.IsProcessing {
		view.Processing = ProcessingText
	}
	if state.Notice != nil {
		notice := *state.Notice
		view.Notice = &notice
	}

	result := state.CurrentResult
	if result == nil {
		return view
	}

	view.ChatEnabled = ChatAvailable(kind)
	view.Enhanced = result.Enhanced
	view.Feedback = result.Feedback
	view.Skills = append(view.Skills, result.Skills...)
	if result.Score != nil {
		view.ScoreLine = FormatScore(*result.Score, result.JobRole, kind)
	}
	return view
}

// ChatAvailable reports whether a contract returns the original text the
// chat service answers from.
func ChatAvailable(kind ContractKind) bool {
	return kind == ContractFullAnalysis
}

// FormatScore renders "7/10 for Data Scientist" for the full analysis
// profile and "Score: 7.5" for the others.
func FormatScore(score float64, role string, kind ContractKind) string {
	if kind == ContractFullAnalysis {
		return fmt.Sprintf("%d/10 for %s", int(math.Round(score)), role)
	}
	return "Score: " + strconv.FormatFloat(score, 'f', -1, 64)
}
