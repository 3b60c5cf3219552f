package models

import "time"

// AnalysisResult is what the analysis service returned for the last
// successful upload. Score is nil when the service omitted it.
type AnalysisResult struct {
	Score    *float64 `json:"score,omitempty"`
	Enhanced string   `json:"enhanced,omitempty"`
	Feedback string   `json:"feedback,omitempty"`
	Skills   []string `json:"skills"`
	Original string   `json:"original,omitempty"`
	JobRole  string   `json:"job_role,omitempty"`
}

func (r *AnalysisResult) clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	out := *r
	if r.Score != nil {
		score := *r.Score
		out.Score = &score
	}
	out.Skills = append([]string(nil), r.Skills...)
	return &out
}

type ChatMessage struct {
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"created_at"`
}

// ResumeFile is one file offered by the user, held in memory until it is
// forwarded to the analysis service.
type ResumeFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
