package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// AnalysisContract is one deployment profile of the analysis service.
type AnalysisContract interface {
	Kind() models.ContractKind
	Analyze(ctx context.Context, file models.ResumeFile, role models.JobRole) (*models.AnalysisResult, error)
}

func NewAnalysisContract(kind, baseURL string, timeout time.Duration) (AnalysisContract, error) {
	client := newAPIClient(baseURL, timeout)

	switch models.ContractKind(kind) {
	case models.ContractScoreFeedback:
		return &scoreFeedbackContract{client: client}, nil
	case models.ContractFullAnalysis:
		return &fullAnalysisContract{client: client}, nil
	case models.ContractAnalyzeResume:
		return &analyzeResumeContract{client: client}, nil
	default:
		return nil, fmt.Errorf("unknown analyzer contract %q", kind)
	}
}

// feedbackText accepts either a string or a list of lines.
type feedbackText string

func (f *feedbackText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = feedbackText(s)
		return nil
	}

	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("feedback must be a string or a list of strings: %w", err)
	}
	*f = feedbackText(strings.TrimSpace(strings.Join(lines, "\n")))
	return nil
}

// scoreFeedbackContract posts the file alone to /resume.
type scoreFeedbackContract struct {
	client *apiClient
}

// Kind implements AnalysisContract.
func (c *scoreFeedbackContract) Kind() models.ContractKind {
	return models.ContractScoreFeedback
}

// Analyze implements AnalysisContract.
func (c *scoreFeedbackContract) Analyze(ctx context.Context, file models.ResumeFile, role models.JobRole) (*models.AnalysisResult, error) {
	var resp struct {
		Score    *float64     `json:"score"`
		Feedback feedbackText `json:"feedback"`
	}
	if err := c.client.postMultipart(ctx, "analyze", "/resume", formFile{field: "file", file: file}, nil, &resp); err != nil {
		return nil, err
	}

	return &models.AnalysisResult{
		Score:    resp.Score,
		Feedback: string(resp.Feedback),
		Skills:   []string{},
		JobRole:  string(role),
	}, nil
}

// fullAnalysisContract posts file and job role to /upload and gets back the
// enhanced text, matched skills and the original text used for chat.
type fullAnalysisContract struct {
	client *apiClient
}

// Kind implements AnalysisContract.
func (c *fullAnalysisContract) Kind() models.ContractKind {
	return models.ContractFullAnalysis
}

// Analyze implements AnalysisContract.
func (c *fullAnalysisContract) Analyze(ctx context.Context, file models.ResumeFile, role models.JobRole) (*models.AnalysisResult, error) {
	var resp struct {
		Score    *float64 `json:"score"`
		Enhanced string   `json:"enhanced"`
		Skills   []string `json:"skills"`
		Original string   `json:"original"`
		JobRole  string   `json:"job_role"`
	}
	fields := map[string]string{"job_role": string(role)}
	if err := c.client.postMultipart(ctx, "analyze", "/upload", formFile{field: "file", file: file}, fields, &resp); err != nil {
		return nil, err
	}
	if resp.Score == nil {
		return nil, &ProtocolError{Operation: "analyze", Err: fmt.Errorf("response has no score")}
	}

	jobRole := resp.JobRole
	if jobRole == "" {
		jobRole = string(role)
	}
	skills := resp.Skills
	if skills == nil {
		skills = []string{}
	}

	return &models.AnalysisResult{
		Score:    resp.Score,
		Enhanced: resp.Enhanced,
		Skills:   skills,
		Original: resp.Original,
		JobRole:  jobRole,
	}, nil
}

// analyzeResumeContract targets /analyze-resume, which takes the file as
// "resume" and the role as "target_job".
type analyzeResumeContract struct {
	client *apiClient
}

// Kind implements AnalysisContract.
func (c *analyzeResumeContract) Kind() models.ContractKind {
	return models.ContractAnalyzeResume
}

// Analyze implements AnalysisContract.
func (c *analyzeResumeContract) Analyze(ctx context.Context, file models.ResumeFile, role models.JobRole) (*models.AnalysisResult, error) {
	var resp struct {
		Score         *float64     `json:"score"`
		Feedback      feedbackText `json:"feedback"`
		MatchedSkills []string     `json:"matched_skills"`
	}
	fields := map[string]string{"target_job": string(role)}
	if err := c.client.postMultipart(ctx, "analyze", "/analyze-resume", formFile{field: "resume", file: file}, fields, &resp); err != nil {
		return nil, err
	}

	skills := resp.MatchedSkills
	if skills == nil {
		skills = []string{}
	}

	return &models.AnalysisResult{
		Score:    resp.Score,
		Feedback: string(resp.Feedback),
		Skills:   skills,
		JobRole:  string(role),
	}, nil
}
