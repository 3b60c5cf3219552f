package models

import (
	"time"

	"github.com/google/uuid"
)

type NoticeKind string

const (
	// NoticeFeedback is shown inline, in the same slot as the result.
	NoticeFeedback NoticeKind = "feedback"
	// NoticeAlert is shown as a blocking alert.
	NoticeAlert NoticeKind = "alert"
)

type Notice struct {
	Message string     `json:"message"`
	Kind    NoticeKind `json:"kind"`
}

type SessionState struct {
	ID               uuid.UUID       `json:"id"`
	SelectedJobRole  JobRole         `json:"selected_job_role"`
	IsProcessing     bool            `json:"is_processing"`
	IsSending        bool            `json:"is_sending"`
	CurrentResult    *AnalysisResult `json:"current_result,omitempty"`
	ChatTranscript   []ChatMessage   `json:"chat_transcript"`
	PendingChatInput string          `json:"pending_chat_input"`
	Notice           *Notice         `json:"notice,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func NewSessionState(id uuid.UUID, now time.Time) SessionState {
	return SessionState{
		ID:              id,
		SelectedJobRole: DefaultJobRole,
		ChatTranscript:  []ChatMessage{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Clone returns a deep copy safe to hand out while the original keeps changing.
func (s SessionState) Clone() SessionState {
	out := s
	out.CurrentResult = s.CurrentResult.clone()
	out.ChatTranscript = append([]ChatMessage{}, s.ChatTranscript...)
	if s.Notice != nil {
		notice := *s.Notice
		out.Notice = &notice
	}
	return out
}
