package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// SessionController owns the state of one page view and performs every
// call to the analysis service on its behalf.
type SessionController interface {
	ID() uuid.UUID
	LastActive() time.Time
	Contract() models.ContractKind
	State() models.SessionState
	SelectJobRole(role string) error
	SetChatInput(text string)
	SubmitResume(ctx context.Context, files []models.ResumeFile) error
	BeginResumeUpload(files []models.ResumeFile) (*UploadJob, error)
	FinishResumeUpload(ctx context.Context, job *UploadJob) error
	SendChatMessage(ctx context.Context, text string) error
}

// UploadJob is an upload that passed validation and holds the session's
// processing flag until it is finished or aborted.
type UploadJob struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	CreatedAt time.Time

	file    models.ResumeFile
	role    models.JobRole
	session *sessionController
}

// Abort releases the processing flag of a job that will never run.
func (j *UploadJob) Abort(err error) {
	j.session.abortUpload(err)
}

type sessionController struct {
	id        uuid.UUID
	contract  AnalysisContract
	chat      ChatService
	validator UploadValidator
	recorder  Recorder

	mu    sync.Mutex
	state models.SessionState
	// generation changes every time a new result is installed; chat replies
	// started under an older generation are dropped.
	generation uint64
}

func NewSessionController(
	id uuid.UUID,
	contract AnalysisContract,
	chat ChatService,
	validator UploadValidator,
	recorder Recorder,
) SessionController {
	return &sessionController{
		id:        id,
		contract:  contract,
		chat:      chat,
		validator: validator,
		recorder:  recorderOrNoop(recorder),
		state:     models.NewSessionState(id, time.Now()),
	}
}

// ID implements SessionController.
func (c *sessionController) ID() uuid.UUID {
	return c.id
}

// LastActive implements SessionController. A session waiting on the
// analysis service counts as active.
func (c *sessionController) LastActive() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.IsProcessing || c.state.IsSending {
		return time.Now()
	}
	return c.state.UpdatedAt
}

// Contract implements SessionController.
func (c *sessionController) Contract() models.ContractKind {
	return c.contract.Kind()
}

// State implements SessionController.
func (c *sessionController) State() models.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// SelectJobRole implements SessionController.
func (c *sessionController) SelectJobRole(role string) error {
	parsed, err := models.ParseJobRole(role)
	if err != nil {
		return fmt.Errorf("failed to select job role %q: %w", role, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SelectedJobRole = parsed
	c.touch()
	return nil
}

// SetChatInput implements SessionController.
func (c *sessionController) SetChatInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PendingChatInput = text
	c.touch()
}

// SubmitResume implements SessionController.
func (c *sessionController) SubmitResume(ctx context.Context, files []models.ResumeFile) error {
	job, err := c.BeginResumeUpload(files)
	if err != nil || job == nil {
		return err
	}
	return c.FinishResumeUpload(ctx, job)
}

// BeginResumeUpload implements SessionController. It returns a nil job
// without error when no file was offered.
func (c *sessionController) BeginResumeUpload(files []models.ResumeFile) (*UploadJob, error) {
	if len(files) == 0 {
		return nil, nil
	}
	file := files[0]

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsProcessing {
		return nil, ErrUploadInProgress
	}

	if err := c.validator.Validate(file); err != nil {
		c.state.Notice = &models.Notice{Message: UserMessage(err), Kind: models.NoticeFeedback}
		c.touch()
		c.recorder.ObserveUpload(string(c.contract.Kind()), OutcomeRejected, 0)
		log.Printf("⚠️  Session %s rejected %q: %v\n", c.id, file.Filename, err)
		return nil, err
	}

	c.state.IsProcessing = true
	c.state.Notice = nil
	c.touch()

	return &UploadJob{
		ID:        uuid.New(),
		SessionID: c.id,
		CreatedAt: time.Now(),
		file:      file,
		role:      c.state.SelectedJobRole,
		session:   c,
	}, nil
}

// FinishResumeUpload implements SessionController.
func (c *sessionController) FinishResumeUpload(ctx context.Context, job *UploadJob) error {
	if job == nil || job.session != c {
		return errors.New("upload job does not belong to this session")
	}
	defer c.endUpload()

	started := time.Now()
	log.Printf("📄 Session %s analyzing %q as %s\n", c.id, job.file.Filename, job.role)

	result, err := c.contract.Analyze(ctx, job.file, job.role)

	c.mu.Lock()
	defer c.mu.Unlock()

	kind := string(c.contract.Kind())
	if err != nil {
		c.state.Notice = &models.Notice{Message: UserMessage(err), Kind: c.failureKind()}
		c.recorder.ObserveUpload(kind, OutcomeFailed, time.Since(started))
		log.Printf("❌ Session %s analysis failed: %v\n", c.id, err)
		return fmt.Errorf("failed to analyze resume: %w", err)
	}

	c.state.CurrentResult = result
	c.state.ChatTranscript = []models.ChatMessage{}
	c.state.Notice = nil
	c.generation++
	c.recorder.ObserveUpload(kind, OutcomeSuccess, time.Since(started))
	log.Printf("✅ Session %s analysis completed\n", c.id)
	return nil
}

// SendChatMessage implements SessionController. Blank messages, messages
// sent before any result exists and messages under a contract without chat
// are ignored.
func (c *sessionController) SendChatMessage(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" || !models.ChatAvailable(c.contract.Kind()) {
		return nil
	}

	c.mu.Lock()
	if c.state.CurrentResult == nil {
		c.mu.Unlock()
		return nil
	}
	if c.state.IsSending {
		c.mu.Unlock()
		return ErrChatInProgress
	}
	c.appendMessage(text, true)
	c.state.PendingChatInput = ""
	c.state.IsSending = true
	original := c.state.CurrentResult.Original
	generation := c.generation
	c.touch()
	c.mu.Unlock()

	defer c.endSending()

	answer, err := c.chat.Ask(ctx, original, text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		log.Printf("⚠️  Session %s dropped a chat reply for a replaced resume\n", c.id)
		return nil
	}

	if err != nil {
		c.appendMessage(MsgChatFailed, false)
		c.recorder.ObserveChat(OutcomeFailed)
		log.Printf("❌ Session %s chat failed: %v\n", c.id, err)
		return fmt.Errorf("failed to get chat response: %w", err)
	}

	c.appendMessage(answer, false)
	c.recorder.ObserveChat(OutcomeSuccess)
	return nil
}

func (c *sessionController) abortUpload(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.IsProcessing = false
	c.state.Notice = &models.Notice{Message: UserMessage(err), Kind: c.failureKind()}
	c.touch()
	c.recorder.ObserveUpload(string(c.contract.Kind()), OutcomeFailed, 0)
}

func (c *sessionController) endUpload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.IsProcessing = false
	c.touch()
}

func (c *sessionController) endSending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.IsSending = false
	c.touch()
}

// failureKind: the full analysis page raises an alert, the others reuse
// the result slot.
func (c *sessionController) failureKind() models.NoticeKind {
	if c.contract.Kind() == models.ContractFullAnalysis {
		return models.NoticeAlert
	}
	return models.NoticeFeedback
}

// appendMessage and touch expect c.mu to be held.
func (c *sessionController) appendMessage(content string, isUser bool) {
	c.state.ChatTranscript = append(c.state.ChatTranscript, models.ChatMessage{
		Content:   content,
		IsUser:    isUser,
		CreatedAt: time.Now(),
	})
}

func (c *sessionController) touch() {
	c.state.UpdatedAt = time.Now()
}
