package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type SessionManager interface {
	Create() (SessionController, error)
	Get(id uuid.UUID) (SessionController, error)
	Delete(id uuid.UUID) error
	Sweep() int
	StartSweeper()
	Stop()
}

type sessionManager struct {
	repo          repositories.SessionRepository[SessionController]
	contract      AnalysisContract
	chat          ChatService
	validator     UploadValidator
	recorder      Recorder
	idleTimeout   time.Duration
	sweepInterval time.Duration

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewSessionManager(
	repo repositories.SessionRepository[SessionController],
	contract AnalysisContract,
	chat ChatService,
	validator UploadValidator,
	recorder Recorder,
	idleTimeout time.Duration,
	sweepInterval time.Duration,
) SessionManager {
	return &sessionManager{
		repo:          repo,
		contract:      contract,
		chat:          chat,
		validator:     validator,
		recorder:      recorderOrNoop(recorder),
		idleTimeout:   idleTimeout,
		sweepInterval: sweepInterval,
		stopChan:      make(chan struct{}),
	}
}

// Create implements SessionManager.
func (m *sessionManager) Create() (SessionController, error) {
	session := NewSessionController(uuid.New(), m.contract, m.chat, m.validator, m.recorder)
	if err := m.repo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	m.recorder.SetActiveSessions(m.repo.Count())
	return session, nil
}

// Get implements SessionManager.
func (m *sessionManager) Get(id uuid.UUID) (SessionController, error) {
	return m.repo.FindByID(id)
}

// Delete implements SessionManager.
func (m *sessionManager) Delete(id uuid.UUID) error {
	if err := m.repo.Delete(id); err != nil {
		return err
	}
	m.recorder.SetActiveSessions(m.repo.Count())
	return nil
}

// Sweep drops sessions idle for longer than the idle timeout.
func (m *sessionManager) Sweep() int {
	if m.idleTimeout <= 0 {
		return 0
	}
	removed := m.repo.DeleteIdle(time.Now().Add(-m.idleTimeout))
	if len(removed) > 0 {
		log.Printf("🧹 Removed %d idle sessions\n", len(removed))
	}
	m.recorder.SetActiveSessions(m.repo.Count())
	return len(removed)
}

// StartSweeper implements SessionManager.
func (m *sessionManager) StartSweeper() {
	if m.sweepInterval <= 0 {
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.sweepInterval)
		defer ticker.Stop()

		log.Println("🔄 Starting idle session sweeper")
		for {
			select {
			case <-m.stopChan:
				log.Println("🔄 Idle session sweeper stopped")
				return
			case <-ticker.C:
				m.Sweep()
			}
		}
	}()
}

// Stop implements SessionManager.
func (m *sessionManager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
		m.wg.Wait()
	})
}
