package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	id     uuid.UUID
	active time.Time
}

func (f *fakeSession) ID() uuid.UUID         { return f.id }
func (f *fakeSession) LastActive() time.Time { return f.active }

func TestSessionRepositoryCRUD(t *testing.T) {
	repo := NewSessionRepository[*fakeSession]()
	s := &fakeSession{id: uuid.New(), active: time.Now()}

	require.NoError(t, repo.Create(s))
	assert.Error(t, repo.Create(s))
	assert.Equal(t, 1, repo.Count())

	got, err := repo.FindByID(s.id)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, repo.Delete(s.id))
	_, err = repo.FindByID(s.id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(s.id), ErrSessionNotFound)
	assert.Equal(t, 0, repo.Count())
}

func TestSessionRepositoryDeleteIdle(t *testing.T) {
	repo := NewSessionRepository[*fakeSession]()
	now := time.Now()
	stale := &fakeSession{id: uuid.New(), active: now.Add(-time.Hour)}
	fresh := &fakeSession{id: uuid.New(), active: now}
	require.NoError(t, repo.Create(stale))
	require.NoError(t, repo.Create(fresh))

	removed := repo.DeleteIdle(now.Add(-30 * time.Minute))
	assert.Equal(t, []uuid.UUID{stale.id}, removed)
	assert.Equal(t, 1, repo.Count())

	_, err := repo.FindByID(fresh.id)
	assert.NoError(t, err)
}
