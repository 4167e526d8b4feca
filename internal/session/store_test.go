package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rax2004/Workforcepro/internal/models"
)

func TestCreateAndGet(t *testing.T) {
	s := NewStore()
	id := s.Create(models.Session{UserID: 3, Role: models.RoleWorker, Expiry: time.Now().Add(time.Hour)})
	require.NotEmpty(t, id)

	sess, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, int64(3), sess.UserID)
	assert.Equal(t, models.RoleWorker, sess.Role)

	_, ok = s.Get("no-such-id")
	assert.False(t, ok)
}

func TestIdsAreUnique(t *testing.T) {
	s := NewStore()
	a := s.Create(models.Session{UserID: 1})
	b := s.Create(models.Session{UserID: 1})
	assert.NotEqual(t, a, b)
}

func TestGetExpiresLazily(t *testing.T) {
	s := NewStore()
	id := s.Create(models.Session{UserID: 1, Expiry: time.Now().Add(-time.Minute)})

	_, ok := s.Get(id)
	assert.False(t, ok)

	// The expired entry was removed, not just hidden.
	assert.Empty(t, s.List())
}

func TestDelete(t *testing.T) {
	s := NewStore()
	id := s.Create(models.Session{UserID: 2, Expiry: time.Now().Add(time.Hour)})
	s.Delete(id)
	_, ok := s.Get(id)
	assert.False(t, ok)
}

func TestListSnapshots(t *testing.T) {
	s := NewStore()
	a := s.Create(models.Session{UserID: 1, Role: models.RoleAdmin, Expiry: time.Now().Add(time.Hour)})
	b := s.Create(models.Session{UserID: 2, Role: models.RoleHR, Expiry: time.Now().Add(time.Hour)})

	entries := s.List()
	require.Len(t, entries, 2)
	ids := map[string]int64{}
	for _, e := range entries {
		ids[e.ID] = e.Session.UserID
	}
	assert.Equal(t, int64(1), ids[a])
	assert.Equal(t, int64(2), ids[b])
}
