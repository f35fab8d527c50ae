package memory

import (
	"testing"
	"time"

	"disaster-chatbot-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndGet(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	session := &store.Session{ID: "s-1", TenantID: "bot-1"}
	session.Append("user", "xin chào")
	repo.Save(session)

	got, found := repo.Get("s-1")
	require.True(t, found)
	assert.Equal(t, "bot-1", got.TenantID)
	require.Len(t, got.Turns, 1)
	assert.Equal(t, "xin chào", got.Turns[0].Content)
}

func TestGetMissing(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	_, found := repo.Get("nope")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	repo.Save(&store.Session{ID: "s-1"})
	repo.Delete("s-1")

	_, found := repo.Get("s-1")
	assert.False(t, found)
}

func TestExpiry(t *testing.T) {
	repo := NewSessionRepository(30 * time.Millisecond)
	repo.Save(&store.Session{ID: "s-1"})

	time.Sleep(60 * time.Millisecond)

	_, found := repo.Get("s-1")
	assert.False(t, found)
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	repo := NewSessionRepository(0)
	repo.Save(&store.Session{ID: "s-1"})

	_, found := repo.Get("s-1")
	assert.True(t, found)
}
