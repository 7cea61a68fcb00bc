package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	s := NewStore(time.Hour)

	_, ok := s.Project(42)
	assert.False(t, ok)

	s.Bind(42, "p1")
	s.Bind(43, "p2")
	got, ok := s.Project(42)
	assert.True(t, ok)
	assert.Equal(t, "p1", got)

	s.Bind(42, "p3")
	got, _ = s.Project(42)
	assert.Equal(t, "p3", got)

	s.Unbind(42)
	_, ok = s.Project(42)
	assert.False(t, ok)

	got, _ = s.Project(43)
	assert.Equal(t, "p2", got)
}

func TestStore_Expiry(t *testing.T) {
	s := NewStore(20 * time.Millisecond)
	s.Bind(1, "p1")

	time.Sleep(40 * time.Millisecond)
	_, ok := s.Project(1)
	assert.False(t, ok)
}
