package state

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store binds a chat to the project it is editing. Bindings expire after
// the configured idle TTL and every lookup extends them.
type Store struct {
	chats *cache.Cache
	ttl   time.Duration
}

// NewStore creates a store whose bindings live for ttl after their last use.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		chats: cache.New(ttl, ttl/2),
		ttl:   ttl,
	}
}

// Bind makes projectID the active project of chatID.
func (s *Store) Bind(chatID int64, projectID string) {
	s.chats.Set(key(chatID), projectID, s.ttl)
}

// Project returns the active project of chatID.
func (s *Store) Project(chatID int64) (string, bool) {
	v, ok := s.chats.Get(key(chatID))
	if !ok {
		return "", false
	}
	projectID := v.(string)
	s.chats.Set(key(chatID), projectID, s.ttl)
	return projectID, true
}

// Unbind forgets the chat's project. The project itself is kept.
func (s *Store) Unbind(chatID int64) {
	s.chats.Delete(key(chatID))
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
