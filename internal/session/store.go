package session

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store keeps sessions in memory and forgets them after they stay unused
// for the idle timeout.
type Store struct {
	cache *cache.Cache
}

func NewStore(idleTimeout time.Duration) *Store {
	if idleTimeout <= 0 {
		idleTimeout = cache.NoExpiration
	}
	cleanup := idleTimeout / 2
	if idleTimeout == cache.NoExpiration || cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &Store{
		cache: cache.New(idleTimeout, cleanup),
	}
}

// Get returns the session for chatID and extends its lifetime.
func (s *Store) Get(chatID int64) (*Session, bool) {
	key := sessionKey(chatID)
	x, found := s.cache.Get(key)
	if !found {
		return nil, false
	}
	sess := x.(*Session)
	s.cache.Set(key, sess, cache.DefaultExpiration)
	return sess, true
}

// Add stores sess unless the chat already has a session, in which case the
// existing one is returned.
func (s *Store) Add(sess *Session) *Session {
	key := sessionKey(sess.ChatID)
	if err := s.cache.Add(key, sess, cache.DefaultExpiration); err != nil {
		if existing, found := s.Get(sess.ChatID); found {
			return existing
		}
		s.cache.Set(key, sess, cache.DefaultExpiration)
	}
	return sess
}

func (s *Store) Delete(chatID int64) {
	s.cache.Delete(sessionKey(chatID))
}

func (s *Store) Len() int {
	return s.cache.ItemCount()
}

func sessionKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
