package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/api"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/cart"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/catalog"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/checkout"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/console"
)

// Session is one visitor's mutable state: their cart, checkout flow,
// displayed catalog and (for admins) order console. Each component
// guards its own state; all of it lives in memory only, so a restart
// empties every cart.
type Session struct {
	ID string

	Cart     *cart.Cart
	Checkout *checkout.Checkout
	Catalog  *catalog.Fetcher
	Console  *console.Console

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

type Store struct {
	client *api.Client

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(client *api.Client) *Store {
	return &Store{
		client:   client,
		sessions: make(map[string]*Session),
	}
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		s.touch(time.Now())
	}
	return s, ok
}

func (st *Store) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Cart:     cart.New(),
		Checkout: checkout.New(st.client),
		Catalog:  catalog.NewFetcher(st.client),
		Console:  console.New(st.client),
		lastSeen: time.Now(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// PurgeIdle drops sessions untouched for longer than maxIdle and reports
// how many were removed.
func (st *Store) PurgeIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()

	n := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
