package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rockguard/internal/fixtures"
	"rockguard/internal/mapview"
	"rockguard/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	// ErrSessionNotFound is returned for an unknown or expired session id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrTooManySessions is returned when the store is full even after a sweep.
	ErrTooManySessions = errors.New("too many live sessions")
)

const (
	DefaultTTL           = 30 * time.Minute
	DefaultSweepInterval = time.Minute
	DefaultMaxSessions   = 10000
)

// Config tunes the session store. Mines defaults to the monitored sites.
type Config struct {
	Map           mapview.Options
	Mines         []models.Mine
	TTL           time.Duration
	SweepInterval time.Duration
	MaxSessions   int
}

// Store holds the live dashboard sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cfg      Config

	now   func() time.Time
	newID func() string
}

// NewStore creates an empty store.
func NewStore(cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.Mines == nil {
		cfg.Mines = fixtures.Mines()
	}
	return &Store{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create starts a session with its map mounted. A non-empty mine preselects it.
// A full store is swept once before Create gives up with ErrTooManySessions.
func (st *Store) Create(mine string) (*Session, error) {
	if st.Len() >= st.cfg.MaxSessions {
		st.Sweep()
	}

	s, err := newSession(st.newID(), st.cfg.Mines, st.cfg.Map, st.now())
	if err != nil {
		return nil, err
	}
	if mine != "" {
		if _, err := s.Select(mine); err != nil {
			s.Unmount()
			return nil, err
		}
		s.drain()
	}

	st.mu.Lock()
	if len(st.sessions) >= st.cfg.MaxSessions {
		st.mu.Unlock()
		s.Unmount()
		log.Warn().Int("max", st.cfg.MaxSessions).Msg("dashboard session rejected")
		return nil, fmt.Errorf("dashboard: %d sessions: %w", st.cfg.MaxSessions, ErrTooManySessions)
	}
	st.sessions[s.ID] = s
	st.mu.Unlock()

	log.Debug().Str("session", s.ID).Str("mine", s.Selected().Name).Msg("dashboard session created")
	return s, nil
}

// Get returns the session and marks it as seen.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("dashboard: %s: %w", id, ErrSessionNotFound)
	}
	s.touch(st.now())
	return s, nil
}

// Remove unmounts and forgets the session.
func (st *Store) Remove(id string) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return fmt.Errorf("dashboard: %s: %w", id, ErrSessionNotFound)
	}
	s.Unmount()
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many it removed.
func (st *Store) Sweep() int {
	now := st.now()
	var expired []*Session

	st.mu.Lock()
	for id, s := range st.sessions {
		if s.idleSince(now) > st.cfg.TTL {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.Unmount()
	}
	return len(expired)
}

// Run sweeps on every interval until ctx is done.
func (st *Store) Run(ctx context.Context) error {
	ticker := time.NewTicker(st.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				log.Info().Int("expired", n).Int("live", st.Len()).Msg("dashboard sessions swept")
			}
		}
	}
}

// Close unmounts every session.
func (st *Store) Close() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()

	for _, s := range sessions {
		s.Unmount()
	}
}
