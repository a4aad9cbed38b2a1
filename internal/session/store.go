package session

import (
	"context"
	"errors"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

// Session event names reported to metrics
const (
	EventLogin      = "login"
	EventLogout     = "logout"
	EventClear      = "clear"
	EventUpdateUser = "update_user"
	EventRehydrate  = "rehydrate"
	EventSelfHeal   = "self_heal"
)

// Store single source of truth for "who is logged in".
// Every mutation is persisted synchronously before the call returns, while
// the write lock is held, so persisted order always matches in-memory order.
type Store struct {
	mu      sync.RWMutex
	state   domain.Session
	storage StateStorage
	metrics Metrics
	logger  Logger

	ready     chan struct{}
	readyOnce sync.Once

	subsMu sync.Mutex
	subs   map[int]chan domain.Session
	nextID int
}

// NewStore создает пустой store. Состояние из хранилища подтягивает Rehydrate.
// metrics может быть nil.
func NewStore(storage StateStorage, metrics Metrics, logger Logger) *Store {
	return &Store{
		storage: storage,
		metrics: metrics,
		logger:  logger,
		ready:   make(chan struct{}),
		subs:    make(map[int]chan domain.Session),
	}
}

// Login sets the user and token and marks the session authenticated
func (s *Store) Login(ctx context.Context, user domain.User, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	u := user
	return s.mutate(ctx, EventLogin, func(domain.Session) (domain.Session, bool) {
		return domain.Session{User: &u, Token: token, IsAuthenticated: true}, true
	})
}

// Logout clears the session. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	return s.mutate(ctx, EventLogout, func(domain.Session) (domain.Session, bool) {
		return domain.Session{}, true
	})
}

// Clear empties the session and removes the persisted blob altogether.
// Used when the API reports that the credential is no longer accepted.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.state = domain.Session{}
	err := s.storage.Clear(ctx)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.incEvent(EventClear)
	s.publish(snapshot)

	if err != nil {
		s.logger.Error("Session.Clear: failed to remove persisted state: %v", err)
		return err
	}
	s.logger.Info("Session.Clear: session cleared")
	return nil
}

// UpdateUser merges patch into the current user. Silent no-op without a user.
func (s *Store) UpdateUser(ctx context.Context, patch domain.UserPatch) error {
	return s.mutate(ctx, EventUpdateUser, func(current domain.Session) (domain.Session, bool) {
		if current.User == nil {
			return current, false
		}
		updated := patch.Apply(*current.User)
		current.User = &updated
		return current, true
	})
}

// Rehydrate loads the persisted state once and then signals Ready.
// A missing or corrupt blob degrades to an empty session; it is never fatal.
func (s *Store) Rehydrate(ctx context.Context) error {
	defer s.markReady()

	loaded, err := s.storage.Load(ctx)
	switch {
	case errors.Is(err, ErrNoPersistedState):
		s.logger.Info("Session.Rehydrate: no persisted session")
		return nil
	case errors.Is(err, ErrCorruptState):
		s.logger.Warn("Session.Rehydrate: persisted session is corrupt, starting logged out: %v", err)
		return err
	case err != nil:
		s.logger.Error("Session.Rehydrate: failed to read persisted session: %v", err)
		return err
	}

	healed := false
	if loaded.HasToken() && !loaded.IsAuthenticated {
		loaded.IsAuthenticated = true
		healed = true
		s.logger.Warn("Session.Rehydrate: token present but session flagged unauthenticated, restoring flag")
	}
	if !loaded.HasToken() && loaded.IsAuthenticated {
		loaded.IsAuthenticated = false
		healed = true
		s.logger.Warn("Session.Rehydrate: session flagged authenticated without a token, clearing flag")
	}
	if loaded.HasToken() && loaded.User == nil {
		s.logger.Warn("Session.Rehydrate: token exists but no user data found (token subject=%q)",
			tokenSubject(loaded.Token))
	}

	s.mu.Lock()
	s.state = loaded
	var persistErr error
	if healed {
		persistErr = s.storage.Save(ctx, loaded)
	}
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.incEvent(EventRehydrate)
	if healed {
		s.incEvent(EventSelfHeal)
	}
	s.publish(snapshot)

	if persistErr != nil {
		s.logger.Error("Session.Rehydrate: failed to persist healed state: %v", persistErr)
		return persistErr
	}

	s.logger.Info("Session.Rehydrate: restored session (authenticated=%t, user=%t)",
		snapshot.IsAuthenticated, snapshot.User != nil)
	return nil
}

// Snapshot returns a copy of the current session
func (s *Store) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

// Ready is closed once rehydration has finished
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// IsReady reports whether rehydration has finished
func (s *Store) IsReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Subscribe returns a channel receiving the session after every mutation.
// Slow subscribers only see the latest value. Call cancel to unsubscribe.
func (s *Store) Subscribe() (<-chan domain.Session, func()) {
	ch := make(chan domain.Session, 1)

	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subsMu.Unlock()

	cancel := func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// mutate applies fn under the write lock and persists the result before unlocking
func (s *Store) mutate(ctx context.Context, event string, fn func(domain.Session) (domain.Session, bool)) error {
	s.mu.Lock()
	next, changed := fn(s.state.Clone())
	if !changed {
		s.mu.Unlock()
		return nil
	}
	s.state = next
	err := s.storage.Save(ctx, next)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.incEvent(event)
	s.publish(snapshot)

	if err != nil {
		s.logger.Error("Session.%s: failed to persist state: %v", event, err)
		return err
	}
	return nil
}

func (s *Store) publish(snapshot domain.Session) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot.Clone()
	}
}

func (s *Store) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

func (s *Store) incEvent(event string) {
	if s.metrics != nil {
		s.metrics.IncSessionEvent(event)
	}
}

// tokenSubject достаёт sub из JWT без проверки подписи - только для диагностики
func tokenSubject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
