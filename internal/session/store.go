package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/flick/internal/models"
	"github.com/desertthunder/flick/internal/shared"
)

// Repository is the durable storage behind the [Store]. Implemented by
// repositories.SessionRepository.
type Repository interface {
	Load(ctx context.Context) (token, userJSON string, err error)
	Save(ctx context.Context, token, userJSON string) error
	Clear(ctx context.Context) error
}

// Store holds the current session pair under a mutex. It performs no
// network access; it is purely state plus a persistence boundary.
type Store struct {
	mu     sync.RWMutex
	token  string
	user   *models.User
	repo   Repository
	logger *log.Logger
}

// NewStore creates an empty store backed by repo.
func NewStore(repo Repository, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Store{repo: repo, logger: logger}
}

// Load rehydrates the session from durable storage. If either half of the
// pair is missing or malformed, both resolve to absent and the stored
// remnant is scrubbed, so the store is never half-initialized.
func (s *Store) Load(ctx context.Context) error {
	token, userJSON, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if token == "" || userJSON == "" {
		if token != "" || userJSON != "" {
			s.logger.Warn("discarding partial persisted session")
			if err := s.repo.Clear(ctx); err != nil {
				return fmt.Errorf("failed to scrub partial session: %w", err)
			}
		}
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		s.logger.Warn("discarding malformed persisted session", "error", err)
		if err := s.repo.Clear(ctx); err != nil {
			return fmt.Errorf("failed to scrub malformed session: %w", err)
		}
		return nil
	}
	if err := user.Validate(); err != nil {
		s.logger.Warn("discarding invalid persisted session", "error", err)
		if err := s.repo.Clear(ctx); err != nil {
			return fmt.Errorf("failed to scrub invalid session: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()

	s.logger.Debug("session rehydrated", "email", user.Email)
	return nil
}

// Set atomically replaces both halves of the pair and persists them.
// Rejects partial pairs.
func (s *Store) Set(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return fmt.Errorf("refusing to set partial session")
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("invalid session user: %w", err)
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = copyUser(user)
	s.mu.Unlock()

	// Durable write follows the in-memory mutation; a crash between the two
	// leaves storage consistent up to the last completed write.
	if err := s.repo.Save(ctx, token, string(userJSON)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

// Clear atomically removes both halves of the pair from memory and durable
// storage. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}

	return nil
}

// Current returns a consistent snapshot of the pair. The returned user is a
// copy; mutating it does not affect the store.
func (s *Store) Current() (string, *models.User) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, copyUser(s.user)
}

// Authenticated reports whether a session exists.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.FavoriteTitles = append([]string(nil), u.FavoriteTitles...)
	return &cp
}
