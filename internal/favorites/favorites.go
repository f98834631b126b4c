// Package favorites keeps the user's favorite movie titles synchronized
// with the backend.
//
// Mutations follow a confirm-then-apply protocol: the remote write goes
// first, and the local list changes only once the backend confirms it,
// either with a standard JSON acknowledgment or with the plain-text body
// the favorites endpoints are known to answer with. The local list
// therefore never contains a title whose remote add did not succeed.
package favorites

import (
	"context"
	"fmt"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/flick/internal/models"
	"github.com/desertthunder/flick/internal/services"
	"github.com/desertthunder/flick/internal/session"
	"github.com/desertthunder/flick/internal/shared"
)

// Synchronizer maintains the authoritative favorites list for the current
// user. Add and Remove are expected to be invoked serially per user
// interaction; concurrent mutations resolve as last-confirmed-write-wins.
type Synchronizer struct {
	store   *session.Store
	policy  services.SessionPolicy
	api     *services.APIService
	catalog *services.CatalogService
	logger  *log.Logger
}

// NewSynchronizer creates a synchronizer over the given session and
// catalog access.
func NewSynchronizer(store *session.Store, policy services.SessionPolicy, api *services.APIService, catalog *services.CatalogService, logger *log.Logger) *Synchronizer {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Synchronizer{store: store, policy: policy, api: api, catalog: catalog, logger: logger}
}

// IsFavorite reports whether title is in the current user's favorites.
// Returns false, not an error, when nobody is logged in. Matching is
// exact-string with no normalization.
func (s *Synchronizer) IsFavorite(title string) bool {
	_, user := s.store.Current()
	if user == nil {
		return false
	}
	return user.HasFavorite(title)
}

// Titles returns a snapshot of the current favorites list, empty when
// nobody is logged in.
func (s *Synchronizer) Titles() []string {
	_, user := s.store.Current()
	if user == nil {
		return nil
	}
	return user.FavoriteTitles
}

// Add marks title as a favorite. The remote write happens first; the local
// list is mutated and persisted only on a confirmed or tolerated success.
// Adding a title already present is idempotent.
func (s *Synchronizer) Add(ctx context.Context, title string) error {
	return s.mutate(ctx, title, true)
}

// Remove unmarks title as a favorite, deleting the first occurrence from
// the local list on confirmation. Removing an absent title is idempotent.
func (s *Synchronizer) Remove(ctx context.Context, title string) error {
	return s.mutate(ctx, title, false)
}

func (s *Synchronizer) mutate(ctx context.Context, title string, add bool) error {
	if title == "" {
		return fmt.Errorf("%w: title", shared.ErrMissingArgument)
	}
	if err := s.policy.Authorize(ctx); err != nil {
		return err
	}

	token, user := s.store.Current()
	path := "/users/" + url.PathEscape(user.Email) + "/" + url.PathEscape(title)

	var resp *services.APIResponse
	var err error
	if add {
		resp, err = s.api.Post(ctx, path, nil)
	} else {
		resp, err = s.api.Delete(ctx, path)
	}

	out := s.policy.OnResponse(ctx, resp, err)
	if !out.OK() {
		return out.Err()
	}

	if out.Kind == services.OutcomeTolerated {
		s.logger.Debug("favorites write acknowledged with non-JSON body", "title", title)
	}

	// Re-read the session in case the backend confirmation raced a login
	// refresh; the confirmed write applies to whatever session is current.
	currentToken, currentUser := s.store.Current()
	if currentUser == nil {
		return shared.ErrNotLoggedIn
	}
	if currentToken != token {
		token = currentToken
	}

	if add {
		currentUser.AddFavorite(title)
	} else {
		currentUser.RemoveFavorite(title)
	}

	if err := s.store.Set(ctx, token, currentUser); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}

	s.logger.Info("favorites updated", "title", title, "added", add)
	return nil
}

// List cross-references the full catalog against the favorites list by
// exact title match, preserving catalog order. Fails with a not-logged-in
// error when no session exists; a session with zero favorites yields an
// empty slice, not an error.
func (s *Synchronizer) List(ctx context.Context) ([]models.Movie, error) {
	if err := s.policy.Authorize(ctx); err != nil {
		return nil, err
	}

	movies, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	_, user := s.store.Current()
	if user == nil {
		// A 401 during the catalog fetch discards the session mid-call.
		return nil, shared.ErrNotLoggedIn
	}

	favorites := []models.Movie{}
	for _, movie := range movies {
		if user.HasFavorite(movie.Title) {
			favorites = append(favorites, movie)
		}
	}

	return favorites, nil
}
