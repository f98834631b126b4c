package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/flick/internal/models"
	"github.com/desertthunder/flick/internal/shared"
)

// CatalogService provides read-only access to movie, genre, and director
// records. It holds no state: every call is a fresh remote fetch, trading
// request volume for stale-data avoidance.
type CatalogService struct {
	api    *APIService
	policy SessionPolicy
}

// NewCatalogService creates a catalog service routing through the given
// transport and session policy.
func NewCatalogService(api *APIService, policy SessionPolicy) *CatalogService {
	return &CatalogService{api: api, policy: policy}
}

// ListAll retrieves the full movie catalog.
func (c *CatalogService) ListAll(ctx context.Context) ([]models.Movie, error) {
	if err := c.policy.Authorize(ctx); err != nil {
		return nil, err
	}

	resp, err := c.api.Get(ctx, "/movies")
	if out := c.policy.OnResponse(ctx, resp, err); !out.OK() {
		return nil, out.Err()
	}

	var movies []models.Movie
	if err := resp.Decode(&movies); err != nil {
		return nil, err
	}

	return movies, nil
}

// ByTitle retrieves a single movie by its exact title.
func (c *CatalogService) ByTitle(ctx context.Context, title string) (*models.Movie, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title", shared.ErrMissingArgument)
	}
	if err := c.policy.Authorize(ctx); err != nil {
		return nil, err
	}

	resp, err := c.api.Get(ctx, "/movies/"+url.PathEscape(title))
	out := c.policy.OnResponse(ctx, resp, err)
	if out.Status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", shared.ErrMovieNotFound, title)
	}
	if !out.OK() {
		return nil, out.Err()
	}

	var movie models.Movie
	if err := resp.Decode(&movie); err != nil {
		return nil, err
	}

	return &movie, nil
}

// ByGenre retrieves a genre record by name.
func (c *CatalogService) ByGenre(ctx context.Context, name string) (*models.Genre, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: genre name", shared.ErrMissingArgument)
	}
	if err := c.policy.Authorize(ctx); err != nil {
		return nil, err
	}

	resp, err := c.api.Get(ctx, "/movies/genres/"+url.PathEscape(name))
	out := c.policy.OnResponse(ctx, resp, err)
	if out.Status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", shared.ErrGenreNotFound, name)
	}
	if !out.OK() {
		return nil, out.Err()
	}

	var genre models.Genre
	if err := resp.Decode(&genre); err != nil {
		return nil, err
	}

	return &genre, nil
}

// ByDirector retrieves a director record by name.
func (c *CatalogService) ByDirector(ctx context.Context, name string) (*models.Director, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: director name", shared.ErrMissingArgument)
	}
	if err := c.policy.Authorize(ctx); err != nil {
		return nil, err
	}

	resp, err := c.api.Get(ctx, "/movies/directors/"+url.PathEscape(name))
	out := c.policy.OnResponse(ctx, resp, err)
	if out.Status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", shared.ErrDirectorNotFound, name)
	}
	if !out.OK() {
		return nil, out.Err()
	}

	var director models.Director
	if err := resp.Decode(&director); err != nil {
		return nil, err
	}

	return &director, nil
}
