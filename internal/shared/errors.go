package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Session errors
	ErrNotLoggedIn  = fmt.Errorf("not logged in")
	ErrUnauthorized = fmt.Errorf("session expired or invalid")

	// API and catalog errors
	ErrAPIRequest       = fmt.Errorf("API request failed")
	ErrTryAgainLater    = fmt.Errorf("service unavailable, try again later")
	ErrMovieNotFound    = fmt.Errorf("movie not found")
	ErrGenreNotFound    = fmt.Errorf("genre not found")
	ErrDirectorNotFound = fmt.Errorf("director not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
