package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/desertthunder/flick/internal/models"
	"github.com/desertthunder/flick/internal/shared"
)

// OutcomeKind enumerates response classifications.
type OutcomeKind int

const (
	// OutcomeSuccess is a 2xx response with a well-formed JSON body.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeTolerated is a 2xx response whose body is not JSON. The
	// favorites endpoints acknowledge committed writes this way, so it is
	// treated as success rather than surfaced as an error.
	OutcomeTolerated
	// OutcomeUnauthorized is a 401: the session is expired or invalid.
	OutcomeUnauthorized
	// OutcomeClientError is any other 4xx, propagated verbatim to the caller.
	OutcomeClientError
	// OutcomeServerError covers 5xx responses and transport failures.
	OutcomeServerError
)

// Outcome is the tagged classification of a backend response, consumed
// uniformly by callers instead of ad hoc status sniffing at each call site.
type Outcome struct {
	Kind    OutcomeKind
	Status  int
	Message string
}

// OK reports whether the outcome counts as a confirmed write or read.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess || o.Kind == OutcomeTolerated
}

// Err maps the outcome to its caller-facing error, nil when OK.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeSuccess, OutcomeTolerated:
		return nil
	case OutcomeUnauthorized:
		return shared.ErrUnauthorized
	case OutcomeClientError:
		if o.Message != "" {
			return fmt.Errorf("%w: %s", shared.ErrAPIRequest, o.Message)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, o.Status)
	default:
		return shared.ErrTryAgainLater
	}
}

// Classify buckets a transport result into an [Outcome]. It is pure; session
// side effects for unauthorized responses live in the session policy.
func Classify(resp *APIResponse, err error) Outcome {
	if err != nil {
		return Outcome{Kind: OutcomeServerError, Message: err.Error()}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if resp.IsJSON {
			return Outcome{Kind: OutcomeSuccess, Status: resp.StatusCode}
		}
		return Outcome{Kind: OutcomeTolerated, Status: resp.StatusCode, Message: string(resp.Body)}
	case resp.StatusCode == http.StatusUnauthorized:
		return Outcome{Kind: OutcomeUnauthorized, Status: resp.StatusCode, Message: resp.ErrorMessage()}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return Outcome{Kind: OutcomeClientError, Status: resp.StatusCode, Message: resp.ErrorMessage()}
	default:
		return Outcome{Kind: OutcomeServerError, Status: resp.StatusCode, Message: resp.ErrorMessage()}
	}
}

// SessionPolicy is the session layer seen by services: pre-flight
// authorization and response classification with session side effects.
type SessionPolicy interface {
	// Authorize fails with a not-logged-in error when no session exists.
	// An unauthenticated attempt to reach an authenticated resource is a
	// fatal local state, not a retryable condition.
	Authorize(ctx context.Context) error

	// OnResponse classifies a transport result, clearing the session and
	// signaling sign-out when the backend answers 401.
	OnResponse(ctx context.Context, resp *APIResponse, err error) Outcome
}

// SessionWriter is the mutable session state seen by services.
type SessionWriter interface {
	Set(ctx context.Context, token string, user *models.User) error
	Clear(ctx context.Context) error
	Current() (string, *models.User)
}
