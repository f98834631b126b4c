package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/flick/internal/models"
	"github.com/desertthunder/flick/internal/shared"
)

// AccountService covers user lifecycle operations: registration, login,
// logout, profile edits, and account deletion. A successful login is the
// only path from the anonymous to the authenticated state; logout, account
// deletion, and observed 401s are the only paths back.
type AccountService struct {
	api    *APIService
	policy SessionPolicy
	store  SessionWriter
	logger *log.Logger
}

// NewAccountService creates an account service writing session state
// through store.
func NewAccountService(api *APIService, policy SessionPolicy, store SessionWriter, logger *log.Logger) *AccountService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &AccountService{api: api, policy: policy, store: store, logger: logger}
}

// Register creates a new user account. No session is established; the
// caller logs in afterwards.
func (s *AccountService) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	data, err := json.Marshal(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration: %w", err)
	}

	resp, err := s.api.Post(ctx, "/users", data)
	if out := s.policy.OnResponse(ctx, resp, err); !out.OK() {
		return nil, out.Err()
	}

	var user models.User
	if err := resp.Decode(&user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "email", user.Email)
	return &user, nil
}

// Login exchanges credentials for a session. The session becomes
// authenticated only when the response carries both token and user;
// anything less leaves the store untouched.
func (s *AccountService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", shared.ErrInvalidInput)
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}

	resp, err := s.api.Post(ctx, "/login", data)
	out := s.policy.OnResponse(ctx, resp, err)
	if !out.OK() {
		return nil, out.Err()
	}
	if out.Kind != OutcomeSuccess {
		return nil, fmt.Errorf("%w: login response was not JSON", shared.ErrAPIRequest)
	}

	var login models.LoginResponse
	if err := resp.Decode(&login); err != nil {
		return nil, err
	}
	if login.Token == "" {
		return nil, fmt.Errorf("%w: login response missing token", shared.ErrAPIRequest)
	}
	if err := login.User.Validate(); err != nil {
		return nil, fmt.Errorf("%w: login response missing user: %v", shared.ErrAPIRequest, err)
	}

	if err := s.store.Set(ctx, login.Token, &login.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("logged in", "email", login.User.Email)
	return &login.User, nil
}

// Logout destroys the local session. The backend holds no server-side
// session state to invalidate.
func (s *AccountService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Update edits the current user's profile via PUT /users/{email} and
// persists the refreshed profile so a reload sees the same state.
func (s *AccountService) Update(ctx context.Context, update models.UserUpdate) (*models.User, error) {
	if err := s.policy.Authorize(ctx); err != nil {
		return nil, err
	}

	token, user := s.store.Current()
	data, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update: %w", err)
	}

	resp, err := s.api.Put(ctx, "/users/"+url.PathEscape(user.Email), data)
	out := s.policy.OnResponse(ctx, resp, err)
	if !out.OK() {
		return nil, out.Err()
	}

	updated := *user
	if out.Kind == OutcomeSuccess {
		if err := resp.Decode(&updated); err != nil {
			return nil, err
		}
	} else if update.Username != "" {
		// Plain-text acknowledgment: apply the confirmed edit locally.
		updated.Username = update.Username
	}

	if err := s.store.Set(ctx, token, &updated); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("profile updated", "email", updated.Email)
	return &updated, nil
}

// Delete removes the user's account and destroys the local session.
func (s *AccountService) Delete(ctx context.Context) error {
	if err := s.policy.Authorize(ctx); err != nil {
		return err
	}

	_, user := s.store.Current()
	resp, err := s.api.Delete(ctx, "/users/"+url.PathEscape(user.Email))
	if out := s.policy.OnResponse(ctx, resp, err); !out.OK() {
		return out.Err()
	}

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.Info("account deleted", "email", user.Email)
	return nil
}
