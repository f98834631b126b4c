package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/flick/internal/models"
	"github.com/desertthunder/flick/internal/services"
	"github.com/desertthunder/flick/internal/shared"
	tu "github.com/desertthunder/flick/internal/testing"
)

func TestPolicy(t *testing.T) {
	ctx := context.Background()
	ana := &models.User{Email: "ana@x.com", Username: "ana"}

	authedStore := func(t *testing.T) *Store {
		t.Helper()
		store := NewStore(&tu.MemSessionRepo{}, nil)
		if err := store.Set(ctx, "jwt-abc", ana); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}
		return store
	}

	t.Run("Client", func(t *testing.T) {
		t.Run("Attaches Bearer Header When Authenticated", func(t *testing.T) {
			var got string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			policy := NewPolicy(authedStore(t), nil, nil)
			resp, err := policy.Client(nil).Get(server.URL)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			resp.Body.Close()

			if got != "Bearer jwt-abc" {
				t.Errorf("expected bearer header, got %q", got)
			}
		})

		t.Run("Omits Header When Anonymous", func(t *testing.T) {
			var got string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			policy := NewPolicy(NewStore(&tu.MemSessionRepo{}, nil), nil, nil)
			resp, err := policy.Client(nil).Get(server.URL)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			resp.Body.Close()

			if got != "" {
				t.Errorf("expected no Authorization header, got %q", got)
			}
		})

		t.Run("Reads Token At Request Time", func(t *testing.T) {
			var headers []string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				headers = append(headers, r.Header.Get("Authorization"))
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			store := NewStore(&tu.MemSessionRepo{}, nil)
			policy := NewPolicy(store, nil, nil)
			client := policy.Client(nil)

			resp, _ := client.Get(server.URL)
			resp.Body.Close()

			store.Set(ctx, "jwt-later", ana)
			resp, _ = client.Get(server.URL)
			resp.Body.Close()

			if headers[0] != "" {
				t.Errorf("expected first request anonymous, got %q", headers[0])
			}
			if headers[1] != "Bearer jwt-later" {
				t.Errorf("expected second request authenticated, got %q", headers[1])
			}
		})
	})

	t.Run("TokenSource", func(t *testing.T) {
		t.Run("Errors When Anonymous", func(t *testing.T) {
			policy := NewPolicy(NewStore(&tu.MemSessionRepo{}, nil), nil, nil)

			if _, err := policy.TokenSource().Token(); !errors.Is(err, shared.ErrNotLoggedIn) {
				t.Errorf("expected ErrNotLoggedIn, got %v", err)
			}
		})

		t.Run("Returns Bearer Token", func(t *testing.T) {
			policy := NewPolicy(authedStore(t), nil, nil)

			token, err := policy.TokenSource().Token()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if token.AccessToken != "jwt-abc" || token.TokenType != "Bearer" {
				t.Errorf("expected bearer token, got %+v", token)
			}
		})
	})

	t.Run("Authorize", func(t *testing.T) {
		t.Run("Passes When Authenticated", func(t *testing.T) {
			policy := NewPolicy(authedStore(t), nil, nil)

			if err := policy.Authorize(ctx); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})

		t.Run("Fires Hook And Fails When Anonymous", func(t *testing.T) {
			fired := 0
			policy := NewPolicy(NewStore(&tu.MemSessionRepo{}, nil), func() { fired++ }, nil)

			if err := policy.Authorize(ctx); !errors.Is(err, shared.ErrNotLoggedIn) {
				t.Errorf("expected ErrNotLoggedIn, got %v", err)
			}
			if fired != 1 {
				t.Errorf("expected hook fired once, got %d", fired)
			}
		})
	})

	t.Run("OnResponse", func(t *testing.T) {
		t.Run("Unauthorized Clears Session And Fires Hook Once", func(t *testing.T) {
			repo := &tu.MemSessionRepo{}
			store := NewStore(repo, nil)
			store.Set(ctx, "jwt-abc", ana)

			fired := 0
			policy := NewPolicy(store, func() { fired++ }, nil)

			out := policy.OnResponse(ctx, &services.APIResponse{StatusCode: http.StatusUnauthorized}, nil)

			if out.Kind != services.OutcomeUnauthorized {
				t.Errorf("expected OutcomeUnauthorized, got %d", out.Kind)
			}
			if store.Authenticated() {
				t.Error("expected session cleared")
			}
			if repo.Token != "" || repo.UserJSON != "" {
				t.Error("expected persisted session cleared")
			}
			if fired != 1 {
				t.Errorf("expected hook fired exactly once, got %d", fired)
			}
		})

		t.Run("Client Error Leaves Session Intact", func(t *testing.T) {
			store := authedStore(t)
			fired := 0
			policy := NewPolicy(store, func() { fired++ }, nil)

			out := policy.OnResponse(ctx, &services.APIResponse{StatusCode: http.StatusNotFound}, nil)

			if out.Kind != services.OutcomeClientError {
				t.Errorf("expected OutcomeClientError, got %d", out.Kind)
			}
			if !store.Authenticated() {
				t.Error("expected session to survive a 404")
			}
			if fired != 0 {
				t.Errorf("expected hook untouched, got %d", fired)
			}
		})

		t.Run("Server Error Leaves Session Intact", func(t *testing.T) {
			store := authedStore(t)
			policy := NewPolicy(store, nil, nil)

			out := policy.OnResponse(ctx, &services.APIResponse{StatusCode: http.StatusBadGateway}, nil)

			if out.Kind != services.OutcomeServerError {
				t.Errorf("expected OutcomeServerError, got %d", out.Kind)
			}
			if !store.Authenticated() {
				t.Error("expected session to survive a 502")
			}
		})

		t.Run("SetSignedOutHook Replaces Hook", func(t *testing.T) {
			store := authedStore(t)
			firstFired, secondFired := 0, 0
			policy := NewPolicy(store, func() { firstFired++ }, nil)
			policy.SetSignedOutHook(func() { secondFired++ })

			policy.OnResponse(ctx, &services.APIResponse{StatusCode: http.StatusUnauthorized}, nil)

			if firstFired != 0 || secondFired != 1 {
				t.Errorf("expected replacement hook only, got first=%d second=%d", firstFired, secondFired)
			}
		})
	})
}
