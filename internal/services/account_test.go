package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/flick/internal/models"
	"github.com/desertthunder/flick/internal/shared"
)

func TestAccountService(t *testing.T) {
	t.Run("Register", func(t *testing.T) {
		t.Run("Creates Account Without Session", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/users" || r.Method != http.MethodPost {
					t.Errorf("expected POST /users, got %s %s", r.Method, r.URL.Path)
				}
				if auth := r.Header.Get("Authorization"); auth != "" {
					t.Errorf("expected no Authorization header, got %q", auth)
				}

				var reg models.Registration
				json.NewDecoder(r.Body).Decode(&reg)

				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(models.User{Email: reg.Email, Username: reg.Username})
			}))
			defer server.Close()

			store := &stubStore{}
			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, store, nil)
			user, err := svc.Register(context.Background(), models.Registration{
				Email:    "ana@x.com",
				Username: "ana",
				Password: "hunter2",
			})

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.Email != "ana@x.com" {
				t.Errorf("expected created user echoed back, got %s", user.Email)
			}
			if store.sets != 0 {
				t.Error("expected registration to leave the session untouched")
			}
		})

		t.Run("Invalid Payload Never Reaches Backend", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("expected no backend call")
			}))
			defer server.Close()

			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, &stubStore{}, nil)
			_, err := svc.Register(context.Background(), models.Registration{Email: "ana@x.com"})

			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("Duplicate Email", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"message": "email already registered"})
			}))
			defer server.Close()

			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, &stubStore{}, nil)
			_, err := svc.Register(context.Background(), models.Registration{
				Email: "ana@x.com", Username: "ana", Password: "hunter2",
			})

			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})

	t.Run("Login", func(t *testing.T) {
		t.Run("Establishes Session", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/login" {
					t.Errorf("expected /login, got %s", r.URL.Path)
				}
				json.NewEncoder(w).Encode(models.LoginResponse{
					Token: "jwt-abc",
					User:  models.User{Email: "ana@x.com", Username: "ana", FavoriteTitles: []string{"Inception"}},
				})
			}))
			defer server.Close()

			store := &stubStore{}
			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, store, nil)
			user, err := svc.Login(context.Background(), models.Credentials{Email: "ana@x.com", Password: "hunter2"})

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.Username != "ana" {
				t.Errorf("expected logged-in user, got %s", user.Username)
			}
			if store.token != "jwt-abc" {
				t.Errorf("expected token persisted, got %q", store.token)
			}
			if store.user == nil || !store.user.HasFavorite("Inception") {
				t.Error("expected persisted user to carry favorites")
			}
		})

		t.Run("Missing Token Leaves Store Untouched", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"user": models.User{Email: "ana@x.com"},
				})
			}))
			defer server.Close()

			store := &stubStore{}
			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, store, nil)
			_, err := svc.Login(context.Background(), models.Credentials{Email: "ana@x.com", Password: "hunter2"})

			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
			if store.sets != 0 {
				t.Error("expected no session write on partial login response")
			}
		})

		t.Run("Missing User Leaves Store Untouched", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"token": "jwt-abc"})
			}))
			defer server.Close()

			store := &stubStore{}
			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, store, nil)
			_, err := svc.Login(context.Background(), models.Credentials{Email: "ana@x.com", Password: "hunter2"})

			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
			if store.sets != 0 {
				t.Error("expected no session write on partial login response")
			}
		})

		t.Run("Non-JSON Response Is An Error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("welcome back"))
			}))
			defer server.Close()

			store := &stubStore{}
			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, store, nil)
			_, err := svc.Login(context.Background(), models.Credentials{Email: "ana@x.com", Password: "hunter2"})

			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
			if store.sets != 0 {
				t.Error("expected no session write on non-JSON login response")
			}
		})

		t.Run("Bad Credentials", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, &stubStore{}, nil)
			_, err := svc.Login(context.Background(), models.Credentials{Email: "ana@x.com", Password: "wrong"})

			if !errors.Is(err, shared.ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		})

		t.Run("Empty Credentials", func(t *testing.T) {
			svc := NewAccountService(NewAPIService("http://example.com", nil, nil), &stubPolicy{}, &stubStore{}, nil)
			_, err := svc.Login(context.Background(), models.Credentials{})

			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	})

	t.Run("Logout", func(t *testing.T) {
		t.Run("Clears Session", func(t *testing.T) {
			store := &stubStore{token: "jwt-abc", user: &models.User{Email: "ana@x.com"}}
			svc := NewAccountService(NewAPIService("http://example.com", nil, nil), &stubPolicy{}, store, nil)

			if err := svc.Logout(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if store.token != "" || store.user != nil {
				t.Error("expected session cleared")
			}
		})
	})

	t.Run("Update", func(t *testing.T) {
		t.Run("JSON Response Replaces Profile", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPut || r.URL.Path != "/users/ana@x.com" {
					t.Errorf("expected PUT /users/ana@x.com, got %s %s", r.Method, r.URL.Path)
				}
				json.NewEncoder(w).Encode(models.User{Email: "ana@x.com", Username: "newname"})
			}))
			defer server.Close()

			store := &stubStore{token: "jwt-abc", user: &models.User{Email: "ana@x.com", Username: "ana"}}
			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, store, nil)
			user, err := svc.Update(context.Background(), models.UserUpdate{Username: "newname"})

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.Username != "newname" {
				t.Errorf("expected refreshed username, got %s", user.Username)
			}
			if store.user.Username != "newname" {
				t.Error("expected refreshed profile persisted")
			}
			if store.token != "jwt-abc" {
				t.Error("expected token to survive profile update")
			}
		})

		t.Run("Plain-Text Acknowledgment Applies Edit Locally", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("user was updated"))
			}))
			defer server.Close()

			store := &stubStore{token: "jwt-abc", user: &models.User{Email: "ana@x.com", Username: "ana"}}
			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, store, nil)
			user, err := svc.Update(context.Background(), models.UserUpdate{Username: "newname"})

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.Username != "newname" {
				t.Errorf("expected edit applied locally, got %s", user.Username)
			}
		})

		t.Run("Without Session", func(t *testing.T) {
			svc := NewAccountService(NewAPIService("http://example.com", nil, nil),
				&stubPolicy{authorizeErr: shared.ErrNotLoggedIn}, &stubStore{}, nil)
			_, err := svc.Update(context.Background(), models.UserUpdate{Username: "newname"})

			if !errors.Is(err, shared.ErrNotLoggedIn) {
				t.Errorf("expected ErrNotLoggedIn, got %v", err)
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("Destroys Account And Session", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete || r.URL.Path != "/users/ana@x.com" {
					t.Errorf("expected DELETE /users/ana@x.com, got %s %s", r.Method, r.URL.Path)
				}
				w.Write([]byte("user was deleted"))
			}))
			defer server.Close()

			store := &stubStore{token: "jwt-abc", user: &models.User{Email: "ana@x.com"}}
			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, store, nil)

			if err := svc.Delete(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if store.clears != 1 {
				t.Errorf("expected session cleared once, got %d", store.clears)
			}
		})

		t.Run("Backend Failure Keeps Session", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			store := &stubStore{token: "jwt-abc", user: &models.User{Email: "ana@x.com"}}
			svc := NewAccountService(NewAPIService(server.URL, nil, nil), &stubPolicy{}, store, nil)
			err := svc.Delete(context.Background())

			if !errors.Is(err, shared.ErrTryAgainLater) {
				t.Errorf("expected ErrTryAgainLater, got %v", err)
			}
			if store.clears != 0 {
				t.Error("expected session to survive failed delete")
			}
		})
	})
}
