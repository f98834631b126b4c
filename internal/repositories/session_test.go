package repositories

import (
	"context"
	"testing"

	tu "github.com/desertthunder/flick/internal/testing"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		t.Run("Empty Database", func(t *testing.T) {
			repo := NewSessionRepository(tu.MustOpenDB(t))

			token, userJSON, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if token != "" || userJSON != "" {
				t.Errorf("expected empty pair, got token=%q user=%q", token, userJSON)
			}
		})

		t.Run("Round Trip", func(t *testing.T) {
			repo := NewSessionRepository(tu.MustOpenDB(t))

			if err := repo.Save(ctx, "jwt-abc", `{"email": "ana@x.com"}`); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			token, userJSON, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if token != "jwt-abc" {
				t.Errorf("expected token restored, got %q", token)
			}
			if userJSON != `{"email": "ana@x.com"}` {
				t.Errorf("expected user restored, got %q", userJSON)
			}
		})
	})

	t.Run("Save", func(t *testing.T) {
		t.Run("Overwrites Existing Pair", func(t *testing.T) {
			repo := NewSessionRepository(tu.MustOpenDB(t))

			repo.Save(ctx, "jwt-old", `{"email": "old@x.com"}`)
			if err := repo.Save(ctx, "jwt-new", `{"email": "new@x.com"}`); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			token, userJSON, _ := repo.Load(ctx)
			if token != "jwt-new" {
				t.Errorf("expected new token, got %q", token)
			}
			if userJSON != `{"email": "new@x.com"}` {
				t.Errorf("expected new user, got %q", userJSON)
			}
		})

		t.Run("Refuses Partial Pair", func(t *testing.T) {
			repo := NewSessionRepository(tu.MustOpenDB(t))

			if err := repo.Save(ctx, "jwt-abc", ""); err == nil {
				t.Error("expected error for missing user")
			}
			if err := repo.Save(ctx, "", `{"email": "ana@x.com"}`); err == nil {
				t.Error("expected error for missing token")
			}

			token, userJSON, _ := repo.Load(ctx)
			if token != "" || userJSON != "" {
				t.Error("expected nothing persisted")
			}
		})
	})

	t.Run("Clear", func(t *testing.T) {
		t.Run("Removes Both Rows", func(t *testing.T) {
			repo := NewSessionRepository(tu.MustOpenDB(t))
			repo.Save(ctx, "jwt-abc", `{"email": "ana@x.com"}`)

			if err := repo.Clear(ctx); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			token, userJSON, _ := repo.Load(ctx)
			if token != "" || userJSON != "" {
				t.Error("expected empty pair after clear")
			}
		})

		t.Run("Idempotent On Empty Database", func(t *testing.T) {
			repo := NewSessionRepository(tu.MustOpenDB(t))

			if err := repo.Clear(ctx); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	})
}
