// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/flick/internal/shared"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// MemSessionRepo is an in-memory stand-in for the SQLite session repository.
type MemSessionRepo struct {
	Token    string
	UserJSON string
	SaveErr  error
	ClearErr error
	Saves    int
	Clears   int
}

func (r *MemSessionRepo) Load(ctx context.Context) (string, string, error) {
	return r.Token, r.UserJSON, nil
}

func (r *MemSessionRepo) Save(ctx context.Context, token, userJSON string) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Saves++
	r.Token = token
	r.UserJSON = userJSON
	return nil
}

func (r *MemSessionRepo) Clear(ctx context.Context) error {
	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.Clears++
	r.Token = ""
	r.UserJSON = ""
	return nil
}

// MustOpenDB opens an in-memory SQLite database with migrations applied.
func MustOpenDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
