// API service for making raw HTTP requests to the movie catalog backend
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/flick/internal/shared"
	"golang.org/x/time/rate"
)

// APIService provides methods for making raw HTTP requests to the backend.
// Credential attachment happens in the injected [http.Client]'s transport,
// so the service itself stays session-agnostic.
type APIService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// NewAPIService creates a new API service instance for the catalog backend.
func NewAPIService(baseURL string, client *http.Client, logger *log.Logger) *APIService {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &APIService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Inf, 1),
		logger:     logger,
	}
}

// SetRateLimit caps outgoing requests at rps with the given burst size.
// Zero or negative rps removes the cap.
func (a *APIService) SetRateLimit(rps float64, burst int) {
	if rps <= 0 {
		a.limiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	if burst < 1 {
		burst = 1
	}
	a.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// APIResponse represents a raw API response with status and body.
//
// IsJSON records whether the body parsed as JSON. The favorites endpoints
// are known to acknowledge committed writes with plain-text bodies, so a
// non-JSON body on a 2xx response is not an error at this layer.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// Decode unmarshals the response body into v.
func (r *APIResponse) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ErrorMessage extracts the backend's error envelope message, falling back
// to the raw body for non-JSON error responses.
func (r *APIResponse) ErrorMessage() string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Body, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return string(r.Body)
}

// Get performs a GET request to the specified path and returns the raw response.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	return a.do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with the given JSON data and returns the raw response.
func (a *APIService) Post(ctx context.Context, path string, data []byte) (*APIResponse, error) {
	return a.do(ctx, http.MethodPost, path, data)
}

// Put performs a PUT request with the given JSON data and returns the raw response.
func (a *APIService) Put(ctx context.Context, path string, data []byte) (*APIResponse, error) {
	return a.do(ctx, http.MethodPut, path, data)
}

// Delete performs a DELETE request to the specified path and returns the raw response.
func (a *APIService) Delete(ctx context.Context, path string) (*APIResponse, error) {
	return a.do(ctx, http.MethodDelete, path, nil)
}

func (a *APIService) do(ctx context.Context, method, path string, data []byte) (*APIResponse, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	fullURL := a.baseURL + path

	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := shared.GenerateID()
	req.Header.Set("X-Request-ID", requestID)

	a.logger.Debug("api request", "method", method, "path", path, "request_id", requestID)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	a.logger.Debug("api response", "status", resp.StatusCode, "request_id", requestID)

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	var jsonData any
	if err := json.Unmarshal(respBody, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}
