package social

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mastodon posts statuses to one Mastodon instance.
type Mastodon struct {
	baseURL     string
	token       string
	visibility  string
	httpClient  *http.Client
	idempotency func() string
}

var _ Poster = (*Mastodon)(nil)

// Option configures a Mastodon client.
type Option func(*Mastodon)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Mastodon) {
		if client != nil {
			m.httpClient = client
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(m *Mastodon) {
		if timeout > 0 {
			m.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithVisibility sets the status visibility.
func WithVisibility(visibility string) Option {
	return func(m *Mastodon) {
		if v := strings.TrimSpace(visibility); v != "" {
			m.visibility = v
		}
	}
}

// NewMastodon creates a client for baseURL authenticated by token.
func NewMastodon(baseURL, token string, opts ...Option) (*Mastodon, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("mastodon base url required")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("mastodon access token required")
	}
	m := &Mastodon{
		baseURL:     baseURL,
		token:       token,
		visibility:  "public",
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		idempotency: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

type mediaResponse struct {
	ID string `json:"id"`
}

type statusResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type apiError struct {
	Error string `json:"error"`
}

// Post uploads the media (if any) and publishes the status.
func (m *Mastodon) Post(ctx context.Context, status Status) (Receipt, error) {
	if strings.TrimSpace(status.Text) == "" {
		return Receipt{}, errors.New("status text required")
	}
	form := url.Values{}
	form.Set("status", status.Text)
	form.Set("visibility", m.visibility)
	if status.MediaPath != "" {
		mediaID, err := m.uploadMedia(ctx, status.MediaPath, status.AltText)
		if err != nil {
			return Receipt{}, err
		}
		form.Add("media_ids[]", mediaID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/v1/statuses", strings.NewReader(form.Encode()))
	if err != nil {
		return Receipt{}, fmt.Errorf("build status request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", m.idempotency())

	var out statusResponse
	if err := m.do(req, &out); err != nil {
		return Receipt{}, fmt.Errorf("post status: %w", err)
	}
	return Receipt{ID: out.ID, URL: out.URL}, nil
}

func (m *Mastodon) uploadMedia(ctx context.Context, path, altText string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read media: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("build media form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("build media form: %w", err)
	}
	if altText != "" {
		if err := writer.WriteField("description", altText); err != nil {
			return "", fmt.Errorf("build media form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("build media form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/v2/media", &body)
	if err != nil {
		return "", fmt.Errorf("build media request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out mediaResponse
	if err := m.do(req, &out); err != nil {
		return "", fmt.Errorf("upload media: %w", err)
	}
	if out.ID == "" {
		return "", errors.New("upload media: response missing id")
	}
	return out.ID, nil
}

func (m *Mastodon) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+m.token)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := m.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	// 202 means the media is still processing but already has an id.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr apiError
		if json.Unmarshal(payload, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("mastodon returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("mastodon returned %d (latency=%v)", resp.StatusCode, latency)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
