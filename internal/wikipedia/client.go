package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultAPIURL is the English Wikipedia API endpoint.
const DefaultAPIURL = "https://en.wikipedia.org/w/api.php"

// MaxBatch is the largest rnlimit anonymous clients may request.
const MaxBatch = 500

// ErrTimeout marks a request that timed out.
var ErrTimeout = errors.New("wikipedia request timed out")

// TitleSource yields batches of random article titles.
type TitleSource interface {
	RandomTitles(ctx context.Context, n int) ([]string, error)
}

// Client talks to a MediaWiki API endpoint.
type Client struct {
	apiURL     string
	userAgent  string
	httpClient *http.Client
}

var _ TitleSource = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates a client. Wikimedia asks API clients to identify themselves,
// so userAgent is required.
func New(apiURL, userAgent string, opts ...Option) (*Client, error) {
	apiURL = strings.TrimSpace(apiURL)
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, errors.New("wikipedia user agent required")
	}
	client := &Client{
		apiURL:     apiURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type randomResponse struct {
	Query struct {
		Random []struct {
			ID    int64  `json:"id"`
			NS    int    `json:"ns"`
			Title string `json:"title"`
		} `json:"random"`
	} `json:"query"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// RandomTitles returns up to n random article titles.
func (c *Client) RandomTitles(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", n)
	}
	if n > MaxBatch {
		n = MaxBatch
	}
	endpoint, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse wikipedia url: %w", err)
	}
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "random")
	params.Set("rnnamespace", "0")
	params.Set("rnlimit", strconv.Itoa(n))
	params.Set("format", "json")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w (latency=%v): %w", ErrTimeout, latency, err)
		}
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGatewayTimeout || resp.StatusCode == http.StatusRequestTimeout {
		return nil, fmt.Errorf("%w: status %d", ErrTimeout, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia random returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload randomResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, fmt.Errorf("decode wikipedia response: %w", err)
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("wikipedia api error %s: %s", payload.Error.Code, payload.Error.Info)
	}

	titles := make([]string, 0, len(payload.Query.Random))
	for _, page := range payload.Query.Random {
		if title := strings.TrimSpace(page.Title); title != "" {
			titles = append(titles, title)
		}
	}
	return titles, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
