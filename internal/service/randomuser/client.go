package randomuser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/janisto/profile-gallery/internal/gallery"
	applog "github.com/janisto/profile-gallery/internal/platform/logging"
)

const (
	defaultBaseURL     = "https://randomuser.me/api/"
	defaultNationality = "us"
	userAgent          = "profile-gallery"
	acceptHeader       = "application/json"
	maxErrorBody       = 512
)

var defaultExclude = []string{"gender", "login", "registered", "phone", "id"}

// Client implements Service using the randomuser.me API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	results     int
	nationality string
	exclude     []string
	userAgent   string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom endpoint (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithResults sets how many profiles are requested.
func WithResults(n int) Option {
	return func(c *Client) {
		c.results = n
	}
}

// WithNationality restricts generated profiles to a nationality code.
func WithNationality(nat string) Option {
	return func(c *Client) {
		c.nationality = nat
	}
}

// WithExclude sets the fields the upstream leaves out of each profile.
func WithExclude(fields ...string) Option {
	return func(c *Client) {
		c.exclude = fields
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a randomuser.me client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient:  httpClient,
		baseURL:     defaultBaseURL,
		results:     gallery.MaxProfiles,
		nationality: defaultNationality,
		exclude:     defaultExclude,
		userAgent:   userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type resultsEnvelope struct {
	Results *[]gallery.Profile `json:"results"`
}

func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(c.results))
	if c.nationality != "" {
		q.Set("nat", c.nationality)
	}
	if len(c.exclude) > 0 {
		q.Set("exc", strings.Join(c.exclude, ","))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// LoadProfiles fetches one batch of profiles in response order.
func (c *Client) LoadProfiles(ctx context.Context) ([]gallery.Profile, error) {
	target, err := c.requestURL()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newUpstreamError(UpstreamErrorKindUnavailable, 0, ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		applog.LogWarn(ctx, "randomuser api returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(body))),
		)
		return nil, newUpstreamError(UpstreamErrorKindUpstream, resp.StatusCode, ErrUpstream, nil)
	}

	var env resultsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, newUpstreamError(UpstreamErrorKindMalformed, resp.StatusCode, ErrMalformed,
			fmt.Errorf("decoding randomuser response: %w", err))
	}
	if env.Results == nil {
		return nil, newUpstreamError(UpstreamErrorKindMalformed, resp.StatusCode, ErrMalformed,
			errors.New("response has no results array"))
	}
	return *env.Results, nil
}

// Compile-time interface check
var _ Service = (*Client)(nil)
