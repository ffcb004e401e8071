package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/rshade/userlist/internal/logging"
	"github.com/rshade/userlist/internal/users"
)

// Client defaults.
const (
	// DefaultEndpoint is the public placeholder user API.
	DefaultEndpoint = "https://jsonplaceholder.typicode.com/users"

	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 10 * time.Second

	// maxBodyBytes caps the payload read from the endpoint.
	maxBodyBytes = 8 << 20

	// userAgent identifies the client to the endpoint.
	userAgent = "userlist"
)

// Config configures a Client. Zero values select the defaults.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	Role     string
}

// Client fetches user records over HTTP.
type Client struct {
	// Endpoint is the URL returning the JSON user array.
	Endpoint string

	// Role is assigned to every fetched record.
	Role string

	// Timeout bounds each fetch when the context has no earlier deadline.
	Timeout time.Duration

	// HTTPClient performs the request. Tests swap in httptest clients.
	HTTPClient *http.Client

	group singleflight.Group
}

// NewClient creates a Client from cfg, filling in defaults.
func NewClient(cfg Config) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	role := cfg.Role
	if role == "" {
		role = users.DefaultRole
	}

	return &Client{
		Endpoint:   endpoint,
		Role:       role,
		Timeout:    timeout,
		HTTPClient: &http.Client{},
	}
}

// Fetch retrieves the full record set. Concurrent calls on the same client
// share one in-flight request, which runs detached from any single caller's
// cancellation and is bounded by Timeout. Each caller stops waiting when its
// own ctx ends. Every failure is a *LoadError.
func (c *Client) Fetch(ctx context.Context) ([]users.User, error) {
	log := logging.ComponentLogger(*logging.FromContext(ctx), "source")

	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Endpoint: c.Endpoint, Cause: err}
	}

	ch := c.group.DoChan(c.Endpoint, func() (interface{}, error) {
		return c.fetch(context.WithoutCancel(ctx))
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		log.Debug().
			Ctx(ctx).
			Str("endpoint", c.Endpoint).
			Err(ctx.Err()).
			Msg("user fetch abandoned")
		return nil, &LoadError{Endpoint: c.Endpoint, Cause: ctx.Err()}
	case res = <-ch:
	}

	if res.Err != nil {
		log.Warn().
			Ctx(ctx).
			Str("endpoint", c.Endpoint).
			Err(res.Err).
			Msg("user fetch failed")
		return nil, &LoadError{Endpoint: c.Endpoint, Cause: res.Err}
	}

	records, ok := res.Val.([]users.User)
	if !ok {
		return nil, &LoadError{Endpoint: c.Endpoint, Cause: errors.New("unexpected fetch result type")}
	}

	log.Debug().
		Ctx(ctx).
		Int("records", len(records)).
		Bool("shared", res.Shared).
		Msg("users fetched")

	// Shared results must not alias between callers.
	out := make([]users.User, len(records))
	copy(out, records)
	return out, nil
}

func (c *Client) fetch(ctx context.Context) ([]users.User, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:mnd // small drain
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	records, err := users.Decode(io.LimitReader(resp.Body, maxBodyBytes), c.Role)
	if err != nil {
		return nil, err
	}
	return records, nil
}
