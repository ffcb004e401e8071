package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/userlist/internal/logging"
	"github.com/rshade/userlist/internal/users"
)

const usersPayload = `[
  {"id":1,"name":"Leanne Graham","username":"Bret","email":"Sincere@april.biz"},
  {"id":2,"name":"Ervin Howell","username":"Antonette","email":"Shanna@melissa.tv"}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{Endpoint: server.URL + "/users", Timeout: 2 * time.Second})
	client.HTTPClient = server.Client()
	return client
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})
	assert.Equal(t, DefaultEndpoint, c.Endpoint)
	assert.Equal(t, DefaultTimeout, c.Timeout)
	assert.Equal(t, users.DefaultRole, c.Role)
	assert.NotNil(t, c.HTTPClient)
}

func TestFetch_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersPayload))
	})

	got, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []users.User{
		{ID: 1, Name: "Leanne Graham", Email: "Sincere@april.biz", Role: "User"},
		{ID: 2, Name: "Ervin Howell", Email: "Shanna@melissa.tv", Role: "User"},
	}, got)
}

func TestFetch_CustomRole(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(usersPayload))
	})
	client.Role = "Member"

	got, err := client.Fetch(context.Background())
	require.NoError(t, err)
	for _, u := range got {
		assert.Equal(t, "Member", u.Role)
	}
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"not":"an array"}`))
			},
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`null`))
			},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, users.ErrNotArray)
			},
		},
		{
			name: "trailing data after array",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[{"id":1,"name":"a","email":"b"}] trailing-garbage`))
			},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, users.ErrTrailingData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			got, err := client.Fetch(context.Background())
			require.Error(t, err)
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrLoadFailed)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, UserMessage, loadErr.UserMessage())
			assert.Equal(t, client.Endpoint, loadErr.Endpoint)

			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	client := NewClient(Config{Endpoint: endpoint, Timeout: time.Second})
	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, ErrLoadFailed)
}

func TestFetch_InvalidEndpoint(t *testing.T) {
	client := NewClient(Config{Endpoint: "://bad"})
	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, ErrLoadFailed)
}

func TestFetch_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = w.Write([]byte(usersPayload))
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx)
	require.ErrorIs(t, err, ErrLoadFailed)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		<-release
	})
	defer close(release)
	client.Timeout = 50 * time.Millisecond

	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, ErrLoadFailed)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFetch_ConcurrentCallsShareRequest(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte(usersPayload))
	})

	const callers = 5
	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
	)
	results := make([][]users.User, callers)
	started.Add(callers)
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			got, err := client.Fetch(context.Background())
			assert.NoError(t, err)
			results[i] = got
		}()
	}
	started.Wait()
	// Give the callers time to join the in-flight request.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	for _, r := range results {
		assert.Len(t, r, 2)
	}

	// Results must not alias each other.
	results[0][0].Name = "changed"
	assert.Equal(t, "Leanne Graham", results[1][0].Name)
}

func TestFetch_CanceledCallerDoesNotFailSharedRequest(t *testing.T) {
	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(usersPayload))
	})

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := client.Fetch(firstCtx)
		firstErr <- err
	}()
	<-arrived

	type result struct {
		records []users.User
		err     error
	}
	second := make(chan result, 1)
	go func() {
		got, err := client.Fetch(context.Background())
		second <- result{records: got, err: err}
	}()
	// Give the second caller time to join the in-flight request.
	time.Sleep(100 * time.Millisecond)

	cancelFirst()
	err := <-firstErr
	require.ErrorIs(t, err, ErrLoadFailed)
	assert.True(t, errors.Is(err, context.Canceled))

	close(release)
	res := <-second
	require.NoError(t, res.err)
	assert.Len(t, res.records, 2)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetch_LogsSingleComponentField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(usersPayload))
	})

	var buf bytes.Buffer
	base := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logging.WithLogger(context.Background(), base)

	_, err := client.Fetch(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, `"component":`), line)
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "source", entry["component"])
	}
}

func TestLoadError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &LoadError{Endpoint: "http://x", Cause: cause}

	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "http://x")
	assert.Contains(t, err.Error(), "refused")
	assert.Equal(t, "Failed to load users", err.UserMessage())
}
