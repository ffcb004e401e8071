package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/userlist/internal/cli"
)

// isolateConfig points the CLI at a config file in a temp dir and quiets logs.
func isolateConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("USERLIST_CONFIG", path)
	t.Setenv("USERLIST_LOGGING_LEVEL", "error")
	return path
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd("test")
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

type wireUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// newUserServer serves records as the user API.
func newUserServer(t *testing.T, records []wireUser) *httptest.Server {
	t.Helper()
	body, err := json.Marshal(records)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

// newFailingServer always answers 500.
func newFailingServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	return server
}

func bobAndAmy() []wireUser {
	return []wireUser{
		{ID: 1, Name: "Bob", Email: "bob@example.com"},
		{ID: 2, Name: "Amy", Email: "amy@example.com"},
	}
}

func numbered(n int) []wireUser {
	out := make([]wireUser, n)
	for i := range out {
		out[i] = wireUser{
			ID:    i + 1,
			Name:  fmt.Sprintf("User %02d", i),
			Email: fmt.Sprintf("user%02d@example.com", i),
		}
	}
	return out
}
