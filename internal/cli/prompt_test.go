package cli_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/userlist/internal/cli"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		interactive bool
		want        cli.PromptResult
	}{
		{name: "yes", input: "y\n", interactive: true, want: cli.PromptResult{Accepted: true}},
		{name: "YES", input: "YES\n", interactive: true, want: cli.PromptResult{Accepted: true}},
		{name: "no", input: "n\n", interactive: true, want: cli.PromptResult{}},
		{name: "empty defaults to no", input: "\n", interactive: true, want: cli.PromptResult{}},
		{name: "eof", input: "", interactive: true, want: cli.PromptResult{}},
		{name: "non-interactive", input: "y\n", interactive: false, want: cli.PromptResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := cli.ConfirmOverwrite(&out, strings.NewReader(tt.input), "/tmp/config.yaml", tt.interactive)
			assert.Equal(t, tt.want, got)
			if tt.interactive {
				assert.Contains(t, out.String(), "/tmp/config.yaml already exists")
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestConfirmOverwrite_ReadError(t *testing.T) {
	var out bytes.Buffer
	got := cli.ConfirmOverwrite(&out, failingReader{}, "/tmp/config.yaml", true)
	assert.True(t, got.Cancelled)
}
