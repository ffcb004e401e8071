package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name       string
		stdinTTY   bool
		stdoutTTY  bool
		forceColor bool
		noColor    bool
		plain      bool
		env        map[string]string
		want       OutputMode
	}{
		{name: "full terminal", stdinTTY: true, stdoutTTY: true, want: OutputModeInteractive},
		{name: "stdout only", stdoutTTY: true, want: OutputModeStyled},
		{name: "piped", want: OutputModePlain},
		{name: "piped with force color", forceColor: true, want: OutputModeStyled},
		{name: "plain flag wins", stdinTTY: true, stdoutTTY: true, forceColor: true, plain: true, want: OutputModePlain},
		{name: "no color flag", stdinTTY: true, stdoutTTY: true, noColor: true, want: OutputModePlain},
		{
			name: "NO_COLOR env", stdinTTY: true, stdoutTTY: true,
			env: map[string]string{"NO_COLOR": "1"}, want: OutputModePlain,
		},
		{
			name: "dumb terminal", stdinTTY: true, stdoutTTY: true,
			env: map[string]string{"TERM": "dumb"}, want: OutputModePlain,
		},
		{
			name: "dumb terminal forced", stdinTTY: true, stdoutTTY: true, forceColor: true,
			env: map[string]string{"TERM": "dumb"}, want: OutputModeStyled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			got := detectOutputMode(tt.stdinTTY, tt.stdoutTTY, tt.forceColor, tt.noColor, tt.plain, getenv)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.String())
		})
	}
}
