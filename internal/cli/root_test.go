package cli_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/userlist/internal/cli"
)

func TestNewRootCmd(t *testing.T) {
	root := cli.NewRootCmd("1.2.3")

	assert.Equal(t, "userlist", root.Use)
	assert.Equal(t, "1.2.3", root.Version)
	require.NotNil(t, root.PersistentFlags().Lookup("debug"))
	require.NotNil(t, root.PersistentFlags().Lookup("config"))

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "browse")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "config")
}

func TestRootCmd_Help(t *testing.T) {
	isolateConfig(t)
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "userlist browse")
}

func TestRootCmd_DebugLogsToStderr(t *testing.T) {
	isolateConfig(t)
	server := newUserServer(t, bobAndAmy())

	_, errOut, err := execute(t, "--debug", "list", "--endpoint", server.URL)
	require.NoError(t, err)
	assert.Contains(t, errOut, "command started")
	assert.Contains(t, errOut, "derived page")
}

func TestRootCmd_JSONLogsCarryOneComponent(t *testing.T) {
	isolateConfig(t)
	t.Setenv("USERLIST_LOGGING_FORMAT", "json")
	server := newUserServer(t, bobAndAmy())

	_, errOut, err := execute(t, "--debug", "list", "--endpoint", server.URL)
	require.NoError(t, err)

	components := map[string]bool{}
	for _, line := range strings.Split(strings.TrimSpace(errOut), "\n") {
		if !strings.HasPrefix(line, "{") {
			continue
		}
		assert.Equal(t, 1, strings.Count(line, `"component":`), line)
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		components[entry["component"].(string)] = true
		assert.NotEmpty(t, entry["trace_id"], line)
	}
	assert.True(t, components["cli"])
	assert.True(t, components["source"])
}

func TestRootCmd_LogFile(t *testing.T) {
	isolateConfig(t)
	logFile := t.TempDir() + "/logs/userlist.log"
	t.Setenv("USERLIST_LOGGING_FILE", logFile)
	t.Setenv("USERLIST_LOGGING_LEVEL", "info")
	server := newUserServer(t, bobAndAmy())

	_, errOut, err := execute(t, "list", "--endpoint", server.URL)
	require.NoError(t, err)
	assert.FileExists(t, logFile)
	assert.NotContains(t, errOut, "command started")
}
