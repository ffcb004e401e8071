package detail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/userlist/internal/theme"
	"github.com/rshade/userlist/internal/tui/detail"
	"github.com/rshade/userlist/internal/users"
)

func TestRender(t *testing.T) {
	u := users.User{ID: 7, Name: "Amy", Email: "amy@example.com", Role: "Admin"}

	out := detail.Render(theme.Default(), u)

	assert.Contains(t, out, "Amy")
	assert.Contains(t, out, "ID:")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "amy@example.com")
	assert.Contains(t, out, "Admin")
	assert.Contains(t, out, "[Esc] Back to list")
}
