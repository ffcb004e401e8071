package detail

import (
	"fmt"
	"strings"

	"github.com/rshade/userlist/internal/theme"
	"github.com/rshade/userlist/internal/users"
)

// labelWidth aligns the field labels of the card.
const labelWidth = 6

// helpText is the key hint under the card.
const helpText = "[Esc] Back to list  [q] Quit"

// Render draws the detail card for u.
func Render(t theme.Theme, u users.User) string {
	var sb strings.Builder
	sb.WriteString(t.Title.Render(u.Name))
	sb.WriteString("\n")
	sb.WriteString(field(t, "ID", fmt.Sprintf("%d", u.ID)))
	sb.WriteString(field(t, "Email", u.Email))
	sb.WriteString(field(t, "Role", u.Role))

	return t.Box.Render(strings.TrimRight(sb.String(), "\n")) + "\n" + t.Help.Render(helpText)
}

func field(t theme.Theme, label, value string) string {
	return fmt.Sprintf("%s %s\n", t.Label.Render(fmt.Sprintf("%-*s", labelWidth, label+":")), t.Primary.Render(value))
}
