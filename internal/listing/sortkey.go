package listing

import (
	"errors"
	"fmt"
	"strings"
)

// SortKey selects the field that orders the derived view.
type SortKey string

const (
	// SortByName orders records by display name.
	SortByName SortKey = "name"
	// SortByEmail orders records by email address.
	SortByEmail SortKey = "email"
)

// DefaultSortKey is the sort key of a fresh view state.
const DefaultSortKey = SortByName

// ErrInvalidSortKey is returned by ParseSortKey for anything but name or email.
var ErrInvalidSortKey = errors.New("invalid sort key")

// SortKeys returns the accepted sort keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortByName, SortByEmail}
}

// ParseSortKey parses a sort key, case-insensitively.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByName:
		return SortByName, nil
	case SortByEmail:
		return SortByEmail, nil
	default:
		return "", fmt.Errorf("%w: %q (must be name or email)", ErrInvalidSortKey, s)
	}
}

// Valid reports whether k is one of the two sort keys.
func (k SortKey) Valid() bool {
	return k == SortByName || k == SortByEmail
}

// Label returns the selector label for the key.
func (k SortKey) Label() string {
	switch k {
	case SortByName:
		return "Name"
	case SortByEmail:
		return "Email"
	default:
		return string(k)
	}
}

// Next returns the other sort key. It is used by selectors that toggle.
func (k SortKey) Next() SortKey {
	if k == SortByName {
		return SortByEmail
	}
	return SortByName
}
