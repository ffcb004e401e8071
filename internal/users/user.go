package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DefaultRole is the role label assigned to every fetched record.
const DefaultRole = "User"

var (
	// ErrNilReader is returned by Decode when no payload reader is supplied.
	ErrNilReader = errors.New("users: nil payload reader")

	// ErrNotArray is returned by Decode when the payload is not a JSON array
	// of user objects.
	ErrNotArray = errors.New("users: payload is not a JSON array")

	// ErrTrailingData is returned by Decode when bytes follow the array.
	ErrTrailingData = errors.New("users: unexpected data after payload")
)

// User is a single record of the raw record set. Records are immutable once
// fetched; a reload replaces the whole set.
type User struct {
	ID    int    `json:"id"    yaml:"id"`
	Name  string `json:"name"  yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Role  string `json:"role"  yaml:"role"`
}

// SecondaryLabel returns the secondary display line for the record,
// e.g. "amy@example.com - Role: User".
func (u User) SecondaryLabel() string {
	return fmt.Sprintf("%s - Role: %s", u.Email, u.Role)
}

// wireUser is the subset of the remote payload we read.
type wireUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Decode reads a JSON array of user objects from r and assigns role to every
// record. An empty role falls back to DefaultRole. The body must hold exactly
// one array; null, null elements and trailing data are errors.
func Decode(r io.Reader, role string) ([]User, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if role == "" {
		role = DefaultRole
	}

	dec := json.NewDecoder(r)
	var payload []*wireUser
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding user payload: %w", err)
	}
	if payload == nil {
		return nil, ErrNotArray
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	out := make([]User, 0, len(payload))
	for i, w := range payload {
		if w == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrNotArray, i)
		}
		out = append(out, User{
			ID:    w.ID,
			Name:  w.Name,
			Email: w.Email,
			Role:  role,
		})
	}
	return out, nil
}
