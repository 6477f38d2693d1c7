// Package uuid carries resource and token IDs across the API boundary.
//
// It wraps google/uuid with the gin binding hook so IDs bind directly from
// URI parameters ("/expenses/:id") and query strings ("?category="). An
// absent parameter binds to Nil instead of failing, callers decide whether
// an unset ID is acceptable.
package uuid

import (
	"strings"

	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID, used for unset IDs and cleared verification tokens.
var Nil UUID

// New returns a random UUID.
func New() UUID {
	return UUID{google_uuid.New()}
}

// NewString returns a random UUID as a string.
func NewString() string {
	return google_uuid.NewString()
}

// Parse parses a UUID from its string form.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return Nil, err
	}

	return UUID{parsed}, nil
}

// IsNil reports whether the UUID is unset.
func (u UUID) IsNil() bool {
	return u.UUID == google_uuid.Nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so the UUID can
// be bound from URI and query parameters. An empty parameter binds to Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
