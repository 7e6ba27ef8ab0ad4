package auth

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingSubject = errors.New("token has no subject")
	ErrInvalidSubject = errors.New("token subject is not a user id")
)

type Role string

const (
	RoleAuthenticated Role = "authenticated"
	RoleService       Role = "service_role"
)

func (r Role) String() string {
	return string(r)
}

// Identity is the caller resolved from a hosted auth provider session token.
type Identity struct {
	userID uuid.UUID
	email  string
	role   Role
}

func NewIdentity(subject, email, role string) (Identity, error) {
	sub := strings.TrimSpace(subject)
	if sub == "" {
		return Identity{}, ErrMissingSubject
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, ErrInvalidSubject
	}
	r := Role(strings.TrimSpace(role))
	if r == "" {
		r = RoleAuthenticated
	}
	return Identity{
		userID: id,
		email:  strings.ToLower(strings.TrimSpace(email)),
		role:   r,
	}, nil
}

func (i Identity) UserID() uuid.UUID { return i.userID }
func (i Identity) Email() string     { return i.email }
func (i Identity) Role() Role        { return i.role }

// HasAnyRole reports whether the identity's role is one of roles.
func (i Identity) HasAnyRole(roles ...string) bool {
	return slices.Contains(roles, i.role.String())
}
