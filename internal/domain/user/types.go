package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRole  = errors.New("invalid user role")
	ErrInvalidEmail = errors.New("invalid email address")
)

// Role is the marketplace-wide permission level. Owners administer a
// business, staff serve appointments in one, customers book them.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleOwner    Role = "owner"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleStaff, RoleOwner:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 || !strings.Contains(s[at+1:], ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}
