package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a registered lab member. Abbr is the stem of their personal counters.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Abbr      string
	Groups    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actor is the identity behind a single request.
type Actor struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Groups   []string
}

// InGroup reports whether the actor belongs to group.
func (a Actor) InGroup(group string) bool {
	return slices.Contains(a.Groups, group)
}

// IsLoggedIn reports whether the actor may use the parts API.
func (a Actor) IsLoggedIn() bool {
	return a.InGroup(GroupUsers)
}

// IsAdmin reports whether the actor has administrator privileges.
func (a Actor) IsAdmin() bool {
	return a.InGroup(GroupAdministrators)
}
