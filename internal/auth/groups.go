package auth

import (
	"strings"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// GroupNames maps identity-provider group names onto the application's
// groups. Keycloak-style paths ("/users") are accepted.
type GroupNames struct {
	Users  string
	Admins string
}

// DefaultGroupNames uses the application's group names unchanged.
var DefaultGroupNames = GroupNames{Users: domain.GroupUsers, Admins: domain.GroupAdministrators}

func (g GroupNames) canonical(groups []string) []string {
	out := make([]string, 0, len(groups))
	for _, raw := range groups {
		name := strings.TrimPrefix(strings.TrimSpace(raw), "/")
		switch name {
		case g.Users:
			out = append(out, domain.GroupUsers)
		case g.Admins:
			out = append(out, domain.GroupAdministrators)
		case "":
		default:
			out = append(out, name)
		}
	}
	return out
}
