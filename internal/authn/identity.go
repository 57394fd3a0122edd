// Package authn holds the viewer identity domain and the backend auth
// client. Identities exist only in memory for the lifetime of a page
// session; the backend remains authoritative for roles.
package authn

import "strings"

// Role classifies a signed-in user's privileges.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
	RoleViewer Role = "Viewer"
)

// ParseRole maps a backend role string to a closed role value. Unknown
// or blank strings fold to Viewer so a malformed response can never
// grant privileges.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin":
		return RoleAdmin
	case "editor":
		return RoleEditor
	default:
		return RoleViewer
	}
}

// CanEditTags reports whether the role may mutate item tags. This is
// the single predicate gating every edit affordance.
func CanEditTags(role Role) bool {
	return role == RoleAdmin || role == RoleEditor
}

// Identity is the verified viewer for the current page session. The
// role is set once from a backend login or verify response and treated
// as authoritative until the next verification.
type Identity struct {
	Email string
	Role  Role
	// Token is the backend-issued session JWT, carried opaquely.
	Token string
}

// SignedIn reports whether the identity represents a verified session.
func (id Identity) SignedIn() bool {
	return strings.TrimSpace(id.Token) != ""
}
