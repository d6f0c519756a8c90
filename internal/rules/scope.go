package rules

import "strings"

// Roles stored on user accounts.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// AllOwners is the literal aggregate scope an admin may request to see
// every operator's records at once.
const AllOwners = "Todos"

// Session is the explicit per-request session context. It replaces any
// ambient logged-in state: every rules call that depends on who is
// asking receives one of these.
type Session struct {
	Identity string
	Role     string
}

// Allowlist is the configured set of privileged identities. Membership
// is by exact match on the canonical identity, never by substring.
type Allowlist map[string]struct{}

// ParseAllowlist builds an Allowlist from a comma-separated list of
// identities. Blank entries are ignored.
func ParseAllowlist(csv string) Allowlist {
	a := Allowlist{}
	for _, id := range strings.Split(csv, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			a[id] = struct{}{}
		}
	}
	return a
}

// Contains reports whether the identity is on the allow-list.
func (a Allowlist) Contains(identity string) bool {
	_, ok := a[identity]
	return ok
}

// IsAdmin reports whether the session may use aggregate views: either
// its account carries the admin role or its identity is allow-listed.
func IsAdmin(s Session, admins Allowlist) bool {
	return s.Role == RoleAdmin || admins.Contains(s.Identity)
}

// Scope decides which owner's records a request may see. Admins may
// request any single owner or the AllOwners aggregate; everyone else is
// pinned to their own identity regardless of what they asked for.
func Scope(s Session, admins Allowlist, requested string) string {
	if !IsAdmin(s, admins) {
		return s.Identity
	}
	if requested == "" {
		return s.Identity
	}
	return requested
}
