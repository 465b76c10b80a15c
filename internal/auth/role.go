// Package auth holds the role-based permission model and the token and
// password primitives the service layer composes: a fixed role→permission
// table, JWT issue/parse, and bcrypt hashing.
package auth

// Role is a named category of user. The set is closed.
type Role string

const (
	RoleEventCreator     Role = "EventCreator"
	RoleEventParticipant Role = "EventParticipant"
)

// Permission is one atomic capability an operation may require.
type Permission string

const (
	PermCreateEvent            Permission = "CreateEvent"
	PermReadEvent              Permission = "ReadEvent"
	PermUpdateEvent            Permission = "UpdateEvent"
	PermDeleteEvent            Permission = "DeleteEvent"
	PermCreateRegistration     Permission = "CreateRegistration"
	PermReadRegistration       Permission = "ReadRegistration"
	PermDeleteRegistration     Permission = "DeleteRegistration"
	PermReadEventRegistrations Permission = "ReadEventRegistrations"
)

// rolePermissions is the fixed role→permission table. Initialized once,
// never mutated, safe for unsynchronized concurrent reads.
var rolePermissions = map[Role][]Permission{
	RoleEventCreator: {
		PermCreateEvent,
		PermReadEvent,
		PermUpdateEvent,
		PermDeleteEvent,
		PermCreateRegistration,
		PermReadRegistration,
		PermDeleteRegistration,
		PermReadEventRegistrations,
	},
	RoleEventParticipant: {
		PermReadEvent,
		PermCreateRegistration,
		PermReadRegistration,
	},
}

// GetPermissions returns the permission set for a role, or an empty set for
// any role value outside the closed set. The returned slice is a copy.
func GetPermissions(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return []Permission{}
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether the role's permission set contains perm.
// Unknown roles hold no permissions.
func HasPermission(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// ParseRole parses a role claim into the closed Role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEventCreator:
		return RoleEventCreator, true
	case RoleEventParticipant:
		return RoleEventParticipant, true
	}
	return "", false
}
