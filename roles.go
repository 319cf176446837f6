package taskguard

import "fmt"

// Role identifies a user's position in the fixed three-level hierarchy.
// The set of roles is closed; new roles are not defined at runtime.
type Role string

const (
	// RoleOwner is the highest role. Owners can do everything, including
	// deleting tasks, which no other role can.
	RoleOwner Role = "OWNER"

	// RoleAdmin can create and update any task in their organization and
	// read the access audit log, but cannot delete tasks.
	RoleAdmin Role = "ADMIN"

	// RoleViewer can read all tasks in their organization and update only
	// the tasks they created themselves.
	RoleViewer Role = "VIEWER"
)

// roleRanks is the seniority table. Built once, never mutated; every rank
// comparison is a constant-time lookup.
var roleRanks = map[Role]int{
	RoleViewer: 1,
	RoleAdmin:  2,
	RoleOwner:  3,
}

// Rank returns the integer seniority of the role: VIEWER=1, ADMIN=2,
// OWNER=3. An unrecognized role ranks 0, below every defined role.
func (r Role) Rank() int {
	return roleRanks[r]
}

// Valid reports whether the role is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// AtLeast reports whether this role ranks equal to or higher than other.
func (r Role) AtLeast(other Role) bool {
	return r.Rank() >= other.Rank()
}

// String returns the role as its canonical string value.
func (r Role) String() string {
	return string(r)
}

// ParseRole converts a string into a Role, rejecting anything outside the
// closed enum.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return role, nil
}

// Roles returns all defined roles ordered from lowest to highest rank.
func Roles() []Role {
	return []Role{RoleViewer, RoleAdmin, RoleOwner}
}

// HasRoleOrHigher reports whether the user's role ranks equal to or higher
// than the required role.
//
// Example:
//
//	if taskguard.HasRoleOrHigher(user, taskguard.RoleAdmin) {
//	    // user is ADMIN or OWNER
//	}
func HasRoleOrHigher(user User, required Role) bool {
	return user.Role.AtLeast(required)
}
