// Package rbac implements role-based access control for PlantOps: the
// closed role enumeration, the privileged role-update service and the
// persistent stores it consults.
package rbac

import "strings"

// Role is one of the four fixed privilege levels. Values are validated
// at the boundary; no other string may be persisted.
type Role string

const (
	RoleAdmin             Role = "admin"
	RolePlantManager      Role = "plantManager"
	RoleProductionManager Role = "productionManager"
	RoleAccountant        Role = "accountant"
)

// RoleNone is the sentinel reported as previousRole when the target had
// no assignment. It is not a member of the enum and is never persisted.
const RoleNone = "none"

// AllRoles returns the enumeration in its canonical order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RolePlantManager, RoleProductionManager, RoleAccountant}
}

// Valid reports whether r is a member of the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePlantManager, RoleProductionManager, RoleAccountant:
		return true
	}
	return false
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole validates a raw string against the enumeration.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// RoleList returns the enumeration joined for error messages,
// e.g. "admin, plantManager, productionManager, accountant".
func RoleList() string {
	all := AllRoles()
	parts := make([]string, len(all))
	for i, r := range all {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
