package models

// Role is the closed set of user roles. Authorization decisions go
// through Role methods instead of scattered string comparisons.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleInspector Role = "inspector"
	RolePending   Role = "pending"
)

// Privileged roles bypass every role and condominium-ownership check.
func (r Role) Privileged() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleManager, RoleInspector, RolePending:
		return true
	}
	return false
}

// Allowed reports whether r may access an endpoint restricted to the
// given roles. Privileged roles are always allowed.
func (r Role) Allowed(roles ...Role) bool {
	if r.Privileged() {
		return true
	}
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}
