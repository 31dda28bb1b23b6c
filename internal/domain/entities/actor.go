package entities

// Role identifies who is calling an approval operation. Identity is not
// verified here; the role is taken from the request payload.
type Role string

const (
	RoleSupplierRep    Role = "SUPPLIER_REP"
	RoleProjectManager Role = "PROJECT_MANAGER"
)

// Actor is the caller of an approval or rejection.
type Actor struct {
	Role Role
}

func (a Actor) hasRole(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
