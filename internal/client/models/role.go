package models

import "fmt"

// Role is the closed set of account roles used for authorization.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOwner    Role = "owner"
	RoleCustomer Role = "customer"
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleOwner, RoleCustomer}

// Valid reports whether r belongs to the role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleCustomer:
		return true
	}
	return false
}

// ParseRole converts s into a Role, rejecting values outside the set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q: must be admin, owner or customer", s)
	}
	return r, nil
}
