// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Account Roles

// UserRole is a role a user holds on one account.
type UserRole string

const (
	// Full control over the account, its staff and settings.
	RoleAdmin UserRole = "admin"

	// Can invite and revoke staff in addition to editing content.
	RoleManager UserRole = "manager"

	// Default role granted through the staff activation workflow.
	RoleStaff UserRole = "staff"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// IsValid reports whether r is a known role.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

// HighestRole returns the most privileged of the given roles, or "" when empty.
func HighestRole(roles []UserRole) UserRole {
	var best UserRole
	for _, role := range roles {
		if role.level() > best.level() {
			best = role
		}
	}
	return best
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleManager:
		return 20
	case RoleStaff:
		return 10
	default:
		return 0
	}
}
