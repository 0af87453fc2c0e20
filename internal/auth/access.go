package auth

import "blogs/internal/entity/db"

// CanModify is the ownership gate: admins may change anything, everyone else
// only what they own.
func CanModify(caller *db.User, ownerID uint) bool {
	if caller == nil || caller.ID == 0 {
		return false
	}
	return caller.IsAdmin() || caller.ID == ownerID
}

// HasRole reports whether caller holds role.
func HasRole(caller *db.User, role string) bool {
	return caller != nil && caller.Role == role
}
