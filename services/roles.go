package services

import "github.com/PiotrO9/elearning/models"

// IsAdminTier reports whether a role may manage courses, videos, tags and
// enrollments. USER never qualifies.
func IsAdminTier(role string) bool {
	return role == models.RoleAdmin || role == models.RoleSuperAdmin
}

// IsValidRole reports whether the string is one of the three known roles.
func IsValidRole(role string) bool {
	switch role {
	case models.RoleUser, models.RoleAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

type roleTransition struct {
	Requester string
	From      string
	To        string
}

// legalRoleTransitions enumerates every permitted role change. Anything not
// listed here is rejected; SUPERADMIN is never a source or target.
var legalRoleTransitions = map[roleTransition]struct{}{
	{models.RoleAdmin, models.RoleUser, models.RoleAdmin}:      {},
	{models.RoleSuperAdmin, models.RoleUser, models.RoleAdmin}: {},
	{models.RoleSuperAdmin, models.RoleAdmin, models.RoleUser}: {},
}

// CanChangeRole reports whether requesterRole may move a user from
// currentRole to newRole.
func CanChangeRole(requesterRole, currentRole, newRole string) bool {
	_, ok := legalRoleTransitions[roleTransition{requesterRole, currentRole, newRole}]
	return ok
}
