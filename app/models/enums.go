package models

// UserRole defines the access level of an application user.
type UserRole string

const (
	RoleAdmin          UserRole = "admin"
	RoleDashboardOnly  UserRole = "dashboard_only"
	RoleSpecificChamps UserRole = "specific_champs"
)

// Role derives the effective role from the user flags. A user without the
// admin or dashboard flag only sees the champs listed in user_champ_access.
func (u *Utilisateur) Role() UserRole {
	switch {
	case u.IsAdmin:
		return RoleAdmin
	case u.IsDashboardOnly:
		return RoleDashboardOnly
	default:
		return RoleSpecificChamps
	}
}
