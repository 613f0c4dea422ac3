package constant

type UserRole string

const (
	RoleSuperadmin UserRole = "superadmin"
	RoleAdmin      UserRole = "admin"
	RoleModerator  UserRole = "moderator"
	RoleUser       UserRole = "user"
)

// IsPrivileged reports whether the role may see full profile data.
func (r UserRole) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}
