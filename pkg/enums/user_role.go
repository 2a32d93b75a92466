package enums

import "fmt"

// UserRole classifies who a user is to the facilities system.
type UserRole string

const (
	UserRoleCleaner     UserRole = "cleaner"
	UserRoleMaintenance UserRole = "maintenance"
	UserRoleAdmin       UserRole = "admin"
	UserRoleUser        UserRole = "user"
)

var validUserRoles = []UserRole{
	UserRoleCleaner,
	UserRoleMaintenance,
	UserRoleAdmin,
	UserRoleUser,
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known UserRole.
func (r UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseUserRole converts raw strings into UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
