package auth

// Role tags form a closed set. An account holds one or more of them; RoleStudent
// is the default granted at signup.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// ValidRoles lists every role the platform accepts on account creation.
var ValidRoles = []string{RoleAdmin, RoleTeacher, RoleStudent}

// IsValidRole reports whether role belongs to the closed role set.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultRoles returns the role set granted to self-registered accounts.
func DefaultRoles() []string {
	return []string{RoleStudent}
}
