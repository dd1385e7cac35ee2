package model

// User represents a member of the user directory. The directory is static
// reference data issued by an external identity source: there is no
// registration flow and users are immutable once seeded.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// Roles.
const (
	RoleRequester = "requester"
	RoleApprover  = "approver"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleRequester, RoleApprover, RoleAdmin:
		return true
	}
	return false
}
