package domain

// UserRole controls which console areas a team member can reach.
type UserRole string

const (
	RoleAdmin     UserRole = "Admin"
	RoleSales     UserRole = "Sales"
	RoleInventory UserRole = "Inventory"
)

// UserStatus is the approval state of an account. Only Approved
// accounts can log in.
type UserStatus string

const (
	StatusApproved UserStatus = "Approved"
	StatusPending  UserStatus = "Pending"
	StatusRejected UserStatus = "Rejected"
)

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	Password     string     `json:"password,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	ProfileImage string     `json:"profile_image,omitempty"`
}
