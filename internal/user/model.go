package user

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

func (r Role) Valid() bool { return r == RoleCustomer || r == RoleStaff }

type User struct {
	ID           string
	Role         Role
	Phone        string
	Name         string
	PhotoURL     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public is the user as returned to callers: never carries the hash.
// swagger:model User
type Public struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

func (u *User) Public() Public {
	return Public{ID: u.ID, Role: u.Role, Phone: u.Phone, Name: u.Name, PhotoURL: u.PhotoURL}
}

// Principal is the identity carried by a verified session credential.
type Principal struct {
	UserID string
	Role   Role
}

func (p *Principal) IsStaff() bool    { return p != nil && p.Role == RoleStaff }
func (p *Principal) IsCustomer() bool { return p != nil && p.Role == RoleCustomer }

// LoginRequest payload.
// swagger:model LoginRequest
type LoginRequest struct {
	Phone    string `json:"phone"    example:"9999999999"`
	Password string `json:"password" example:"secret"`
	IsStaff  bool   `json:"isStaff"`
}

// SignupRequest payload.
// swagger:model SignupRequest
type SignupRequest struct {
	Phone    string `json:"phone"    example:"9999999999"`
	Name     string `json:"name"     example:"Asha"`
	Password string `json:"password" example:"secret"`
	PhotoURL string `json:"photoUrl,omitempty"`
}
