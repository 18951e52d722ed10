package dto

import "time"

// UserResponse is the public projection of an account. It deliberately has
// no field for the password digest.
type UserResponse struct {
	UserID    int       `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
