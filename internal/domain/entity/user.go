package entity

import "time"

// Role values assignable to a user account. Admin accounts exist only
// through seeding; registration always produces RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a row in the users table. Password holds the SHA-256 hex digest
// of the credential, never the plaintext, and is excluded from JSON output.
type User struct {
	ID        int       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:users_email_key;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role      string    `gorm:"type:varchar(50);not null;default:'user'" json:"role"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
