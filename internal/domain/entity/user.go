package entity

import "time"

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
	RoleGuest     = "guest"
)

// PrimaryAdminID is the seeded administrator, which can never be deleted.
const PrimaryAdminID int64 = 1

type User struct {
	UserID       int64      `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Name         string     `json:"name" gorm:"column:name;size:100;not null"`
	Email        string     `json:"email" gorm:"column:email;size:255;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;size:255;not null"`
	Role         string     `json:"role" gorm:"column:role;size:20;not null;default:moderator"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	LastLogin    *time.Time `json:"last_login" gorm:"column:last_login"`
}

func (User) TableName() string {
	return "users"
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
