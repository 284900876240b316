package users

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null;uniqueIndex:idx_users_username" json:"username"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`

	// nil for accounts created through Google sign-in
	HashedPassword *string `gorm:"column:hashed_password" json:"-"`
	AuthProvider   string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub      *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`

	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	IsAdmin   bool    `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
