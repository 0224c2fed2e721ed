package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	Base

	Name              string     `gorm:"size:100;not null" json:"name"`
	Email             string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"size:255;not null" json:"-"`
	Role              Role       `gorm:"size:20;default:'user';index" json:"role"`
	IsVerified        bool       `gorm:"default:false" json:"isVerified"`
	VerificationToken string     `gorm:"size:128;index" json:"-"`
	VerifiedAt        *time.Time `json:"verifiedAt,omitempty"`
}

// UserRef is the public projection embedded in listings (addedBy, user).
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Ref() *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
