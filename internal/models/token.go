package models

// Token is the stored refresh credential of a user. Setting IsValid to
// false revokes it.
type Token struct {
	Base

	UserID       string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	RefreshToken string `gorm:"size:128;not null" json:"-"`
	IP           string `gorm:"size:64" json:"ip"`
	UserAgent    string `gorm:"size:255" json:"userAgent"`
	IsValid      bool   `gorm:"default:true" json:"isValid"`
}
