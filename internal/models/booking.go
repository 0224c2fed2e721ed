package models

import "time"

type Booking struct {
	Base

	UserID string `gorm:"type:uuid;not null;index" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	PetID string `gorm:"type:uuid;not null;index" json:"petId"`
	Pet   *Pet   `gorm:"foreignKey:PetID" json:"pet,omitempty"`

	ServiceType  string    `gorm:"size:20;not null;index" json:"serviceType"`
	ProviderName string    `gorm:"size:100" json:"providerName,omitempty"`
	Date         time.Time `gorm:"not null" json:"date"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
	Status       string    `gorm:"size:20;default:'pending';index" json:"status"`
}

func (b *Booking) OwnerID() string { return b.UserID }
