package models

type Donation struct {
	Base

	UserID string `gorm:"type:uuid;not null;index" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Amount        float64 `gorm:"not null" json:"amount"`
	Cause         string  `gorm:"size:150;not null;index" json:"cause"`
	PaymentStatus string  `gorm:"size:20;default:'pending';index" json:"paymentStatus"`
}

func (d *Donation) OwnerID() string { return d.UserID }
