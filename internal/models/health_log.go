package models

import "time"

type HealthLog struct {
	Base

	PetID string `gorm:"type:uuid;not null;index" json:"petId"`
	Pet   *Pet   `gorm:"foreignKey:PetID" json:"pet,omitempty"`

	Vaccination string    `gorm:"size:150" json:"vaccination,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	Date        time.Time `gorm:"index" json:"date"`
}

// OwnerID resolves through the pet; Pet must be loaded.
func (h *HealthLog) OwnerID() string {
	if h.Pet == nil {
		return ""
	}
	return h.Pet.AddedByID
}
