package models

type TrainingResource struct {
	Base

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Category    string `gorm:"size:80;index" json:"category,omitempty"`
	VideoURL    string `gorm:"size:500" json:"videoUrl,omitempty"`
}
