package models

type NotificationMetadata struct {
	ActionType   string  `gorm:"size:30" json:"actionType,omitempty"`
	ResourceID   *string `gorm:"type:uuid" json:"resourceId,omitempty"`
	ResourceType string  `gorm:"size:20" json:"resourceType,omitempty"`
	AdminID      *string `gorm:"type:uuid" json:"adminId,omitempty"`
	AdminName    string  `gorm:"size:100" json:"adminName,omitempty"`
}

type Notification struct {
	Base

	UserID   string               `gorm:"type:uuid;not null;index" json:"userId"`
	Message  string               `gorm:"type:text;not null" json:"message"`
	Type     string               `gorm:"size:20;default:'system'" json:"type"`
	Read     bool                 `gorm:"default:false;index" json:"read"`
	Metadata NotificationMetadata `gorm:"embedded;embeddedPrefix:meta_" json:"metadata"`
}
