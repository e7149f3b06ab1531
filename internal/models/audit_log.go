package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action string `gorm:"size:50;not null;index" json:"action"`

	Entity    string `gorm:"size:50;index" json:"entity"`
	EntityID  *uint  `json:"entity_id"`
	RequestID string `gorm:"size:64" json:"request_id"`
	UserID    string `gorm:"size:64;index" json:"user_id"`
	Metadata  string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
