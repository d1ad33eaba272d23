package models

import (
	"time"
)

// AuditLog records every master-data mutation: who changed which entity, and how
type AuditLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	UserID     uint   `gorm:"index" json:"userId"`
	UserName   string `gorm:"size:150" json:"userName"`
	EntityType string `gorm:"size:50;not null;index" json:"entityType"`
	EntityID   uint   `gorm:"not null;index" json:"entityId"`
	Action     string `gorm:"size:20;not null" json:"action"` // create, update, activate, deactivate
	IPAddress  string `gorm:"type:varchar(45)" json:"ipAddress"`
	UserAgent  string `gorm:"type:text" json:"userAgent"`
}

// TableName specifies the table name
func (AuditLog) TableName() string {
	return "audit_logs"
}
