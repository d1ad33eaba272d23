package services

import (
	"log"

	"sales_demarcation_go/models"

	"gorm.io/gorm"
)

// AuditContext carries the request identity recorded with each mutation
type AuditContext struct {
	UserID    uint
	UserName  string
	IPAddress string
	UserAgent string
}

// RecordAudit writes an audit row for a master-data mutation. Audit failures
// are logged but never fail the mutation itself.
func RecordAudit(db *gorm.DB, ctx AuditContext, entityType string, entityID uint, action string) {
	entry := models.AuditLog{
		UserID:     ctx.UserID,
		UserName:   ctx.UserName,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		IPAddress:  ctx.IPAddress,
		UserAgent:  ctx.UserAgent,
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Printf("Failed to write audit log (%s %s/%d): %v", action, entityType, entityID, err)
	}
}

// GetAuditLogs returns the most recent audit rows, optionally filtered by entity type
func GetAuditLogs(db *gorm.DB, entityType string, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := db.Order("created_at DESC").Limit(limit)
	if entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}

	var rows []models.AuditLog
	err := query.Find(&rows).Error
	return rows, err
}
