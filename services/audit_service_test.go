package services

import (
	"testing"

	"sales_demarcation_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuditTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	return db
}

func TestRecordAudit(t *testing.T) {
	db := setupAuditTestDB(t)

	ctx := AuditContext{
		UserID:    1,
		UserName:  "Test Admin",
		IPAddress: "127.0.0.1",
		UserAgent: "test-agent",
	}

	RecordAudit(db, ctx, "channel", 7, "deactivate")

	var entry models.AuditLog
	assert.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "channel", entry.EntityType)
	assert.Equal(t, uint(7), entry.EntityID)
	assert.Equal(t, "deactivate", entry.Action)
	assert.Equal(t, "Test Admin", entry.UserName)
}

func TestGetAuditLogs(t *testing.T) {
	db := setupAuditTestDB(t)
	ctx := AuditContext{UserID: 1, UserName: "Test Admin"}

	for i := 0; i < 5; i++ {
		RecordAudit(db, ctx, "channel", uint(i+1), "create")
	}
	RecordAudit(db, ctx, "region", 1, "create")

	t.Run("FilterByEntityType", func(t *testing.T) {
		rows, err := GetAuditLogs(db, "region", 100)
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "region", rows[0].EntityType)
	})

	t.Run("Unfiltered", func(t *testing.T) {
		rows, err := GetAuditLogs(db, "", 100)
		assert.NoError(t, err)
		assert.Len(t, rows, 6)
	})

	t.Run("LimitApplies", func(t *testing.T) {
		rows, err := GetAuditLogs(db, "", 3)
		assert.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("BadLimitFallsBack", func(t *testing.T) {
		for i := 0; i < 120; i++ {
			RecordAudit(db, ctx, "route", uint(i+1), "create")
		}
		rows, err := GetAuditLogs(db, "", 0)
		assert.NoError(t, err)
		assert.Len(t, rows, 100)

		rows, err = GetAuditLogs(db, "", 100000)
		assert.NoError(t, err)
		assert.Len(t, rows, 100)
	})
}

func TestRecordAuditFailureDoesNotPanic(t *testing.T) {
	db := setupAuditTestDB(t)
	assert.NoError(t, db.Migrator().DropTable(&models.AuditLog{}))

	assert.NotPanics(t, func() {
		RecordAudit(db, AuditContext{}, "channel", 1, "create")
	})
}
