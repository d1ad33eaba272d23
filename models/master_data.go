package models

import (
	"time"
)

// MasterData carries the fields shared by every master-data entity: a
// server-assigned numeric id, timestamps, and the isActive lifecycle flag.
// There is no physical deletion of master data - rows are only deactivated.
type MasterData struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
}

// GetID returns the primary key.
func (m *MasterData) GetID() uint {
	return m.ID
}

// SetID overrides the primary key. Handlers use it to clear client-supplied
// ids on create so the id stays server-assigned.
func (m *MasterData) SetID(id uint) {
	m.ID = id
}

// Active reports whether the row is active.
func (m *MasterData) Active() bool {
	return m.IsActive
}

// SetActive flips the lifecycle flag.
func (m *MasterData) SetActive(active bool) {
	m.IsActive = active
}

// Entity is implemented by all master-data models via the embedded MasterData.
type Entity interface {
	GetID() uint
	SetID(uint)
	Active() bool
	SetActive(bool)
}
