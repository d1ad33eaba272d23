package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string     `gorm:"not null" json:"name"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	Role        string     `gorm:"not null;default:viewer" json:"role"` // admin, manager, viewer
	IsActive    bool       `gorm:"not null;default:false" json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
