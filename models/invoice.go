package models

import (
	"time"
)

// Invoice is produced upstream by the billing system and is read-only here.
// DocumentKey points at the stored source document, if one was attached.
type Invoice struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	InvoiceNo     string    `gorm:"size:30;uniqueIndex;not null" json:"invoiceNo"`
	InvoiceDate   time.Time `gorm:"not null;index" json:"invoiceDate"`
	AgencyID      uint      `gorm:"not null;index" json:"agencyId"`
	DistributorID uint      `gorm:"not null;index" json:"distributorId"`
	TotalAmount   float64   `gorm:"not null;default:0" json:"totalAmount"`
	Status        string    `gorm:"size:20;not null;default:ISSUED" json:"status"` // ISSUED, PAID, CANCELLED
	DocumentKey   string    `gorm:"size:255" json:"-"`

	// Relationships
	Agency      *Agency       `gorm:"foreignKey:AgencyID" json:"agency,omitempty"`
	Distributor *Distributor  `gorm:"foreignKey:DistributorID" json:"distributor,omitempty"`
	Lines       []InvoiceLine `gorm:"foreignKey:InvoiceID" json:"lines,omitempty"`
}

// TableName specifies the table name
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceLine is a single product line on an invoice
type InvoiceLine struct {
	ID               uint    `gorm:"primarykey" json:"id"`
	InvoiceID        uint    `gorm:"not null;index" json:"invoiceId"`
	ProductName      string  `gorm:"size:150;not null" json:"productName"`
	SubSubCategoryID *uint   `gorm:"index" json:"subSubCategoryId"`
	Quantity         float64 `gorm:"not null;default:0" json:"quantity"`
	UnitPrice        float64 `gorm:"not null;default:0" json:"unitPrice"`
	Amount           float64 `gorm:"not null;default:0" json:"amount"`
}

// TableName specifies the table name
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}
