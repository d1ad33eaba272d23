package models

// Distributor is a standalone partner mapped to agencies through AgencyDistributor
type Distributor struct {
	MasterData

	DistributorName string `gorm:"size:150;not null" json:"distributorName"`
	Email           string `gorm:"size:150" json:"email"`
	Address1        string `gorm:"size:200" json:"address1"`
	Address2        string `gorm:"size:200" json:"address2"`
	Address3        string `gorm:"size:200" json:"address3"`
	MobileNo        string `gorm:"size:20" json:"mobileNo"`

	// Relationships
	Warehouses []Warehouse `gorm:"foreignKey:DistributorID" json:"warehouses,omitempty"`
}

// TableName specifies the table name
func (Distributor) TableName() string {
	return "distributors"
}
