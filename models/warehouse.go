package models

// Warehouse completes the distributor-agency-warehouse mapping
type Warehouse struct {
	MasterData

	WarehouseCode string `gorm:"size:20;uniqueIndex;not null" json:"warehouseCode"`
	WarehouseName string `gorm:"size:100;not null" json:"warehouseName"`
	DistributorID uint   `gorm:"not null;index" json:"distributorId"`
	AgencyID      *uint  `gorm:"index" json:"agencyId"`
	Address       string `gorm:"size:200" json:"address"`

	// Relationships
	Distributor *Distributor `gorm:"foreignKey:DistributorID" json:"distributor,omitempty"`
	Agency      *Agency      `gorm:"foreignKey:AgencyID" json:"agency,omitempty"`
}

// TableName specifies the table name
func (Warehouse) TableName() string {
	return "warehouses"
}
