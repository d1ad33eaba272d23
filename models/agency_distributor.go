package models

// AgencyDistributor is the many-to-many mapping between agencies and distributors.
// AgencyCode is denormalized so mapping rows stay readable without a join.
type AgencyDistributor struct {
	MasterData

	AgencyID      uint   `gorm:"not null;index;uniqueIndex:idx_agency_distributor" json:"agencyId"`
	DistributorID uint   `gorm:"not null;index;uniqueIndex:idx_agency_distributor" json:"distributorId"`
	AgencyCode    string `gorm:"size:20" json:"agencyCode"`

	// Relationships
	Agency      *Agency      `gorm:"foreignKey:AgencyID" json:"agency,omitempty"`
	Distributor *Distributor `gorm:"foreignKey:DistributorID" json:"distributor,omitempty"`
}

// TableName specifies the table name
func (AgencyDistributor) TableName() string {
	return "agency_distributors"
}
