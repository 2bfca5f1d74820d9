package models

import "time"

type RFQModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	BuyerID     string `gorm:"type:uuid;index:idx_rfq_buyer"`
	SupplierID  string `gorm:"type:uuid"`
	Category    string
	Quantity    int64
	Region      string
	CountryCode string
	ServicePlan string
	Status      string `gorm:"index:idx_rfq_status_expires"`
	Quote       string `gorm:"type:jsonb"`
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ExpiresAt   time.Time `gorm:"index:idx_rfq_status_expires"`
}

func (RFQModel) TableName() string {
	return "rfqs"
}
