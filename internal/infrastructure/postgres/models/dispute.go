package models

import "time"

type DisputeModel struct {
	ID              string `gorm:"primaryKey"`
	OrderID         string `gorm:"type:uuid;index:idx_dispute_order"`
	BuyerID         string `gorm:"type:uuid"`
	SupplierID      string `gorm:"type:uuid"`
	Type            string
	Status          string `gorm:"index:idx_dispute_status"`
	Description     string
	Evidence        string `gorm:"type:jsonb"`
	ResolutionType  string
	ResolutionNotes string
	InternalNotes   string
	RefundAmount    int64
	SupplierPenalty int64
	BuyerCredit     int64
	ResolvedAt      *time.Time
	ResolvedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (DisputeModel) TableName() string {
	return "disputes"
}
