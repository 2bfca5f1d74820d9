package models

import "time"

type OrderModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	BuyerID       string `gorm:"type:uuid;index:idx_order_buyer"`
	SupplierID    string `gorm:"type:uuid"`
	RFQID         string
	Type          string
	Status        string `gorm:"index:idx_order_status"`
	DisputeID     string
	CountryCode   string
	International bool
	TotalAmount   int64
	Currency      string
	OpsNotes      string
	ShipmentID    string
	Metadata      string `gorm:"type:jsonb"`

	DocsApprovedAt     *time.Time
	ShippingArrangedAt *time.Time
	ShippedAt          *time.Time
	CustomsClearanceAt *time.Time
	DeliveredAt        *time.Time
	CompletedAt        *time.Time

	CreatedAt time.Time `gorm:"index:idx_order_created_at"`
	UpdatedAt time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

type TradeDocumentModel struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	OrderID string `gorm:"type:uuid;index:idx_document_order"`
	Type    string
	Status  string
}

func (TradeDocumentModel) TableName() string {
	return "trade_documents"
}

type ShipmentModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	OrderID     string `gorm:"type:uuid;uniqueIndex:idx_shipment_order"`
	Carrier     string
	TrackingRef string
}

func (ShipmentModel) TableName() string {
	return "shipments"
}
