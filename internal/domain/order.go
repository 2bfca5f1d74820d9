package domain

import "time"

type OrderStatus string

const (
	StatusPendingReview    OrderStatus = "PENDING_REVIEW"
	StatusDocsRequired     OrderStatus = "DOCS_REQUIRED"
	StatusDocsSubmitted    OrderStatus = "DOCS_SUBMITTED"
	StatusDocsApproved     OrderStatus = "DOCS_APPROVED"
	StatusShippingArranged OrderStatus = "SHIPPING_ARRANGED"
	StatusInTransit        OrderStatus = "IN_TRANSIT"
	StatusCustomsClearance OrderStatus = "CUSTOMS_CLEARANCE"
	StatusDelivered        OrderStatus = "DELIVERED"
	StatusCompleted        OrderStatus = "COMPLETED"
)

// opsTransitions is the transition table ops may drive. COMPLETED is absent
// on purpose: it is reachable only through the finance path once escrow is
// terminal.
var opsTransitions = map[OrderStatus][]OrderStatus{
	StatusPendingReview:    {StatusDocsRequired, StatusDocsApproved},
	StatusDocsRequired:     {StatusDocsSubmitted},
	StatusDocsSubmitted:    {StatusDocsApproved, StatusDocsRequired},
	StatusDocsApproved:     {StatusShippingArranged},
	StatusShippingArranged: {StatusInTransit},
	StatusInTransit:        {StatusCustomsClearance, StatusDelivered},
	StatusCustomsClearance: {StatusDelivered},
	StatusDelivered:        {StatusCompleted},
}

// CanTransition reports whether target is reachable from s in one ops step.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	for _, next := range opsTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

type OrderType string

const (
	TypeRFQ    OrderType = "RFQ"
	TypeBuyNow OrderType = "BUY_NOW"
)

type Order struct {
	ID            string
	BuyerID       string
	SupplierID    string
	RFQID         string // empty for direct buy-now orders
	Type          OrderType
	Status        OrderStatus
	DisputeID     string // non-empty while a dispute is open or unresolved
	CountryCode   string
	International bool
	TotalAmount   int64
	Currency      string
	OpsNotes      string
	ShipmentID    string
	MetadataJSON  []byte

	DocsApprovedAt     *time.Time
	ShippingArrangedAt *time.Time
	ShippedAt          *time.Time
	CustomsClearanceAt *time.Time
	DeliveredAt        *time.Time
	CompletedAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderRepository interface {
	GetOrderByID(orderID string) (*Order, error)
	// UpdateOrder persists the order guarded by the expected current status;
	// a mismatch returns ErrConflict so concurrent advances serialize.
	UpdateOrder(order *Order, expectedStatus OrderStatus, entry *AuditEntry) error
	GetOrdersByBuyerID(buyerID string, page, limit int64) ([]*Order, int64, error)
}

// Collaborator stores, read-only to the core.

type DocumentStatus string

const (
	DocPending  DocumentStatus = "PENDING"
	DocApproved DocumentStatus = "APPROVED"
	DocRejected DocumentStatus = "REJECTED"
)

type TradeDocument struct {
	ID      string
	OrderID string
	Type    string
	Status  DocumentStatus
}

type DocumentStore interface {
	GetOrderDocuments(orderID string) ([]*TradeDocument, error)
}

type Shipment struct {
	ID          string
	OrderID     string
	Carrier     string
	TrackingRef string
}

type ShipmentStore interface {
	GetOrderShipment(orderID string) (*Shipment, error)
}
