package domain

import "time"

type RFQStatus string

const (
	RFQPending   RFQStatus = "PENDING"
	RFQAssigned  RFQStatus = "ASSIGNED"
	RFQQuoted    RFQStatus = "QUOTED"
	RFQConfirmed RFQStatus = "CONFIRMED"
	RFQCancelled RFQStatus = "CANCELLED"
	RFQExpired   RFQStatus = "EXPIRED"
)

// Terminal reports whether the RFQ is immutable.
func (s RFQStatus) Terminal() bool {
	return s == RFQConfirmed || s == RFQCancelled || s == RFQExpired
}

type ServicePlan string

const (
	PlanBasic    ServicePlan = "BASIC"
	PlanPremium  ServicePlan = "PREMIUM"
	PlanBusiness ServicePlan = "BUSINESS"
)

// QuoteBreakdown is the pricing snapshot written when ops generates a quote.
// Amounts are minor currency units. Re-quoting overwrites the whole snapshot.
type QuoteBreakdown struct {
	UnitPrice         int64     `json:"unit_price"`
	Quantity          int64     `json:"quantity"`
	ProductTotal      int64     `json:"product_total"`
	PackagingPerUnit  int64     `json:"packaging_per_unit"`
	PackagingTotal    int64     `json:"packaging_total"`
	FulfillmentFee    int64     `json:"fulfillment_fee"`
	FulfillmentBps    int64     `json:"fulfillment_bps"`
	DutyAmount        int64     `json:"duty_amount"`
	DeliveryBase      int64     `json:"delivery_base"`
	ShippingEstimate  int64     `json:"shipping_estimate"`
	Total             int64     `json:"total"`
	Notes             string    `json:"notes,omitempty"`
	QuotedBy          string    `json:"quoted_by"`
	QuotedAt          time.Time `json:"quoted_at"`
}

type RFQ struct {
	ID          string
	BuyerID     string
	SupplierID  string
	Category    string
	Quantity    int64
	Region      string
	CountryCode string
	ServicePlan ServicePlan
	Status      RFQStatus
	Quote       *QuoteBreakdown
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ExpiresAt   time.Time
}

type RFQRepository interface {
	CreateRFQ(rfq *RFQ) error
	GetRFQByID(rfqID string) (*RFQ, error)
	// UpdateRFQ persists the RFQ guarded by the expected current status so
	// per-RFQ transitions serialize; a status mismatch returns ErrConflict.
	UpdateRFQ(rfq *RFQ, expectedStatus RFQStatus, entry *AuditEntry) error
	// ConfirmRFQ flips the RFQ to CONFIRMED and creates the order and its
	// escrow record in one transaction.
	ConfirmRFQ(rfq *RFQ, order *Order, escrow *EscrowRecord, entry *AuditEntry) error
	FindExpiredRFQs(now time.Time) ([]*RFQ, error)
}
