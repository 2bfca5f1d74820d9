package domain

import "time"

type DisputeStatus string

const (
	DisputeOpen                  DisputeStatus = "OPEN"
	DisputeInvestigating         DisputeStatus = "INVESTIGATING"
	DisputeResolvedBuyerFavor    DisputeStatus = "RESOLVED_BUYER_FAVOR"
	DisputeResolvedSupplierFavor DisputeStatus = "RESOLVED_SUPPLIER_FAVOR"
	DisputeResolvedPartial       DisputeStatus = "RESOLVED_PARTIAL"
	DisputeClosed                DisputeStatus = "CLOSED"
)

func (s DisputeStatus) Resolved() bool {
	switch s {
	case DisputeResolvedBuyerFavor, DisputeResolvedSupplierFavor, DisputeResolvedPartial, DisputeClosed:
		return true
	}
	return false
}

type ResolutionType string

const (
	ResolutionFullRefund    ResolutionType = "FULL_REFUND"
	ResolutionPartialRefund ResolutionType = "PARTIAL_REFUND"
	ResolutionNoAction      ResolutionType = "NO_ACTION"
)

type Dispute struct {
	ID              string
	OrderID         string
	BuyerID         string
	SupplierID      string
	Type            string
	Status          DisputeStatus
	Description     string
	EvidenceJSON    []byte
	ResolutionType  ResolutionType
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

type DisputeRepository interface {
	// CreateDispute inserts the dispute, marks the order as disputed and
	// puts the escrow record on hold in one transaction. A second open
	// dispute on the same order returns ErrConflict.
	CreateDispute(dispute *Dispute, order *Order, escrow *EscrowRecord, entry *AuditEntry) error
	GetDisputeByID(disputeID string) (*Dispute, error)
	GetOpenDisputeByOrderID(orderID string) (*Dispute, error)
	UpdateDisputeStatus(dispute *Dispute, expectedStatus DisputeStatus, entry *AuditEntry) error
	GetDisputes(page, limit int64, status string) ([]*Dispute, int64, error)
}
