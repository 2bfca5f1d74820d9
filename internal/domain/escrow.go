package domain

import (
	"fmt"
	"time"
)

type EscrowStatus string

const (
	EscrowPending        EscrowStatus = "PENDING"
	EscrowLocked         EscrowStatus = "LOCKED"
	EscrowPartialRelease EscrowStatus = "PARTIAL_RELEASE"
	EscrowReleased       EscrowStatus = "RELEASED"
	EscrowRefunded       EscrowStatus = "REFUNDED"
	EscrowDisputed       EscrowStatus = "DISPUTED"
)

func (s EscrowStatus) Terminal() bool {
	return s == EscrowReleased || s == EscrowRefunded
}

// EscrowRecord owns the monetary truth for one order. Amounts are minor
// currency units. The invariant held at all times:
//
//	ReleasedAmount + RefundedAmount + PenaltyAmount <= TotalAmount - PlatformFeeAmount
//
// RefundedAmount is money returned to the buyer; PenaltyAmount is money
// withheld from the supplier side by a dispute verdict. Status is derived
// from the amounts plus the dispute hold; mutators bump Version so retried
// operations with a stale version are rejected.
type EscrowRecord struct {
	ID                  string
	OrderID             string
	TotalAmount         int64
	ReleasedAmount      int64
	RefundedAmount      int64
	PenaltyAmount       int64
	PlatformFeeAmount   int64
	Status              EscrowStatus
	DisputeHold         bool
	DeliveryConfirmedAt *time.Time
	Version             int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Remaining is the balance still lockable for release or refund.
func (e *EscrowRecord) Remaining() int64 {
	return e.TotalAmount - e.PlatformFeeAmount - e.ReleasedAmount - e.RefundedAmount - e.PenaltyAmount
}

func (e *EscrowRecord) deriveStatus() EscrowStatus {
	if e.DisputeHold {
		return EscrowDisputed
	}
	if e.Remaining() == 0 {
		if e.ReleasedAmount == 0 {
			return EscrowRefunded
		}
		return EscrowReleased
	}
	if e.ReleasedAmount > 0 || e.RefundedAmount > 0 || e.PenaltyAmount > 0 {
		return EscrowPartialRelease
	}
	return EscrowLocked
}

// Lock moves the record from PENDING to LOCKED once buyer payment capture
// is reported by the payments collaborator.
func (e *EscrowRecord) Lock(amount, fee int64) error {
	if e.Status != EscrowPending {
		return fmt.Errorf("%w: escrow %s cannot be locked from %s", ErrInvalidTransition, e.ID, e.Status)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: lock amount must be positive", ErrValidation)
	}
	if fee < 0 || fee > amount {
		return fmt.Errorf("%w: platform fee out of range", ErrValidation)
	}
	e.TotalAmount = amount
	e.PlatformFeeAmount = fee
	e.Status = EscrowLocked
	e.Version++
	return nil
}

// Release moves amount to the supplier side. When resolution is false the
// call requires a confirmed delivery; dispute resolutions bypass that check
// but never the balance invariant. Exceeding the remaining balance is
// rejected, never clamped, and the balance is checked before the state
// guards: over-releasing a settled record reports ErrBalanceExceeded.
func (e *EscrowRecord) Release(amount int64, resolution bool) error {
	if amount <= 0 {
		return fmt.Errorf("%w: release amount must be positive", ErrValidation)
	}
	if amount > e.Remaining() {
		return fmt.Errorf("%w: release %d exceeds remaining %d", ErrBalanceExceeded, amount, e.Remaining())
	}
	if err := e.checkMutable(resolution); err != nil {
		return err
	}
	if !resolution && e.DeliveryConfirmedAt == nil {
		return fmt.Errorf("%w: delivery not confirmed for order %s", ErrInvalidTransition, e.OrderID)
	}
	e.ReleasedAmount += amount
	e.finishMutation(resolution)
	return nil
}

// Refund moves amount back to the buyer side under the same invariant and
// check ordering.
func (e *EscrowRecord) Refund(amount int64, resolution bool) error {
	if amount <= 0 {
		return fmt.Errorf("%w: refund amount must be positive", ErrValidation)
	}
	if amount > e.Remaining() {
		return fmt.Errorf("%w: refund %d exceeds remaining %d", ErrBalanceExceeded, amount, e.Remaining())
	}
	if err := e.checkMutable(resolution); err != nil {
		return err
	}
	e.RefundedAmount += amount
	e.finishMutation(resolution)
	return nil
}

// Hold forces the record into DISPUTED while a dispute is open. Ordinary
// release/refund calls fail until the hold clears.
func (e *EscrowRecord) Hold() error {
	if e.Status.Terminal() {
		return fmt.Errorf("%w: escrow %s already terminal", ErrInvalidTransition, e.ID)
	}
	if e.DisputeHold {
		return fmt.Errorf("%w: escrow %s already on dispute hold", ErrConflict, e.ID)
	}
	e.DisputeHold = true
	e.Status = EscrowDisputed
	e.Version++
	return nil
}

// ApplyResolution performs the dispute outcome in one mutation: refund to
// buyer, penalty withheld from the supplier side, then clears the hold.
// The penalty consumes the remaining balance exactly like a refund does,
// but is tracked separately so RefundedAmount stays buyer money only.
func (e *EscrowRecord) ApplyResolution(refundAmount, supplierPenalty int64) error {
	if !e.DisputeHold {
		return fmt.Errorf("%w: escrow %s has no dispute hold", ErrInvalidTransition, e.ID)
	}
	if e.Status.Terminal() {
		return fmt.Errorf("%w: escrow %s already terminal", ErrInvalidTransition, e.ID)
	}
	if refundAmount < 0 || supplierPenalty < 0 {
		return fmt.Errorf("%w: resolution amounts must not be negative", ErrValidation)
	}
	if refundAmount+supplierPenalty > e.Remaining() {
		return fmt.Errorf("%w: resolution total %d exceeds remaining %d",
			ErrBalanceExceeded, refundAmount+supplierPenalty, e.Remaining())
	}
	e.RefundedAmount += refundAmount
	e.PenaltyAmount += supplierPenalty
	e.DisputeHold = false
	e.Status = e.deriveStatus()
	e.Version++
	return nil
}

// ClearHold ends a dispute without moving money (the CLOSED path).
func (e *EscrowRecord) ClearHold() error {
	if !e.DisputeHold {
		return fmt.Errorf("%w: escrow %s has no dispute hold", ErrInvalidTransition, e.ID)
	}
	e.DisputeHold = false
	e.Status = e.deriveStatus()
	e.Version++
	return nil
}

// ConfirmDelivery records the buyer-side delivery confirmation that unlocks
// ordinary releases.
func (e *EscrowRecord) ConfirmDelivery(at time.Time) error {
	if e.Status.Terminal() {
		return fmt.Errorf("%w: escrow %s already terminal", ErrInvalidTransition, e.ID)
	}
	if e.DeliveryConfirmedAt != nil {
		return nil
	}
	t := at
	e.DeliveryConfirmedAt = &t
	e.Version++
	return nil
}

func (e *EscrowRecord) checkMutable(resolution bool) error {
	if e.DisputeHold && !resolution {
		return fmt.Errorf("%w: escrow %s is on dispute hold", ErrInvalidTransition, e.ID)
	}
	if e.Status.Terminal() {
		return fmt.Errorf("%w: escrow %s already terminal", ErrInvalidTransition, e.ID)
	}
	if !e.DisputeHold && e.Status != EscrowLocked && e.Status != EscrowPartialRelease {
		return fmt.Errorf("%w: escrow %s not mutable from %s", ErrInvalidTransition, e.ID, e.Status)
	}
	return nil
}

func (e *EscrowRecord) finishMutation(resolution bool) {
	if resolution {
		e.DisputeHold = false
	}
	e.Status = e.deriveStatus()
	e.Version++
}

// EscrowAction names a logical mutation for idempotency tokens.
type EscrowAction string

const (
	EscrowActionLock       EscrowAction = "lock"
	EscrowActionRelease    EscrowAction = "release"
	EscrowActionRefund     EscrowAction = "refund"
	EscrowActionHold       EscrowAction = "hold"
	EscrowActionResolution EscrowAction = "resolution"
	EscrowActionConfirm    EscrowAction = "delivery_confirm"
)

// EscrowOperation keys one logical mutation. Token is derived from
// (order id, action, version read before mutating); replaying the same
// token, or running against a version that already advanced, fails with
// ErrConflict instead of double-applying amounts.
type EscrowOperation struct {
	Token           string
	OrderID         string
	Action          EscrowAction
	ExpectedVersion int64
	Reason          string
	ActorID         string
	CreatedAt       time.Time
}

func NewEscrowOperation(orderID string, action EscrowAction, version int64, actorID, reason string) *EscrowOperation {
	return &EscrowOperation{
		Token:           fmt.Sprintf("%s:%s:%d", orderID, action, version),
		OrderID:         orderID,
		Action:          action,
		ExpectedVersion: version,
		ActorID:         actorID,
		Reason:          reason,
		CreatedAt:       time.Now(),
	}
}

type EscrowRepository interface {
	GetEscrowByOrderID(orderID string) (*EscrowRecord, error)
	// ProcessEscrowOperation commits the mutated escrow record together with
	// the operation row, the optional order/dispute updates and the audit
	// entry in one transaction over a row-locked escrow record. A duplicate
	// token or stale version returns ErrConflict with nothing written.
	ProcessEscrowOperation(op *EscrowOperation, escrow *EscrowRecord, order *Order, dispute *Dispute, entry *AuditEntry) error
}
