package models

import "time"

type EscrowModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	OrderID             string `gorm:"type:uuid;uniqueIndex:idx_escrow_order"`
	TotalAmount         int64
	ReleasedAmount      int64
	RefundedAmount      int64
	PenaltyAmount       int64
	PlatformFeeAmount   int64
	Status              string `gorm:"index:idx_escrow_status"`
	DisputeHold         bool
	DeliveryConfirmedAt *time.Time
	Version             int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (EscrowModel) TableName() string {
	return "escrows"
}

// EscrowOperationModel rows exist only for idempotency: the unique token
// constraint is what turns a replayed mutation into ErrConflict.
type EscrowOperationModel struct {
	Token           string `gorm:"primaryKey"`
	OrderID         string `gorm:"type:uuid;index:idx_escrow_op_order"`
	Action          string
	ExpectedVersion int64
	Reason          string
	ActorID         string
	CreatedAt       time.Time
}

func (EscrowOperationModel) TableName() string {
	return "escrow_operations"
}
