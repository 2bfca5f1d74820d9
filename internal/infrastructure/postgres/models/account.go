package models

import "time"

type AccountModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Name            string
	Role            string `gorm:"index:idx_account_role"`
	SupplierKind    string
	Country         string
	Tick            string
	IsFrozen        bool
	FreezeReason    string
	CanCreateOrders bool
	CanRespondToRfq bool
	CanWithdraw     bool
	CanListProducts bool
	LimitNotes      string
	LimitExpiresAt  *time.Time `gorm:"index:idx_account_limit_expires"`
	IsActive        bool
	Profile         string `gorm:"type:jsonb"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (AccountModel) TableName() string {
	return "accounts"
}
