package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleBuyer    Role = "BUYER"
	RoleSupplier Role = "SUPPLIER"
	RoleOps      Role = "OPS"
	RoleAdmin    Role = "ADMIN"
)

// SupplierKind survives role normalization so onboarding rules that differ
// between factories and wholesalers keep working.
type SupplierKind string

const (
	SupplierFactory    SupplierKind = "FACTORY"
	SupplierWholesaler SupplierKind = "WHOLESALER"
)

// NormalizeRole maps the legacy role strings still present in stored
// accounts ("FACTORY", "WHOLESALER", "RETAILER", admin variants) onto the
// canonical taxonomy. Called once at the capability gate boundary; business
// logic never sees a raw role string.
func NormalizeRole(raw string) (Role, SupplierKind) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "FACTORY":
		return RoleSupplier, SupplierFactory
	case "WHOLESALER":
		return RoleSupplier, SupplierWholesaler
	case "SUPPLIER":
		return RoleSupplier, ""
	case "BUYER", "RETAILER":
		return RoleBuyer, ""
	case "OPS":
		return RoleOps, ""
	case "ADMIN", "SUPER_ADMIN", "FINANCE_ADMIN":
		return RoleAdmin, ""
	default:
		return RoleBuyer, ""
	}
}

type VerificationTick string

const (
	TickNone  VerificationTick = "NONE"
	TickBlue  VerificationTick = "BLUE"
	TickGreen VerificationTick = "GREEN"
	TickGold  VerificationTick = "GOLD"
)

type Account struct {
	ID              string
	Name            string
	Role            Role
	SupplierKind    SupplierKind
	Country         string
	Tick            VerificationTick
	IsFrozen        bool
	FreezeReason    string
	CanCreateOrders bool
	CanRespondToRfq bool
	CanWithdraw     bool
	CanListProducts bool
	LimitNotes      string
	LimitExpiresAt  *time.Time
	IsActive        bool
	ProfileJSON     []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Allowed reports a granular flag with the freeze invariant applied: a
// frozen account has every capability off regardless of the stored value.
func (a *Account) Allowed(flag bool) bool {
	if a.IsFrozen {
		return false
	}
	return flag
}

type AccountRepository interface {
	GetAccountByID(accountID string) (*Account, error)
	UpdateControls(account *Account, entry *AuditEntry) error
	FindExpiredLimits(now time.Time) ([]*Account, error)
}
