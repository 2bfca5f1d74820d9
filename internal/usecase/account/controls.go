package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	accountdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/account"
)

const (
	ActionFreeze   = "FREEZE"
	ActionUnfreeze = "UNFREEZE"
	ActionLimit    = "LIMIT"
	ActionUnlimit  = "UNLIMIT"
)

// UpdateControls is the admin surface for account enforcement. Freeze and
// unfreeze always require a reason; limits toggle the granular capability
// flags and may carry an expiry after which the sweep restores them.
func (uc *DefaultAccountUsecase) UpdateControls(input *accountdto.UpdateControlsInput) (*domain.Account, error) {
	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleOps && actor.Role != domain.RoleAdmin {
		return nil, domain.Deny("ops role required")
	}

	account, err := uc.accountRepo.GetAccountByID(input.AccountID)
	if err != nil {
		return nil, err
	}

	before := domain.Snapshot(account)

	switch input.Action {
	case ActionFreeze:
		if input.Reason == "" {
			return nil, fmt.Errorf("%w: freeze requires a reason", domain.ErrValidation)
		}
		if account.IsFrozen {
			return nil, fmt.Errorf("%w: account %s already frozen", domain.ErrConflict, account.ID)
		}
		account.IsFrozen = true
		account.FreezeReason = input.Reason
	case ActionUnfreeze:
		if input.Reason == "" {
			return nil, fmt.Errorf("%w: unfreeze requires a reason", domain.ErrValidation)
		}
		if !account.IsFrozen {
			return nil, fmt.Errorf("%w: account %s is not frozen", domain.ErrConflict, account.ID)
		}
		account.IsFrozen = false
		account.FreezeReason = ""
	case ActionLimit:
		applyFlag(&account.CanCreateOrders, input.CanCreateOrders)
		applyFlag(&account.CanRespondToRfq, input.CanRespondToRfq)
		applyFlag(&account.CanWithdraw, input.CanWithdraw)
		applyFlag(&account.CanListProducts, input.CanListProducts)
		account.LimitNotes = input.LimitNotes
		account.LimitExpiresAt = input.LimitExpiresAt
	case ActionUnlimit:
		account.CanCreateOrders = true
		account.CanRespondToRfq = true
		account.CanWithdraw = true
		account.CanListProducts = true
		account.LimitNotes = ""
		account.LimitExpiresAt = nil
	default:
		return nil, fmt.Errorf("%w: unknown control action %q", domain.ErrValidation, input.Action)
	}

	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "ACCOUNT_" + input.Action,
		TargetType: "ACCOUNT",
		TargetID:   account.ID,
		Reason:     input.Reason,
		Before:     before,
		After:      domain.Snapshot(account),
	}
	if err := uc.accountRepo.UpdateControls(account, entry); err != nil {
		return nil, err
	}

	uc.recordControlAction(input.Action)
	return account, nil
}

// ExpireLimits is driven by the background ticker: any account whose limit
// expiry has passed gets its capability flags restored.
func (uc *DefaultAccountUsecase) ExpireLimits(ctx context.Context) error {
	accounts, err := uc.accountRepo.FindExpiredLimits(time.Now())
	if err != nil {
		return err
	}
	for _, account := range accounts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		before := domain.Snapshot(account)
		account.CanCreateOrders = true
		account.CanRespondToRfq = true
		account.CanWithdraw = true
		account.CanListProducts = true
		account.LimitNotes = ""
		account.LimitExpiresAt = nil

		entry := &domain.AuditEntry{
			ActorID:    "system",
			Action:     "ACCOUNT_LIMIT_EXPIRED",
			TargetType: "ACCOUNT",
			TargetID:   account.ID,
			Reason:     "limit expiry reached",
			Before:     before,
			After:      domain.Snapshot(account),
		}
		if err := uc.accountRepo.UpdateControls(account, entry); err != nil {
			slog.Error("failed to lift expired limit", "account_id", account.ID, "error", err.Error())
			continue
		}
		uc.recordControlAction("LIMIT_EXPIRED")
	}
	return nil
}

func applyFlag(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
