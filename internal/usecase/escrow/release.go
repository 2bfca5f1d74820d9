package escrow

import (
	"fmt"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/usecase/capability"
	escrowdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/escrow"
)

// ReleaseEscrow pays the supplier out of the locked balance. Amount zero
// releases the full remaining balance. Requires a confirmed delivery, a
// mandatory reason, and a supplier still allowed to withdraw.
func (uc *DefaultEscrowUsecase) ReleaseEscrow(input *escrowdto.ReleaseEscrowInput) (*domain.EscrowRecord, error) {
	if input.Reason == "" {
		return nil, fmt.Errorf("%w: reason is required for escrow release", domain.ErrValidation)
	}

	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleOps && actor.Role != domain.RoleAdmin {
		return nil, domain.Deny("ops role required")
	}

	escrow, err := uc.escrowRepo.GetEscrowByOrderID(input.OrderID)
	if err != nil {
		return nil, err
	}
	order, err := uc.orderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}

	// Funds land on the supplier side, so the supplier's withdraw
	// capability is checked before any money moves.
	supplier, err := uc.accountRepo.GetAccountByID(order.SupplierID)
	if err != nil {
		return nil, err
	}
	decision := capability.Authorize(supplier, capability.ActionEscrowWithdraw, capability.Context{})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	version := input.Version
	if version == 0 {
		version = escrow.Version
	}
	if version != escrow.Version {
		return nil, fmt.Errorf("%w: escrow version %d is stale", domain.ErrConflict, version)
	}

	amount := input.Amount
	if amount == 0 {
		amount = escrow.Remaining()
	}

	before := domain.Snapshot(escrow)
	if err := escrow.Release(amount, false); err != nil {
		return nil, err
	}

	op := domain.NewEscrowOperation(escrow.OrderID, domain.EscrowActionRelease, version, actor.ID, input.Reason)
	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "ESCROW_RELEASE",
		TargetType: "ESCROW",
		TargetID:   escrow.ID,
		Reason:     input.Reason,
		Before:     before,
		After:      domain.Snapshot(escrow),
	}
	if err := uc.escrowRepo.ProcessEscrowOperation(op, escrow, nil, nil, entry); err != nil {
		return nil, err
	}

	uc.recordEscrowReleased(escrow, amount)
	uc.publishEscrowEvent(escrow, "release", amount)
	return escrow, nil
}
