package escrow

import (
	"fmt"

	"github.com/kolatrade/trade-core-service/internal/domain"
	escrowdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/escrow"
)

// RefundEscrow returns part or all of the locked balance to the buyer.
// A reason is mandatory and lands verbatim on the audit entry.
func (uc *DefaultEscrowUsecase) RefundEscrow(input *escrowdto.RefundEscrowInput) (*domain.EscrowRecord, error) {
	if input.Reason == "" {
		return nil, fmt.Errorf("%w: reason is required for escrow refund", domain.ErrValidation)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: refund amount must be positive", domain.ErrValidation)
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

	version := input.Version
	if version == 0 {
		version = escrow.Version
	}
	if version != escrow.Version {
		return nil, fmt.Errorf("%w: escrow version %d is stale", domain.ErrConflict, version)
	}

	before := domain.Snapshot(escrow)
	if err := escrow.Refund(input.Amount, false); err != nil {
		return nil, err
	}

	op := domain.NewEscrowOperation(escrow.OrderID, domain.EscrowActionRefund, version, actor.ID, input.Reason)
	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "ESCROW_REFUND",
		TargetType: "ESCROW",
		TargetID:   escrow.ID,
		Reason:     input.Reason,
		Before:     before,
		After:      domain.Snapshot(escrow),
	}
	if err := uc.escrowRepo.ProcessEscrowOperation(op, escrow, nil, nil, entry); err != nil {
		return nil, err
	}

	uc.recordEscrowRefunded(escrow, input.Amount)
	uc.publishEscrowEvent(escrow, "refund", input.Amount)
	return escrow, nil
}
