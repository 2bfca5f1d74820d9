package dispute

import (
	"fmt"
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	disputedto "github.com/kolatrade/trade-core-service/internal/usecase/dto/dispute"
)

// CloseDispute ends a dispute without moving money, typically after the
// parties settle between themselves. The hold clears and the order resumes.
func (uc *DefaultDisputeUsecase) CloseDispute(input *disputedto.CloseDisputeInput) (*domain.Dispute, error) {
	if input.Notes == "" {
		return nil, fmt.Errorf("%w: closing notes are required", domain.ErrValidation)
	}

	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleOps && actor.Role != domain.RoleAdmin {
		return nil, domain.Deny("ops role required")
	}

	dispute, err := uc.disputeRepo.GetDisputeByID(input.DisputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status.Resolved() {
		return nil, fmt.Errorf("%w: dispute %s already resolved as %s",
			domain.ErrConflict, dispute.ID, dispute.Status)
	}

	escrow, err := uc.escrowRepo.GetEscrowByOrderID(dispute.OrderID)
	if err != nil {
		return nil, err
	}
	order, err := uc.orderRepo.GetOrderByID(dispute.OrderID)
	if err != nil {
		return nil, err
	}

	escrowBefore := domain.Snapshot(escrow)
	version := escrow.Version
	if err := escrow.ClearHold(); err != nil {
		return nil, err
	}

	now := time.Now()
	dispute.Status = domain.DisputeClosed
	dispute.ResolutionType = domain.ResolutionNoAction
	dispute.ResolutionNotes = input.Notes
	dispute.ResolvedAt = &now
	dispute.ResolvedBy = actor.ID
	order.DisputeID = ""

	op := domain.NewEscrowOperation(escrow.OrderID, domain.EscrowActionResolution, version, actor.ID, input.Notes)
	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "DISPUTE_CLOSE",
		TargetType: "DISPUTE",
		TargetID:   dispute.ID,
		Reason:     input.Notes,
		Before:     escrowBefore,
		After:      domain.Snapshot(escrow),
	}
	if err := uc.escrowRepo.ProcessEscrowOperation(op, escrow, order, dispute, entry); err != nil {
		return nil, err
	}

	uc.recordDisputeResolved(dispute)
	uc.publishDisputeEvent(dispute)
	return dispute, nil
}
