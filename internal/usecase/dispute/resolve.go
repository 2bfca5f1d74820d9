package dispute

import (
	"fmt"
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/usecase/capability"
	disputedto "github.com/kolatrade/trade-core-service/internal/usecase/dto/dispute"
)

// ResolveDispute applies the ops verdict: money moves on the escrow record,
// the hold clears and the order unblocks, all in one transaction. A dispute
// resolution may bypass the delivery confirmation gate, but never the escrow
// balance invariant.
func (uc *DefaultDisputeUsecase) ResolveDispute(input *disputedto.ResolveDisputeInput) (*domain.Dispute, error) {
	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return nil, err
	}
	decision := capability.Authorize(actor, capability.ActionDisputeResolve, capability.Context{})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	dispute, err := uc.disputeRepo.GetDisputeByID(input.DisputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status.Resolved() {
		return nil, fmt.Errorf("%w: dispute %s already resolved as %s",
			domain.ErrConflict, dispute.ID, dispute.Status)
	}
	if dispute.Status != domain.DisputeOpen && dispute.Status != domain.DisputeInvestigating {
		return nil, fmt.Errorf("%w: dispute %s is %s", domain.ErrInvalidTransition, dispute.ID, dispute.Status)
	}

	escrow, err := uc.escrowRepo.GetEscrowByOrderID(dispute.OrderID)
	if err != nil {
		return nil, err
	}
	order, err := uc.orderRepo.GetOrderByID(dispute.OrderID)
	if err != nil {
		return nil, err
	}

	resolution := domain.ResolutionType(input.ResolutionType)
	refund := input.RefundAmount
	switch resolution {
	case domain.ResolutionFullRefund:
		refund = escrow.Remaining()
	case domain.ResolutionPartialRefund:
		if refund <= 0 {
			return nil, fmt.Errorf("%w: partial refund requires a positive amount", domain.ErrValidation)
		}
	case domain.ResolutionNoAction:
		if refund != 0 || input.SupplierPenalty != 0 {
			return nil, fmt.Errorf("%w: no-action resolution cannot move money", domain.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown resolution type %q", domain.ErrValidation, input.ResolutionType)
	}
	if (refund > 0 || input.SupplierPenalty > 0) && input.Notes == "" {
		return nil, fmt.Errorf("%w: resolution notes are required when money moves", domain.ErrValidation)
	}

	escrowBefore := domain.Snapshot(escrow)
	version := escrow.Version
	if err := escrow.ApplyResolution(refund, input.SupplierPenalty); err != nil {
		return nil, err
	}

	now := time.Now()
	dispute.ResolutionType = resolution
	dispute.ResolutionNotes = input.Notes
	dispute.RefundAmount = refund
	dispute.SupplierPenalty = input.SupplierPenalty
	dispute.BuyerCredit = input.BuyerCredit
	dispute.ResolvedAt = &now
	dispute.ResolvedBy = actor.ID
	dispute.Status = resolvedStatus(resolution)

	order.DisputeID = ""
	if escrow.Status.Terminal() {
		order.Status = domain.StatusCompleted
		order.CompletedAt = &now
	}

	op := domain.NewEscrowOperation(escrow.OrderID, domain.EscrowActionResolution, version, actor.ID, input.Notes)
	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "DISPUTE_RESOLVE",
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

func resolvedStatus(resolution domain.ResolutionType) domain.DisputeStatus {
	switch resolution {
	case domain.ResolutionFullRefund:
		return domain.DisputeResolvedBuyerFavor
	case domain.ResolutionPartialRefund:
		return domain.DisputeResolvedPartial
	default:
		return domain.DisputeResolvedSupplierFavor
	}
}
