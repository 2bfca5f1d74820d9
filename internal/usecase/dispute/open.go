package dispute

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	nanoid "github.com/jaevor/go-nanoid"
	"github.com/kolatrade/trade-core-service/internal/domain"
	publisher "github.com/kolatrade/trade-core-service/internal/infrastructure/kafka"
	"github.com/kolatrade/trade-core-service/internal/usecase/capability"
	disputedto "github.com/kolatrade/trade-core-service/internal/usecase/dto/dispute"
)

var newDisputeID = func() string {
	gen, err := nanoid.Standard(21)
	if err != nil {
		panic(err)
	}
	return gen()
}

// OpenDispute is raised by either party to a non-completed order. Opening
// puts the escrow record on dispute hold, so releases, refunds and further
// ops advancement are blocked until resolution.
func (uc *DefaultDisputeUsecase) OpenDispute(input *disputedto.OpenDisputeInput) (*domain.Dispute, error) {
	if input.Description == "" {
		return nil, fmt.Errorf("%w: dispute description is required", domain.ErrValidation)
	}

	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return nil, err
	}
	decision := capability.Authorize(actor, capability.ActionDisputeOpen, capability.Context{})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if actor.ID != order.BuyerID && actor.ID != order.SupplierID {
		return nil, domain.Deny("only the buyer or supplier on the order may open a dispute")
	}
	if order.Status == domain.StatusCompleted {
		return nil, fmt.Errorf("%w: order %s is already completed", domain.ErrInvalidTransition, order.ID)
	}

	existing, err := uc.disputeRepo.GetOpenDisputeByOrderID(order.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: order %s already has open dispute %s", domain.ErrConflict, order.ID, existing.ID)
	}

	escrow, err := uc.escrowRepo.GetEscrowByOrderID(order.ID)
	if err != nil {
		return nil, err
	}

	escrowBefore := domain.Snapshot(escrow)
	if err := escrow.Hold(); err != nil {
		return nil, err
	}

	now := time.Now()
	dispute := &domain.Dispute{
		ID:           newDisputeID(),
		OrderID:      order.ID,
		BuyerID:      order.BuyerID,
		SupplierID:   order.SupplierID,
		Type:         input.Type,
		Status:       domain.DisputeOpen,
		Description:  input.Description,
		EvidenceJSON: input.Evidence,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	order.DisputeID = dispute.ID

	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "DISPUTE_OPEN",
		TargetType: "DISPUTE",
		TargetID:   dispute.ID,
		Reason:     input.Description,
		Before:     escrowBefore,
		After:      domain.Snapshot(escrow),
	}
	if err := uc.disputeRepo.CreateDispute(dispute, order, escrow, entry); err != nil {
		return nil, err
	}

	uc.recordDisputeOpened()
	uc.publishDisputeEvent(dispute)
	return dispute, nil
}

func (uc *DefaultDisputeUsecase) publishDisputeEvent(dispute *domain.Dispute) {
	go func(event publisher.DisputeEvent) {
		if err := publisher.PublishDisputeEvent(uc.publisher, event); err != nil {
			slog.Error("failed to publish dispute event", "dispute_id", dispute.ID, "error", err.Error())
		}
	}(publisher.DisputeEvent{
		DisputeID: dispute.ID,
		OrderID:   dispute.OrderID,
		Status:    string(dispute.Status),
	})
}
