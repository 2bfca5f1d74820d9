package rfq

import (
	"fmt"
	"log/slog"

	"github.com/kolatrade/trade-core-service/internal/domain"
	publisher "github.com/kolatrade/trade-core-service/internal/infrastructure/kafka"
	"github.com/kolatrade/trade-core-service/internal/usecase/capability"
	rfqdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/rfq"
)

// AssignSupplier attaches a supplier to a pending RFQ. Re-assigning the same
// supplier is an idempotent no-op; a different supplier on an already
// assigned RFQ is a conflict.
func (uc *DefaultRFQUsecase) AssignSupplier(input *rfqdto.AssignSupplierInput) error {
	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return err
	}
	if actor.Role != domain.RoleOps && actor.Role != domain.RoleAdmin {
		return domain.Deny("ops role required")
	}

	rfq, err := uc.rfqRepo.GetRFQByID(input.RFQID)
	if err != nil {
		return err
	}
	if rfq.Status != domain.RFQPending && rfq.Status != domain.RFQAssigned {
		return fmt.Errorf("%w: rfq %s is %s", domain.ErrInvalidTransition, rfq.ID, rfq.Status)
	}
	if rfq.SupplierID != "" {
		if rfq.SupplierID == input.SupplierID {
			return nil
		}
		return fmt.Errorf("%w: rfq %s already assigned to another supplier", domain.ErrConflict, rfq.ID)
	}

	supplier, err := uc.accountRepo.GetAccountByID(input.SupplierID)
	if err != nil {
		return err
	}
	decision := capability.Authorize(supplier, capability.ActionRFQRespond, capability.Context{})
	if err := decision.Err(); err != nil {
		return err
	}

	before := domain.Snapshot(rfq)
	expected := rfq.Status
	rfq.SupplierID = supplier.ID
	rfq.Status = domain.RFQAssigned

	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "RFQ_ASSIGN",
		TargetType: "RFQ",
		TargetID:   rfq.ID,
		Before:     before,
		After:      domain.Snapshot(rfq),
	}
	if err := uc.rfqRepo.UpdateRFQ(rfq, expected, entry); err != nil {
		return err
	}

	go func(event publisher.RFQEvent) {
		if err := publisher.PublishRFQEvent(uc.publisher, event); err != nil {
			slog.Error("failed to publish rfq event", "stage", "assigning", "error", err.Error())
		}
	}(publisher.RFQEvent{
		RFQID:      rfq.ID,
		BuyerID:    rfq.BuyerID,
		SupplierID: rfq.SupplierID,
		Status:     string(rfq.Status),
	})

	return nil
}
