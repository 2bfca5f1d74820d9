package order

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	publisher "github.com/kolatrade/trade-core-service/internal/infrastructure/kafka"
	"github.com/kolatrade/trade-core-service/internal/usecase/capability"
	orderdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/order"
)

// AdvanceOrder moves an order one step along the fulfillment sequence.
// Advancement is blocked while an unresolved dispute is attached, and
// COMPLETED additionally requires the escrow record to be terminal.
func (uc *DefaultOrderUsecase) AdvanceOrder(input *orderdto.AdvanceOrderInput) (*domain.Order, error) {
	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return nil, err
	}
	decision := capability.Authorize(actor, capability.ActionOrderAdvance, capability.Context{})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	target := domain.OrderStatus(input.TargetStatus)

	if order.DisputeID != "" {
		return nil, fmt.Errorf("%w: order %s has an unresolved dispute", domain.ErrInvalidTransition, order.ID)
	}
	if !order.Status.CanTransition(target) {
		return nil, fmt.Errorf("%w: cannot move order %s from %s to %s",
			domain.ErrInvalidTransition, order.ID, order.Status, target)
	}

	switch target {
	case domain.StatusDocsApproved:
		if err := uc.checkDocsApproved(order); err != nil {
			return nil, err
		}
	case domain.StatusShippingArranged:
		shipment, err := uc.shipmentStore.GetOrderShipment(order.ID)
		if err != nil {
			return nil, err
		}
		if shipment == nil {
			return nil, fmt.Errorf("%w: order %s has no shipment arranged", domain.ErrInvalidTransition, order.ID)
		}
		order.ShipmentID = shipment.ID
	case domain.StatusCompleted:
		escrow, err := uc.escrowRepo.GetEscrowByOrderID(order.ID)
		if err != nil {
			return nil, err
		}
		if !escrow.Status.Terminal() {
			return nil, fmt.Errorf("%w: escrow for order %s is %s, release or refund payout first",
				domain.ErrInvalidTransition, order.ID, escrow.Status)
		}
	}

	before := domain.Snapshot(order)
	expected := order.Status
	now := time.Now()
	order.Status = target
	stampMilestone(order, target, now)
	if input.Notes != "" {
		order.OpsNotes = appendNote(order.OpsNotes, now, input.Notes)
	}

	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "ORDER_ADVANCE",
		TargetType: "ORDER",
		TargetID:   order.ID,
		Reason:     input.Notes,
		Before:     before,
		After:      domain.Snapshot(order),
	}
	if err := uc.orderRepo.UpdateOrder(order, expected, entry); err != nil {
		return nil, err
	}

	uc.recordOrderAdvanced(order)

	go func(event publisher.OrderEvent) {
		if err := publisher.PublishOrderEvent(uc.publisher, event); err != nil {
			slog.Error("failed to publish order event", "stage", "advancing", "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID:    order.ID,
		BuyerID:    order.BuyerID,
		SupplierID: order.SupplierID,
		Status:     string(order.Status),
		Amount:     order.TotalAmount,
		Currency:   order.Currency,
	})

	return order, nil
}

// checkDocsApproved enforces the documentation gate for international
// orders: every linked trade document must be APPROVED.
func (uc *DefaultOrderUsecase) checkDocsApproved(order *domain.Order) error {
	if !order.International {
		return nil
	}
	docs, err := uc.documentStore.GetOrderDocuments(order.ID)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if doc.Status != domain.DocApproved {
			return fmt.Errorf("%w: document %s is %s", domain.ErrInvalidTransition, doc.ID, doc.Status)
		}
	}
	return nil
}

func stampMilestone(order *domain.Order, status domain.OrderStatus, now time.Time) {
	t := now
	switch status {
	case domain.StatusDocsApproved:
		order.DocsApprovedAt = &t
	case domain.StatusShippingArranged:
		order.ShippingArrangedAt = &t
	case domain.StatusInTransit:
		order.ShippedAt = &t
	case domain.StatusCustomsClearance:
		order.CustomsClearanceAt = &t
	case domain.StatusDelivered:
		order.DeliveredAt = &t
	case domain.StatusCompleted:
		order.CompletedAt = &t
	}
}

func appendNote(existing string, at time.Time, note string) string {
	line := fmt.Sprintf("[%s] %s", at.Format(time.RFC3339), note)
	if existing == "" {
		return line
	}
	return existing + "\n" + line
}
