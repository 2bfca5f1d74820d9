package order

import (
	"fmt"
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	orderdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/order"
)

// ConfirmDelivery records the buyer acknowledging receipt. Only after this
// confirmation do ordinary escrow releases become possible.
func (uc *DefaultOrderUsecase) ConfirmDelivery(input *orderdto.ConfirmDeliveryInput) error {
	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return err
	}

	order, err := uc.orderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return err
	}
	if order.BuyerID != actor.ID {
		return domain.Deny("only the order buyer may confirm delivery")
	}
	if order.Status != domain.StatusDelivered && order.Status != domain.StatusCompleted {
		return fmt.Errorf("%w: order %s is %s, not delivered yet",
			domain.ErrInvalidTransition, order.ID, order.Status)
	}

	escrow, err := uc.escrowRepo.GetEscrowByOrderID(order.ID)
	if err != nil {
		return err
	}
	// Already confirmed, or the payout already settled (the COMPLETED path):
	// nothing left to record.
	if escrow.DeliveryConfirmedAt != nil || escrow.Status.Terminal() {
		return nil
	}

	before := domain.Snapshot(escrow)
	version := escrow.Version
	if err := escrow.ConfirmDelivery(time.Now()); err != nil {
		return err
	}

	op := domain.NewEscrowOperation(escrow.OrderID, domain.EscrowActionConfirm, version, actor.ID, "buyer delivery confirmation")
	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "DELIVERY_CONFIRM",
		TargetType: "ESCROW",
		TargetID:   escrow.ID,
		Reason:     "buyer delivery confirmation",
		Before:     before,
		After:      domain.Snapshot(escrow),
	}
	if err := uc.escrowRepo.ProcessEscrowOperation(op, escrow, nil, nil, entry); err != nil {
		return err
	}

	uc.recordDeliveryConfirmed()
	return nil
}
