package escrow

import (
	"fmt"
	"log/slog"

	"github.com/kolatrade/trade-core-service/internal/domain"
	publisher "github.com/kolatrade/trade-core-service/internal/infrastructure/kafka"
	escrowdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/escrow"
)

// LockEscrow records buyer payment capture reported by the payments
// collaborator: funds are considered collected and the record moves to
// LOCKED. An amount of zero locks the total the escrow was created with.
func (uc *DefaultEscrowUsecase) LockEscrow(input *escrowdto.LockEscrowInput) (*domain.EscrowRecord, error) {
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

	amount := input.Amount
	fee := escrow.PlatformFeeAmount
	if amount == 0 {
		amount = escrow.TotalAmount
	} else if amount != escrow.TotalAmount {
		fee = uc.settings.PlatformFee(amount)
	}

	before := domain.Snapshot(escrow)
	if err := escrow.Lock(amount, fee); err != nil {
		return nil, err
	}

	op := domain.NewEscrowOperation(escrow.OrderID, domain.EscrowActionLock, version, actor.ID, "")
	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "ESCROW_LOCK",
		TargetType: "ESCROW",
		TargetID:   escrow.ID,
		Before:     before,
		After:      domain.Snapshot(escrow),
	}
	if err := uc.escrowRepo.ProcessEscrowOperation(op, escrow, nil, nil, entry); err != nil {
		return nil, err
	}

	uc.recordEscrowLocked(escrow)
	uc.publishEscrowEvent(escrow, "lock", amount)
	return escrow, nil
}

func (uc *DefaultEscrowUsecase) publishEscrowEvent(escrow *domain.EscrowRecord, action string, amount int64) {
	go func(event publisher.EscrowEvent) {
		if err := publisher.PublishEscrowEvent(uc.publisher, event); err != nil {
			slog.Error("failed to publish escrow event", "action", action, "error", err.Error())
		}
	}(publisher.EscrowEvent{
		OrderID: escrow.OrderID,
		Action:  action,
		Amount:  amount,
		Status:  string(escrow.Status),
	})
}
