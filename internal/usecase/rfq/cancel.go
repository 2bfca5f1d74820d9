package rfq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	rfqdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/rfq"
)

func (uc *DefaultRFQUsecase) CancelRFQ(input *rfqdto.CancelRFQInput) error {
	rfq, err := uc.rfqRepo.GetRFQByID(input.RFQID)
	if err != nil {
		return err
	}
	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return err
	}
	if actor.ID != rfq.BuyerID && actor.Role != domain.RoleAdmin {
		return domain.Deny("only the requesting buyer may cancel")
	}
	if rfq.Status != domain.RFQPending && rfq.Status != domain.RFQAssigned {
		return fmt.Errorf("%w: rfq %s is %s", domain.ErrInvalidTransition, rfq.ID, rfq.Status)
	}

	before := domain.Snapshot(rfq)
	expected := rfq.Status
	rfq.Status = domain.RFQCancelled

	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "RFQ_CANCEL",
		TargetType: "RFQ",
		TargetID:   rfq.ID,
		Reason:     input.Reason,
		Before:     before,
		After:      domain.Snapshot(rfq),
	}
	return uc.rfqRepo.UpdateRFQ(rfq, expected, entry)
}

// ExpireRFQs moves pending and assigned RFQs past their TTL to EXPIRED.
// Driven by the background ticker.
func (uc *DefaultRFQUsecase) ExpireRFQs(ctx context.Context) error {
	rfqs, err := uc.rfqRepo.FindExpiredRFQs(time.Now())
	if err != nil {
		return err
	}
	for _, rfq := range rfqs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		before := domain.Snapshot(rfq)
		expected := rfq.Status
		rfq.Status = domain.RFQExpired
		entry := &domain.AuditEntry{
			ActorID:    "system",
			Action:     "RFQ_EXPIRE",
			TargetType: "RFQ",
			TargetID:   rfq.ID,
			Before:     before,
			After:      domain.Snapshot(rfq),
		}
		if err := uc.rfqRepo.UpdateRFQ(rfq, expected, entry); err != nil {
			slog.Error("failed to expire rfq", "rfq_id", rfq.ID, "error", err.Error())
		}
	}
	return nil
}
