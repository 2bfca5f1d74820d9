package rfq

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kolatrade/trade-core-service/internal/domain"
	publisher "github.com/kolatrade/trade-core-service/internal/infrastructure/kafka"
	"github.com/kolatrade/trade-core-service/internal/usecase/capability"
	rfqdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/rfq"
)

// ConfirmRFQ turns a quoted RFQ into an order with a pending escrow record,
// atomically. Any gate denial, including a frozen supplier, fails the whole
// confirmation before anything is written.
func (uc *DefaultRFQUsecase) ConfirmRFQ(input *rfqdto.ConfirmRFQInput) (*domain.Order, error) {
	rfq, err := uc.rfqRepo.GetRFQByID(input.RFQID)
	if err != nil {
		return nil, err
	}
	if rfq.Status != domain.RFQQuoted || rfq.Quote == nil {
		return nil, fmt.Errorf("%w: rfq %s is not quoted", domain.ErrInvalidTransition, rfq.ID)
	}

	buyer, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return nil, err
	}
	if buyer.ID != rfq.BuyerID {
		return nil, domain.Deny("only the requesting buyer may confirm")
	}

	country, err := uc.countryRepo.GetCountryByCode(rfq.CountryCode)
	if err != nil {
		return nil, err
	}

	decision := capability.Authorize(buyer, capability.ActionOrderCreate, capability.Context{
		Country:   country,
		TradeMode: capability.ModeRFQ,
		Amount:    rfq.Quote.Total,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	supplier, err := uc.accountRepo.GetAccountByID(rfq.SupplierID)
	if err != nil {
		return nil, err
	}
	decision = capability.Authorize(supplier, capability.ActionRFQRespond, capability.Context{})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	total := rfq.Quote.Total
	order := &domain.Order{
		ID:            uuid.NewString(),
		BuyerID:       buyer.ID,
		SupplierID:    supplier.ID,
		RFQID:         rfq.ID,
		Type:          domain.TypeRFQ,
		Status:        domain.StatusPendingReview,
		CountryCode:   rfq.CountryCode,
		International: country.RequireDocsReview,
		TotalAmount:   total,
		Currency:      rfq.Currency,
		CreatedAt:     now,
	}
	escrow := &domain.EscrowRecord{
		ID:                uuid.NewString(),
		OrderID:           order.ID,
		TotalAmount:       total,
		PlatformFeeAmount: uc.settings.PlatformFee(total),
		Status:            domain.EscrowPending,
		Version:           1,
		CreatedAt:         now,
	}

	before := domain.Snapshot(rfq)
	rfq.Status = domain.RFQConfirmed

	entry := &domain.AuditEntry{
		ActorID:    buyer.ID,
		Action:     "RFQ_CONFIRM",
		TargetType: "RFQ",
		TargetID:   rfq.ID,
		Before:     before,
		After:      domain.Snapshot(rfq),
	}
	if err := uc.rfqRepo.ConfirmRFQ(rfq, order, escrow, entry); err != nil {
		return nil, err
	}

	uc.recordRFQConfirmed(rfq, order)

	go func(event publisher.OrderEvent) {
		if err := publisher.PublishOrderEvent(uc.publisher, event); err != nil {
			slog.Error("failed to publish order event", "stage", "rfq confirmation", "error", err.Error())
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
