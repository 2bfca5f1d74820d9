package rfq

import (
	"fmt"
	"log/slog"

	"github.com/kolatrade/trade-core-service/internal/domain"
	publisher "github.com/kolatrade/trade-core-service/internal/infrastructure/kafka"
	rfqdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/rfq"
	"github.com/kolatrade/trade-core-service/internal/usecase/pricing"
)

// GenerateQuote prices an assigned RFQ. Quoting again overwrites the whole
// pricing snapshot without resetting the status.
func (uc *DefaultRFQUsecase) GenerateQuote(input *rfqdto.GenerateQuoteInput) (*domain.RFQ, error) {
	actor, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleOps && actor.Role != domain.RoleAdmin {
		return nil, domain.Deny("ops role required")
	}

	rfq, err := uc.rfqRepo.GetRFQByID(input.RFQID)
	if err != nil {
		return nil, err
	}
	if rfq.Status != domain.RFQAssigned && rfq.Status != domain.RFQQuoted {
		return nil, fmt.Errorf("%w: rfq %s is %s", domain.ErrInvalidTransition, rfq.ID, rfq.Status)
	}
	if rfq.SupplierID == "" {
		return nil, fmt.Errorf("%w: assign a supplier before generating a quote", domain.ErrInvalidTransition)
	}
	if input.UnitPrice <= 0 {
		return nil, fmt.Errorf("%w: unit price must be positive", domain.ErrValidation)
	}

	country, err := uc.countryRepo.GetCountryByCode(rfq.CountryCode)
	if err != nil {
		return nil, err
	}

	before := domain.Snapshot(rfq)
	expected := rfq.Status
	rfq.Quote = pricing.BuildQuote(pricing.QuoteInput{
		UnitPrice:        input.UnitPrice,
		Quantity:         rfq.Quantity,
		DutyCategory:     pricing.DutyCategory(input.DutyCategory),
		Region:           rfq.Region,
		International:    country.RequireDocsReview,
		ShippingEstimate: input.ShippingEstimate,
		Notes:            input.Notes,
		QuotedBy:         actor.ID,
	}, uc.settings)
	rfq.Status = domain.RFQQuoted

	entry := &domain.AuditEntry{
		ActorID:    actor.ID,
		Action:     "RFQ_QUOTE",
		TargetType: "RFQ",
		TargetID:   rfq.ID,
		Before:     before,
		After:      domain.Snapshot(rfq),
	}
	if err := uc.rfqRepo.UpdateRFQ(rfq, expected, entry); err != nil {
		return nil, err
	}

	go func(event publisher.RFQEvent) {
		if err := publisher.PublishRFQEvent(uc.publisher, event); err != nil {
			slog.Error("failed to publish rfq event", "stage", "quoting", "error", err.Error())
		}
	}(publisher.RFQEvent{
		RFQID:      rfq.ID,
		BuyerID:    rfq.BuyerID,
		SupplierID: rfq.SupplierID,
		Status:     string(rfq.Status),
		Total:      rfq.Quote.Total,
	})

	return rfq, nil
}
