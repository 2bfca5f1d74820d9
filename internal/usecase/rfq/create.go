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

func (uc *DefaultRFQUsecase) CreateRFQ(input *rfqdto.CreateRFQInput) (*domain.RFQ, error) {
	buyer, err := uc.accountRepo.GetAccountByID(input.ActorID)
	if err != nil {
		return nil, err
	}
	country, err := uc.countryRepo.GetCountryByCode(input.CountryCode)
	if err != nil {
		return nil, err
	}

	decision := capability.Authorize(buyer, capability.ActionRFQCreate, capability.Context{
		Country:   country,
		TradeMode: capability.ModeRFQ,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	now := time.Now()
	rfq := &domain.RFQ{
		ID:          uuid.NewString(),
		BuyerID:     buyer.ID,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Region:      input.Region,
		CountryCode: input.CountryCode,
		ServicePlan: domain.ServicePlan(input.ServicePlan),
		Status:      domain.RFQPending,
		Currency:    input.Currency,
		CreatedAt:   now,
		ExpiresAt:   now.Add(uc.settings.RFQTtl),
	}
	if rfq.ServicePlan == "" {
		rfq.ServicePlan = domain.PlanBasic
	}

	if err := uc.rfqRepo.CreateRFQ(rfq); err != nil {
		return nil, err
	}

	uc.recordRFQCreated(rfq)

	go func(event publisher.RFQEvent) {
		if err := publisher.PublishRFQEvent(uc.publisher, event); err != nil {
			slog.Error("failed to publish rfq event", "stage", "creating", "error", err.Error())
		}
	}(publisher.RFQEvent{
		RFQID:   rfq.ID,
		BuyerID: rfq.BuyerID,
		Status:  string(rfq.Status),
	})

	return rfq, nil
}
