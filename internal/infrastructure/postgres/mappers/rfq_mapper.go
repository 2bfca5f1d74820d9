package mappers

import (
	"encoding/json"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
)

func ToDomainRFQ(model *models.RFQModel) *domain.RFQ {
	var quote *domain.QuoteBreakdown
	if model.Quote != "" {
		var q domain.QuoteBreakdown
		if err := json.Unmarshal([]byte(model.Quote), &q); err == nil {
			quote = &q
		}
	}
	return &domain.RFQ{
		ID:          model.ID,
		BuyerID:     model.BuyerID,
		SupplierID:  model.SupplierID,
		Category:    model.Category,
		Quantity:    model.Quantity,
		Region:      model.Region,
		CountryCode: model.CountryCode,
		ServicePlan: domain.ServicePlan(model.ServicePlan),
		Status:      domain.RFQStatus(model.Status),
		Quote:       quote,
		Currency:    model.Currency,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		ExpiresAt:   model.ExpiresAt,
	}
}

func ToGORMRFQ(rfq *domain.RFQ) *models.RFQModel {
	var quote string
	if rfq.Quote != nil {
		if b, err := json.Marshal(rfq.Quote); err == nil {
			quote = string(b)
		}
	}
	return &models.RFQModel{
		ID:          rfq.ID,
		BuyerID:     rfq.BuyerID,
		SupplierID:  rfq.SupplierID,
		Category:    rfq.Category,
		Quantity:    rfq.Quantity,
		Region:      rfq.Region,
		CountryCode: rfq.CountryCode,
		ServicePlan: string(rfq.ServicePlan),
		Status:      string(rfq.Status),
		Quote:       quote,
		Currency:    rfq.Currency,
		CreatedAt:   rfq.CreatedAt,
		UpdatedAt:   rfq.UpdatedAt,
		ExpiresAt:   rfq.ExpiresAt,
	}
}
