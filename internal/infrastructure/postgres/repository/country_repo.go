package repository

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTradeCountryRepository struct {
	db *gorm.DB
}

func NewDefaultTradeCountryRepository(db *gorm.DB) *DefaultTradeCountryRepository {
	return &DefaultTradeCountryRepository{db: db}
}

func (r *DefaultTradeCountryRepository) GetCountryByCode(code string) (*domain.TradeCountry, error) {
	var model models.TradeCountryModel
	if err := r.db.Where("code = ?", code).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return &domain.TradeCountry{
		ID:                 model.ID,
		Code:               model.Code,
		Name:               model.Name,
		Status:             domain.CountryStatus(model.Status),
		AllowBuyNow:        model.AllowBuyNow,
		AllowRfq:           model.AllowRfq,
		RequireDocsReview:  model.RequireDocsReview,
		RequireBlueTick:    model.RequireBlueTick,
		HighValueThreshold: model.HighValueThreshold,
	}, nil
}
