package rfq

import (
	"context"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/metrics"
	rfqdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/rfq"
)

type RFQUsecase interface {
	CreateRFQ(input *rfqdto.CreateRFQInput) (*domain.RFQ, error)
	AssignSupplier(input *rfqdto.AssignSupplierInput) error
	GenerateQuote(input *rfqdto.GenerateQuoteInput) (*domain.RFQ, error)
	ConfirmRFQ(input *rfqdto.ConfirmRFQInput) (*domain.Order, error)
	CancelRFQ(input *rfqdto.CancelRFQInput) error
	ExpireRFQs(ctx context.Context) error
	GetRFQByID(rfqID string) (*domain.RFQ, error)
}

type DefaultRFQUsecase struct {
	rfqRepo     domain.RFQRepository
	accountRepo domain.AccountRepository
	countryRepo domain.TradeCountryRepository
	publisher   domain.PublisherPort
	metrics     *metrics.TradeMetrics
	settings    domain.PlatformSettings
}

func NewDefaultRFQUsecase(
	rfqRepo domain.RFQRepository,
	accountRepo domain.AccountRepository,
	countryRepo domain.TradeCountryRepository,
	publisher domain.PublisherPort,
	tradeMetrics *metrics.TradeMetrics,
	settings domain.PlatformSettings,
) *DefaultRFQUsecase {
	return &DefaultRFQUsecase{
		rfqRepo:     rfqRepo,
		accountRepo: accountRepo,
		countryRepo: countryRepo,
		publisher:   publisher,
		metrics:     tradeMetrics,
		settings:    settings,
	}
}

func (uc *DefaultRFQUsecase) GetRFQByID(rfqID string) (*domain.RFQ, error) {
	return uc.rfqRepo.GetRFQByID(rfqID)
}
