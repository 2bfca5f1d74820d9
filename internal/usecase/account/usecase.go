package account

import (
	"context"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/metrics"
	accountdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/account"
)

type AccountUsecase interface {
	UpdateControls(input *accountdto.UpdateControlsInput) (*domain.Account, error)
	ExpireLimits(ctx context.Context) error
	GetAccountByID(accountID string) (*domain.Account, error)
}

type DefaultAccountUsecase struct {
	accountRepo domain.AccountRepository
	metrics     *metrics.TradeMetrics
}

func NewDefaultAccountUsecase(accountRepo domain.AccountRepository, tradeMetrics *metrics.TradeMetrics) *DefaultAccountUsecase {
	return &DefaultAccountUsecase{accountRepo: accountRepo, metrics: tradeMetrics}
}

func (uc *DefaultAccountUsecase) GetAccountByID(accountID string) (*domain.Account, error) {
	return uc.accountRepo.GetAccountByID(accountID)
}
