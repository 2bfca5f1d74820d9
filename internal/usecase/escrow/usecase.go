package escrow

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/metrics"
	escrowdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/escrow"
)

type EscrowUsecase interface {
	LockEscrow(input *escrowdto.LockEscrowInput) (*domain.EscrowRecord, error)
	ReleaseEscrow(input *escrowdto.ReleaseEscrowInput) (*domain.EscrowRecord, error)
	RefundEscrow(input *escrowdto.RefundEscrowInput) (*domain.EscrowRecord, error)
	GetEscrowByOrderID(orderID string) (*domain.EscrowRecord, error)
}

type DefaultEscrowUsecase struct {
	escrowRepo  domain.EscrowRepository
	orderRepo   domain.OrderRepository
	accountRepo domain.AccountRepository
	publisher   domain.PublisherPort
	metrics     *metrics.TradeMetrics
	settings    domain.PlatformSettings
}

func NewDefaultEscrowUsecase(
	escrowRepo domain.EscrowRepository,
	orderRepo domain.OrderRepository,
	accountRepo domain.AccountRepository,
	publisher domain.PublisherPort,
	tradeMetrics *metrics.TradeMetrics,
	settings domain.PlatformSettings,
) *DefaultEscrowUsecase {
	return &DefaultEscrowUsecase{
		escrowRepo:  escrowRepo,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		publisher:   publisher,
		metrics:     tradeMetrics,
		settings:    settings,
	}
}

func (uc *DefaultEscrowUsecase) GetEscrowByOrderID(orderID string) (*domain.EscrowRecord, error) {
	return uc.escrowRepo.GetEscrowByOrderID(orderID)
}
