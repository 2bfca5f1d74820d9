package dispute

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/metrics"
	disputedto "github.com/kolatrade/trade-core-service/internal/usecase/dto/dispute"
)

type DisputeUsecase interface {
	OpenDispute(input *disputedto.OpenDisputeInput) (*domain.Dispute, error)
	InvestigateDispute(input *disputedto.InvestigateDisputeInput) (*domain.Dispute, error)
	ResolveDispute(input *disputedto.ResolveDisputeInput) (*domain.Dispute, error)
	CloseDispute(input *disputedto.CloseDisputeInput) (*domain.Dispute, error)
	GetDisputeByID(disputeID string) (*domain.Dispute, error)
	GetDisputes(page, limit int64, status string) ([]*domain.Dispute, int64, error)
}

type DefaultDisputeUsecase struct {
	disputeRepo domain.DisputeRepository
	orderRepo   domain.OrderRepository
	escrowRepo  domain.EscrowRepository
	accountRepo domain.AccountRepository
	publisher   domain.PublisherPort
	metrics     *metrics.TradeMetrics
}

func NewDefaultDisputeUsecase(
	disputeRepo domain.DisputeRepository,
	orderRepo domain.OrderRepository,
	escrowRepo domain.EscrowRepository,
	accountRepo domain.AccountRepository,
	publisher domain.PublisherPort,
	tradeMetrics *metrics.TradeMetrics,
) *DefaultDisputeUsecase {
	return &DefaultDisputeUsecase{
		disputeRepo: disputeRepo,
		orderRepo:   orderRepo,
		escrowRepo:  escrowRepo,
		accountRepo: accountRepo,
		publisher:   publisher,
		metrics:     tradeMetrics,
	}
}

func (uc *DefaultDisputeUsecase) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	return uc.disputeRepo.GetDisputeByID(disputeID)
}

func (uc *DefaultDisputeUsecase) GetDisputes(page, limit int64, status string) ([]*domain.Dispute, int64, error) {
	return uc.disputeRepo.GetDisputes(page, limit, status)
}
