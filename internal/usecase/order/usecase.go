package order

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/metrics"
	orderdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	AdvanceOrder(input *orderdto.AdvanceOrderInput) (*domain.Order, error)
	ConfirmDelivery(input *orderdto.ConfirmDeliveryInput) error
	GetOrderByID(orderID string) (*domain.Order, error)
	GetOrdersByBuyerID(buyerID string, page, limit int64) ([]*domain.Order, int64, error)
}

type DefaultOrderUsecase struct {
	orderRepo     domain.OrderRepository
	escrowRepo    domain.EscrowRepository
	accountRepo   domain.AccountRepository
	documentStore domain.DocumentStore
	shipmentStore domain.ShipmentStore
	publisher     domain.PublisherPort
	metrics       *metrics.TradeMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	escrowRepo domain.EscrowRepository,
	accountRepo domain.AccountRepository,
	documentStore domain.DocumentStore,
	shipmentStore domain.ShipmentStore,
	publisher domain.PublisherPort,
	tradeMetrics *metrics.TradeMetrics,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		orderRepo:     orderRepo,
		escrowRepo:    escrowRepo,
		accountRepo:   accountRepo,
		documentStore: documentStore,
		shipmentStore: shipmentStore,
		publisher:     publisher,
		metrics:       tradeMetrics,
	}
}

func (uc *DefaultOrderUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	return uc.orderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) GetOrdersByBuyerID(buyerID string, page, limit int64) ([]*domain.Order, int64, error) {
	return uc.orderRepo.GetOrdersByBuyerID(buyerID, page, limit)
}
