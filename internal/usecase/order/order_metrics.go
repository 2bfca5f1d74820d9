package order

import "github.com/kolatrade/trade-core-service/internal/domain"

func (uc *DefaultOrderUsecase) recordOrderAdvanced(order *domain.Order) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.OrderTransitionsTotal.WithLabelValues(string(order.Status)).Inc()
	if order.Status == domain.StatusCompleted {
		uc.metrics.OrdersCompletedTotal.Inc()
	}
}

func (uc *DefaultOrderUsecase) recordDeliveryConfirmed() {
	if uc.metrics == nil {
		return
	}
	uc.metrics.DeliveriesConfirmedTotal.Inc()
}
