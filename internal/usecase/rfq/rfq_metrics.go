package rfq

import "github.com/kolatrade/trade-core-service/internal/domain"

func (uc *DefaultRFQUsecase) recordRFQCreated(rfq *domain.RFQ) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.RFQsCreatedTotal.WithLabelValues(rfq.CountryCode, string(rfq.ServicePlan)).Inc()
}

func (uc *DefaultRFQUsecase) recordRFQConfirmed(rfq *domain.RFQ, order *domain.Order) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.RFQsConfirmedTotal.WithLabelValues(rfq.CountryCode).Inc()
	uc.metrics.OrdersCreatedTotal.WithLabelValues(string(order.Type), order.Currency).Inc()
	uc.metrics.OrdersCreatedAmountTotal.WithLabelValues(order.Currency).Add(float64(order.TotalAmount))
}
