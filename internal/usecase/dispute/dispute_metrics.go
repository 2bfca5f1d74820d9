package dispute

import "github.com/kolatrade/trade-core-service/internal/domain"

func (uc *DefaultDisputeUsecase) recordDisputeOpened() {
	if uc.metrics == nil {
		return
	}
	uc.metrics.DisputesOpenedTotal.Inc()
}

func (uc *DefaultDisputeUsecase) recordDisputeResolved(dispute *domain.Dispute) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.DisputesResolvedTotal.WithLabelValues(string(dispute.Status)).Inc()
}
