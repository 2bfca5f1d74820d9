package escrow

import "github.com/kolatrade/trade-core-service/internal/domain"

func (uc *DefaultEscrowUsecase) recordEscrowLocked(escrow *domain.EscrowRecord) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.EscrowLockedAmountTotal.Add(float64(escrow.TotalAmount))
	uc.metrics.PlatformFeeTotal.Add(float64(escrow.PlatformFeeAmount))
}

func (uc *DefaultEscrowUsecase) recordEscrowReleased(escrow *domain.EscrowRecord, amount int64) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.EscrowReleasedAmountTotal.Add(float64(amount))
	if escrow.Status == domain.EscrowReleased {
		uc.metrics.EscrowTerminalTotal.WithLabelValues(string(escrow.Status)).Inc()
	}
}

func (uc *DefaultEscrowUsecase) recordEscrowRefunded(escrow *domain.EscrowRecord, amount int64) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.EscrowRefundedAmountTotal.Add(float64(amount))
	if escrow.Status == domain.EscrowRefunded {
		uc.metrics.EscrowTerminalTotal.WithLabelValues(string(escrow.Status)).Inc()
	}
}
