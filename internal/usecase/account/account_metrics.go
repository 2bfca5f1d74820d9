package account

func (uc *DefaultAccountUsecase) recordControlAction(action string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.AccountControlActionsTotal.WithLabelValues(action).Inc()
}
