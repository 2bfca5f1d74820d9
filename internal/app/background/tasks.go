package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/kolatrade/trade-core-service/internal/usecase/account"
	"github.com/kolatrade/trade-core-service/internal/usecase/rfq"
)

type BackgroundTasks struct {
	RFQUsecase     rfq.RFQUsecase
	AccountUsecase account.AccountUsecase
}

func NewBackgroundTasks(rfqUC rfq.RFQUsecase, accountUC account.AccountUsecase) *BackgroundTasks {
	return &BackgroundTasks{
		RFQUsecase:     rfqUC,
		AccountUsecase: accountUC,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startRFQExpiry(ctx)
	go bt.startLimitExpiry(ctx)
}

func (bt *BackgroundTasks) startRFQExpiry(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.RFQUsecase.ExpireRFQs(ctx); err != nil {
				slog.Error("rfq expiry sweep failed", "error", err.Error())
			}
		}
	}
}

func (bt *BackgroundTasks) startLimitExpiry(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.AccountUsecase.ExpireLimits(ctx); err != nil {
				slog.Error("limit expiry sweep failed", "error", err.Error())
			}
		}
	}
}
