package setup

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/usecase/account"
	"github.com/kolatrade/trade-core-service/internal/usecase/dispute"
	"github.com/kolatrade/trade-core-service/internal/usecase/escrow"
	"github.com/kolatrade/trade-core-service/internal/usecase/order"
	"github.com/kolatrade/trade-core-service/internal/usecase/rfq"
)

type Usecases struct {
	RFQ     rfq.RFQUsecase
	Order   order.OrderUsecase
	Escrow  escrow.EscrowUsecase
	Dispute dispute.DisputeUsecase
	Account account.AccountUsecase
}

func InitializeUsecases(deps *Dependencies) *Usecases {
	settings := domain.PlatformSettings{
		FulfillmentFeeBps: deps.Config.Platform.FulfillmentFeeBps,
		EscrowHoldDays:    deps.Config.Platform.EscrowHoldDays,
		RFQTtl:            deps.Config.Platform.RFQTtl,
	}

	repos := deps.Repositories
	return &Usecases{
		RFQ: rfq.NewDefaultRFQUsecase(
			repos.RFQRepo,
			repos.AccountRepo,
			repos.CountryRepo,
			deps.Publisher,
			deps.Metrics,
			settings,
		),
		Order: order.NewDefaultOrderUsecase(
			repos.OrderRepo,
			repos.EscrowRepo,
			repos.AccountRepo,
			repos.DocumentStore,
			repos.ShipmentStore,
			deps.Publisher,
			deps.Metrics,
		),
		Escrow: escrow.NewDefaultEscrowUsecase(
			repos.EscrowRepo,
			repos.OrderRepo,
			repos.AccountRepo,
			deps.Publisher,
			deps.Metrics,
			settings,
		),
		Dispute: dispute.NewDefaultDisputeUsecase(
			repos.DisputeRepo,
			repos.OrderRepo,
			repos.EscrowRepo,
			repos.AccountRepo,
			deps.Publisher,
			deps.Metrics,
		),
		Account: account.NewDefaultAccountUsecase(
			repos.AccountRepo,
			deps.Metrics,
		),
	}
}
