package setup

import (
	"github.com/kolatrade/trade-core-service/internal/config"
	"github.com/kolatrade/trade-core-service/internal/domain"
	publisher "github.com/kolatrade/trade-core-service/internal/infrastructure/kafka"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/metrics"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.TradeConfig
	DB           *gorm.DB
	Publisher    *publisher.KafkaPublisher
	Metrics      *metrics.TradeMetrics
	Repositories *Repositories
}

type Repositories struct {
	AccountRepo   domain.AccountRepository
	CountryRepo   domain.TradeCountryRepository
	RFQRepo       domain.RFQRepository
	OrderRepo     domain.OrderRepository
	EscrowRepo    domain.EscrowRepository
	DisputeRepo   domain.DisputeRepository
	DocumentStore domain.DocumentStore
	ShipmentStore domain.ShipmentStore
	AuditSink     domain.AuditSink
}

func InitializeDependencies(cfg *config.TradeConfig) *Dependencies {
	db := postgres.MustInitDB(cfg)

	repos := &Repositories{
		AccountRepo:   repository.NewDefaultAccountRepository(db),
		CountryRepo:   repository.NewDefaultTradeCountryRepository(db),
		RFQRepo:       repository.NewDefaultRFQRepository(db),
		OrderRepo:     repository.NewDefaultOrderRepository(db),
		EscrowRepo:    repository.NewDefaultEscrowRepository(db),
		DisputeRepo:   repository.NewDefaultDisputeRepository(db),
		DocumentStore: repository.NewDefaultDocumentStore(db),
		ShipmentStore: repository.NewDefaultShipmentStore(db),
		AuditSink:     repository.NewDefaultAuditSink(db),
	}

	return &Dependencies{
		Config:       cfg,
		DB:           db,
		Publisher:    publisher.NewKafkaPublisher(cfg.Kafka.Brokers),
		Metrics:      metrics.NewTradeMetrics(),
		Repositories: repos,
	}
}
