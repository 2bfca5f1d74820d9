package postgres

import (
	"log"

	"github.com/kolatrade/trade-core-service/internal/config"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.TradeConfig) *gorm.DB {
	dsn := cfg.TradeDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.AccountModel{},
		&models.TradeCountryModel{},
		&models.RFQModel{},
		&models.OrderModel{},
		&models.TradeDocumentModel{},
		&models.ShipmentModel{},
		&models.EscrowModel{},
		&models.EscrowOperationModel{},
		&models.DisputeModel{},
		&models.AuditEntryModel{},
	)

	return db
}
