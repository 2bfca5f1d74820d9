package repository

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/mappers"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDocumentStore struct {
	db *gorm.DB
}

func NewDefaultDocumentStore(db *gorm.DB) *DefaultDocumentStore {
	return &DefaultDocumentStore{db: db}
}

func (r *DefaultDocumentStore) GetOrderDocuments(orderID string) ([]*domain.TradeDocument, error) {
	var docModels []models.TradeDocumentModel
	if err := r.db.Where("order_id = ?", orderID).Find(&docModels).Error; err != nil {
		return nil, translateError(err)
	}
	docs := make([]*domain.TradeDocument, len(docModels))
	for i := range docModels {
		docs[i] = mappers.ToDomainDocument(&docModels[i])
	}
	return docs, nil
}

type DefaultShipmentStore struct {
	db *gorm.DB
}

func NewDefaultShipmentStore(db *gorm.DB) *DefaultShipmentStore {
	return &DefaultShipmentStore{db: db}
}

// GetOrderShipment returns nil without error when no shipment is arranged
// yet; callers treat a missing shipment as a gate, not a failure.
func (r *DefaultShipmentStore) GetOrderShipment(orderID string) (*domain.Shipment, error) {
	var model models.ShipmentModel
	err := r.db.Where("order_id = ?", orderID).First(&model).Error
	if err != nil {
		if translateError(err) == domain.ErrNotFound {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return mappers.ToDomainShipment(&model), nil
}
