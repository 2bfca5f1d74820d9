package repository

import (
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/mappers"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	db *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{db: db}
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var model models.OrderModel
	if err := r.db.Where("id = ?", orderID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainOrder(&model), nil
}

// UpdateOrder saves the order guarded by the status it was read at, so
// concurrent advances on the same order serialize.
func (r *DefaultOrderRepository) UpdateOrder(order *domain.Order, expectedStatus domain.OrderStatus, entry *domain.AuditEntry) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := saveOrderGuarded(tx, order, expectedStatus); err != nil {
			return err
		}
		return appendAuditTx(tx, entry)
	})
	return translateError(err)
}

func (r *DefaultOrderRepository) GetOrdersByBuyerID(buyerID string, page, limit int64) ([]*domain.Order, int64, error) {
	query := r.db.Model(&models.OrderModel{}).Where("buyer_id = ?", buyerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	var orderModels []models.OrderModel
	if err := query.Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&orderModels).Error; err != nil {
		return nil, 0, translateError(err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, total, nil
}

func saveOrderGuarded(tx *gorm.DB, order *domain.Order, expectedStatus domain.OrderStatus) error {
	var current models.OrderModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", order.ID).First(&current).Error; err != nil {
		return err
	}
	if current.Status != string(expectedStatus) {
		return domain.ErrConflict
	}
	model := mappers.ToGORMOrder(order)
	model.CreatedAt = current.CreatedAt
	model.UpdatedAt = time.Now()
	return tx.Save(model).Error
}
