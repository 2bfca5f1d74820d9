package repository

import (
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/mappers"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultDisputeRepository struct {
	db *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{db: db}
}

// CreateDispute inserts the dispute, links it to the order and puts the
// escrow record on hold in one transaction. The order-side guard rejects a
// second open dispute racing in.
func (r *DefaultDisputeRepository) CreateDispute(dispute *domain.Dispute, order *domain.Order, escrow *domain.EscrowRecord, entry *domain.AuditEntry) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		disputeModel := mappers.ToGORMDispute(dispute)
		if err := tx.Create(disputeModel).Error; err != nil {
			return err
		}

		res := tx.Model(&models.OrderModel{}).
			Where("id = ?", order.ID).
			Where("dispute_id = ?", "").
			Updates(map[string]any{
				"dispute_id": dispute.ID,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrConflict
		}

		var current models.EscrowModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", order.ID).First(&current).Error; err != nil {
			return err
		}
		if current.Version != escrow.Version-1 {
			return domain.ErrConflict
		}
		escrowModel := mappers.ToGORMEscrow(escrow)
		escrowModel.CreatedAt = current.CreatedAt
		escrowModel.UpdatedAt = time.Now()
		if err := tx.Save(escrowModel).Error; err != nil {
			return err
		}

		return appendAuditTx(tx, entry)
	})
	return translateError(err)
}

func (r *DefaultDisputeRepository) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	var model models.DisputeModel
	if err := r.db.Where("id = ?", disputeID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainDispute(&model), nil
}

func (r *DefaultDisputeRepository) GetOpenDisputeByOrderID(orderID string) (*domain.Dispute, error) {
	var model models.DisputeModel
	if err := r.db.Where("order_id = ?", orderID).
		Where("status IN ?", []string{string(domain.DisputeOpen), string(domain.DisputeInvestigating)}).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainDispute(&model), nil
}

func (r *DefaultDisputeRepository) UpdateDisputeStatus(dispute *domain.Dispute, expectedStatus domain.DisputeStatus, entry *domain.AuditEntry) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var current models.DisputeModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", dispute.ID).First(&current).Error; err != nil {
			return err
		}
		if current.Status != string(expectedStatus) {
			return domain.ErrConflict
		}
		model := mappers.ToGORMDispute(dispute)
		model.CreatedAt = current.CreatedAt
		model.UpdatedAt = time.Now()
		if err := tx.Save(model).Error; err != nil {
			return err
		}
		return appendAuditTx(tx, entry)
	})
	return translateError(err)
}

func (r *DefaultDisputeRepository) GetDisputes(page, limit int64, status string) ([]*domain.Dispute, int64, error) {
	query := r.db.Model(&models.DisputeModel{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

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
	var disputeModels []models.DisputeModel
	if err := query.Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&disputeModels).Error; err != nil {
		return nil, 0, translateError(err)
	}

	disputes := make([]*domain.Dispute, len(disputeModels))
	for i := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModels[i])
	}
	return disputes, total, nil
}
