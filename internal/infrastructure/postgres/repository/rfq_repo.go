package repository

import (
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/mappers"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultRFQRepository struct {
	db *gorm.DB
}

func NewDefaultRFQRepository(db *gorm.DB) *DefaultRFQRepository {
	return &DefaultRFQRepository{db: db}
}

func (r *DefaultRFQRepository) CreateRFQ(rfq *domain.RFQ) error {
	model := mappers.ToGORMRFQ(rfq)
	return translateError(r.db.Create(model).Error)
}

func (r *DefaultRFQRepository) GetRFQByID(rfqID string) (*domain.RFQ, error) {
	var model models.RFQModel
	if err := r.db.Where("id = ?", rfqID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainRFQ(&model), nil
}

// UpdateRFQ saves the RFQ guarded by the status it was read at. The guard
// serializes concurrent transitions on the same RFQ: the loser's update
// matches zero rows and surfaces ErrConflict.
func (r *DefaultRFQRepository) UpdateRFQ(rfq *domain.RFQ, expectedStatus domain.RFQStatus, entry *domain.AuditEntry) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := saveRFQGuarded(tx, rfq, expectedStatus); err != nil {
			return err
		}
		return appendAuditTx(tx, entry)
	})
	return translateError(err)
}

// ConfirmRFQ flips the RFQ to CONFIRMED and creates the order plus its
// escrow record atomically.
func (r *DefaultRFQRepository) ConfirmRFQ(rfq *domain.RFQ, order *domain.Order, escrow *domain.EscrowRecord, entry *domain.AuditEntry) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := saveRFQGuarded(tx, rfq, domain.RFQQuoted); err != nil {
			return err
		}
		now := time.Now()
		orderModel := mappers.ToGORMOrder(order)
		orderModel.CreatedAt = now
		orderModel.UpdatedAt = now
		if err := tx.Create(orderModel).Error; err != nil {
			return err
		}
		escrowModel := mappers.ToGORMEscrow(escrow)
		escrowModel.CreatedAt = now
		escrowModel.UpdatedAt = now
		if err := tx.Create(escrowModel).Error; err != nil {
			return err
		}
		return appendAuditTx(tx, entry)
	})
	return translateError(err)
}

// FindExpiredRFQs returns RFQs past their TTL that are still waiting on the
// platform side. QUOTED is excluded: a quoted RFQ sits with the buyer and
// only the buyer decides its fate.
func (r *DefaultRFQRepository) FindExpiredRFQs(now time.Time) ([]*domain.RFQ, error) {
	var rfqModels []models.RFQModel
	if err := r.db.Model(&models.RFQModel{}).
		Where("status IN ?", []string{string(domain.RFQPending), string(domain.RFQAssigned)}).
		Where("expires_at < ?", now).
		Find(&rfqModels).Error; err != nil {
		return nil, translateError(err)
	}
	rfqs := make([]*domain.RFQ, len(rfqModels))
	for i := range rfqModels {
		rfqs[i] = mappers.ToDomainRFQ(&rfqModels[i])
	}
	return rfqs, nil
}

func saveRFQGuarded(tx *gorm.DB, rfq *domain.RFQ, expectedStatus domain.RFQStatus) error {
	var current models.RFQModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", rfq.ID).First(&current).Error; err != nil {
		return err
	}
	if current.Status != string(expectedStatus) {
		return domain.ErrConflict
	}
	model := mappers.ToGORMRFQ(rfq)
	model.CreatedAt = current.CreatedAt
	model.UpdatedAt = time.Now()
	return tx.Save(model).Error
}
