package repository

import (
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/mappers"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultEscrowRepository struct {
	db *gorm.DB
}

func NewDefaultEscrowRepository(db *gorm.DB) *DefaultEscrowRepository {
	return &DefaultEscrowRepository{db: db}
}

func (r *DefaultEscrowRepository) GetEscrowByOrderID(orderID string) (*domain.EscrowRecord, error) {
	var model models.EscrowModel
	if err := r.db.Where("order_id = ?", orderID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainEscrow(&model), nil
}

// ProcessEscrowOperation commits one logical escrow mutation. The operation
// row's unique token rejects replays; the row-locked version check rejects
// lost updates. Either way the transaction rolls back with ErrConflict and
// no amounts move twice.
func (r *DefaultEscrowRepository) ProcessEscrowOperation(
	op *domain.EscrowOperation,
	escrow *domain.EscrowRecord,
	order *domain.Order,
	dispute *domain.Dispute,
	entry *domain.AuditEntry,
) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		opModel := mappers.ToGORMEscrowOperation(op)
		if err := tx.Create(opModel).Error; err != nil {
			return err
		}

		var current models.EscrowModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", op.OrderID).First(&current).Error; err != nil {
			return err
		}
		if current.Version != op.ExpectedVersion {
			return domain.ErrConflict
		}

		escrowModel := mappers.ToGORMEscrow(escrow)
		escrowModel.CreatedAt = current.CreatedAt
		escrowModel.UpdatedAt = time.Now()
		if err := tx.Save(escrowModel).Error; err != nil {
			return err
		}

		if order != nil {
			orderModel := mappers.ToGORMOrder(order)
			orderModel.UpdatedAt = time.Now()
			if err := tx.Save(orderModel).Error; err != nil {
				return err
			}
		}
		if dispute != nil {
			disputeModel := mappers.ToGORMDispute(dispute)
			disputeModel.UpdatedAt = time.Now()
			if err := tx.Save(disputeModel).Error; err != nil {
				return err
			}
		}

		return appendAuditTx(tx, entry)
	})
	return translateError(err)
}
