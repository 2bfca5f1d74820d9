package repository

import (
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/mappers"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAccountRepository struct {
	db *gorm.DB
}

func NewDefaultAccountRepository(db *gorm.DB) *DefaultAccountRepository {
	return &DefaultAccountRepository{db: db}
}

func (r *DefaultAccountRepository) GetAccountByID(accountID string) (*domain.Account, error) {
	var model models.AccountModel
	if err := r.db.Where("id = ?", accountID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainAccount(&model), nil
}

func (r *DefaultAccountRepository) UpdateControls(account *domain.Account, entry *domain.AuditEntry) error {
	model := mappers.ToGORMAccount(account)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.AccountModel{}).Where("id = ?", account.ID).
			Updates(map[string]any{
				"is_frozen":          model.IsFrozen,
				"freeze_reason":      model.FreezeReason,
				"can_create_orders":  model.CanCreateOrders,
				"can_respond_to_rfq": model.CanRespondToRfq,
				"can_withdraw":       model.CanWithdraw,
				"can_list_products":  model.CanListProducts,
				"limit_notes":        model.LimitNotes,
				"limit_expires_at":   model.LimitExpiresAt,
				"updated_at":         time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return appendAuditTx(tx, entry)
	})
	return translateError(err)
}

func (r *DefaultAccountRepository) FindExpiredLimits(now time.Time) ([]*domain.Account, error) {
	var accountModels []models.AccountModel
	if err := r.db.Model(&models.AccountModel{}).
		Where("limit_expires_at IS NOT NULL").
		Where("limit_expires_at < ?", now).
		Find(&accountModels).Error; err != nil {
		return nil, translateError(err)
	}
	accounts := make([]*domain.Account, len(accountModels))
	for i := range accountModels {
		accounts[i] = mappers.ToDomainAccount(&accountModels[i])
	}
	return accounts, nil
}
