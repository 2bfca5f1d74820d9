package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/mappers"
	"gorm.io/gorm"
)

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	return err
}

// appendAuditTx writes the audit entry inside the caller's transaction so a
// rolled-back action never leaves a trail.
func appendAuditTx(tx *gorm.DB, entry *domain.AuditEntry) error {
	if entry == nil {
		return nil
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	model := mappers.ToGORMAuditEntry(entry)
	return tx.Create(model).Error
}
