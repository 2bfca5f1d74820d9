package repository

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/mappers"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAuditSink struct {
	db *gorm.DB
}

func NewDefaultAuditSink(db *gorm.DB) *DefaultAuditSink {
	return &DefaultAuditSink{db: db}
}

func (r *DefaultAuditSink) Append(entry *domain.AuditEntry) error {
	return translateError(r.db.Transaction(func(tx *gorm.DB) error {
		return appendAuditTx(tx, entry)
	}))
}

func (r *DefaultAuditSink) GetEntries(targetType, targetID string, page, limit int64) ([]*domain.AuditEntry, int64, error) {
	query := r.db.Model(&models.AuditEntryModel{})
	if targetType != "" {
		query = query.Where("target_type = ?", targetType)
	}
	if targetID != "" {
		query = query.Where("target_id = ?", targetID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	var entryModels []models.AuditEntryModel
	if err := query.Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&entryModels).Error; err != nil {
		return nil, 0, translateError(err)
	}

	entries := make([]*domain.AuditEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = mappers.ToDomainAuditEntry(&entryModels[i])
	}
	return entries, total, nil
}
