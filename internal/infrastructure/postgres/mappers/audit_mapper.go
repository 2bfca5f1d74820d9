package mappers

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
)

func ToDomainAuditEntry(model *models.AuditEntryModel) *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:         model.ID,
		ActorID:    model.ActorID,
		Action:     model.Action,
		TargetType: model.TargetType,
		TargetID:   model.TargetID,
		Reason:     model.Reason,
		Before:     []byte(model.Before),
		After:      []byte(model.After),
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMAuditEntry(entry *domain.AuditEntry) *models.AuditEntryModel {
	return &models.AuditEntryModel{
		ID:         entry.ID,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		Reason:     entry.Reason,
		Before:     string(entry.Before),
		After:      string(entry.After),
		CreatedAt:  entry.CreatedAt,
	}
}
