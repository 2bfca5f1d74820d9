package mappers

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID:              model.ID,
		OrderID:         model.OrderID,
		BuyerID:         model.BuyerID,
		SupplierID:      model.SupplierID,
		Type:            model.Type,
		Status:          domain.DisputeStatus(model.Status),
		Description:     model.Description,
		EvidenceJSON:    []byte(model.Evidence),
		ResolutionType:  domain.ResolutionType(model.ResolutionType),
		ResolutionNotes: model.ResolutionNotes,
		InternalNotes:   model.InternalNotes,
		RefundAmount:    model.RefundAmount,
		SupplierPenalty: model.SupplierPenalty,
		BuyerCredit:     model.BuyerCredit,
		ResolvedAt:      model.ResolvedAt,
		ResolvedBy:      model.ResolvedBy,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID:              dispute.ID,
		OrderID:         dispute.OrderID,
		BuyerID:         dispute.BuyerID,
		SupplierID:      dispute.SupplierID,
		Type:            dispute.Type,
		Status:          string(dispute.Status),
		Description:     dispute.Description,
		Evidence:        string(dispute.EvidenceJSON),
		ResolutionType:  string(dispute.ResolutionType),
		ResolutionNotes: dispute.ResolutionNotes,
		InternalNotes:   dispute.InternalNotes,
		RefundAmount:    dispute.RefundAmount,
		SupplierPenalty: dispute.SupplierPenalty,
		BuyerCredit:     dispute.BuyerCredit,
		ResolvedAt:      dispute.ResolvedAt,
		ResolvedBy:      dispute.ResolvedBy,
		CreatedAt:       dispute.CreatedAt,
		UpdatedAt:       dispute.UpdatedAt,
	}
}
