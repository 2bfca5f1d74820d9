package mappers

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
)

func ToDomainEscrow(model *models.EscrowModel) *domain.EscrowRecord {
	return &domain.EscrowRecord{
		ID:                  model.ID,
		OrderID:             model.OrderID,
		TotalAmount:         model.TotalAmount,
		ReleasedAmount:      model.ReleasedAmount,
		RefundedAmount:      model.RefundedAmount,
		PenaltyAmount:       model.PenaltyAmount,
		PlatformFeeAmount:   model.PlatformFeeAmount,
		Status:              domain.EscrowStatus(model.Status),
		DisputeHold:         model.DisputeHold,
		DeliveryConfirmedAt: model.DeliveryConfirmedAt,
		Version:             model.Version,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMEscrow(escrow *domain.EscrowRecord) *models.EscrowModel {
	return &models.EscrowModel{
		ID:                  escrow.ID,
		OrderID:             escrow.OrderID,
		TotalAmount:         escrow.TotalAmount,
		ReleasedAmount:      escrow.ReleasedAmount,
		RefundedAmount:      escrow.RefundedAmount,
		PenaltyAmount:       escrow.PenaltyAmount,
		PlatformFeeAmount:   escrow.PlatformFeeAmount,
		Status:              string(escrow.Status),
		DisputeHold:         escrow.DisputeHold,
		DeliveryConfirmedAt: escrow.DeliveryConfirmedAt,
		Version:             escrow.Version,
		CreatedAt:           escrow.CreatedAt,
		UpdatedAt:           escrow.UpdatedAt,
	}
}

func ToGORMEscrowOperation(op *domain.EscrowOperation) *models.EscrowOperationModel {
	return &models.EscrowOperationModel{
		Token:           op.Token,
		OrderID:         op.OrderID,
		Action:          string(op.Action),
		ExpectedVersion: op.ExpectedVersion,
		Reason:          op.Reason,
		ActorID:         op.ActorID,
		CreatedAt:       op.CreatedAt,
	}
}
