package mappers

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
)

func ToDomainAccount(model *models.AccountModel) *domain.Account {
	role, kind := domain.NormalizeRole(model.Role)
	if model.SupplierKind != "" {
		kind = domain.SupplierKind(model.SupplierKind)
	}
	return &domain.Account{
		ID:              model.ID,
		Name:            model.Name,
		Role:            role,
		SupplierKind:    kind,
		Country:         model.Country,
		Tick:            domain.VerificationTick(model.Tick),
		IsFrozen:        model.IsFrozen,
		FreezeReason:    model.FreezeReason,
		CanCreateOrders: model.CanCreateOrders,
		CanRespondToRfq: model.CanRespondToRfq,
		CanWithdraw:     model.CanWithdraw,
		CanListProducts: model.CanListProducts,
		LimitNotes:      model.LimitNotes,
		LimitExpiresAt:  model.LimitExpiresAt,
		IsActive:        model.IsActive,
		ProfileJSON:     []byte(model.Profile),
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMAccount(account *domain.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:              account.ID,
		Name:            account.Name,
		Role:            string(account.Role),
		SupplierKind:    string(account.SupplierKind),
		Country:         account.Country,
		Tick:            string(account.Tick),
		IsFrozen:        account.IsFrozen,
		FreezeReason:    account.FreezeReason,
		CanCreateOrders: account.CanCreateOrders,
		CanRespondToRfq: account.CanRespondToRfq,
		CanWithdraw:     account.CanWithdraw,
		CanListProducts: account.CanListProducts,
		LimitNotes:      account.LimitNotes,
		LimitExpiresAt:  account.LimitExpiresAt,
		IsActive:        account.IsActive,
		Profile:         string(account.ProfileJSON),
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
}
