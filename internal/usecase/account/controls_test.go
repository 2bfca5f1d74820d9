package account

import (
	"context"
	"testing"
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	accountdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountRepo struct {
	accounts map[string]*domain.Account
	audits   []*domain.AuditEntry
}

func (f *fakeAccountRepo) GetAccountByID(id string) (*domain.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountRepo) UpdateControls(account *domain.Account, entry *domain.AuditEntry) error {
	copied := *account
	f.accounts[account.ID] = &copied
	f.audits = append(f.audits, entry)
	return nil
}

func (f *fakeAccountRepo) FindExpiredLimits(now time.Time) ([]*domain.Account, error) {
	var expired []*domain.Account
	for _, account := range f.accounts {
		if account.LimitExpiresAt != nil && account.LimitExpiresAt.Before(now) {
			copied := *account
			expired = append(expired, &copied)
		}
	}
	return expired, nil
}

func newAccountFixture() (*fakeAccountRepo, *DefaultAccountUsecase) {
	repo := &fakeAccountRepo{accounts: map[string]*domain.Account{
		"admin-1": {ID: "admin-1", Role: domain.RoleAdmin, IsActive: true},
		"buyer-1": {
			ID: "buyer-1", Role: domain.RoleBuyer, IsActive: true,
			CanCreateOrders: true, CanRespondToRfq: true, CanWithdraw: true, CanListProducts: true,
		},
	}}
	return repo, NewDefaultAccountUsecase(repo, nil)
}

func TestFreezeRequiresReason(t *testing.T) {
	_, uc := newAccountFixture()

	_, err := uc.UpdateControls(&accountdto.UpdateControlsInput{
		ActorID: "admin-1", AccountID: "buyer-1", Action: ActionFreeze,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFreezeAndUnfreeze(t *testing.T) {
	repo, uc := newAccountFixture()

	account, err := uc.UpdateControls(&accountdto.UpdateControlsInput{
		ActorID: "admin-1", AccountID: "buyer-1", Action: ActionFreeze, Reason: "chargeback abuse",
	})
	require.NoError(t, err)
	assert.True(t, account.IsFrozen)
	assert.Equal(t, "chargeback abuse", account.FreezeReason)

	// Double freeze conflicts.
	_, err = uc.UpdateControls(&accountdto.UpdateControlsInput{
		ActorID: "admin-1", AccountID: "buyer-1", Action: ActionFreeze, Reason: "again",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	account, err = uc.UpdateControls(&accountdto.UpdateControlsInput{
		ActorID: "admin-1", AccountID: "buyer-1", Action: ActionUnfreeze, Reason: "resolved with support",
	})
	require.NoError(t, err)
	assert.False(t, account.IsFrozen)
	assert.Empty(t, account.FreezeReason)

	require.Len(t, repo.audits, 2)
	assert.Equal(t, "ACCOUNT_FREEZE", repo.audits[0].Action)
	assert.Equal(t, "ACCOUNT_UNFREEZE", repo.audits[1].Action)
}

func TestUpdateControlsRequiresOps(t *testing.T) {
	_, uc := newAccountFixture()

	_, err := uc.UpdateControls(&accountdto.UpdateControlsInput{
		ActorID: "buyer-1", AccountID: "buyer-1", Action: ActionFreeze, Reason: "self service",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLimitTogglesOnlyProvidedFlags(t *testing.T) {
	_, uc := newAccountFixture()

	off := false
	expiry := time.Now().Add(24 * time.Hour)
	account, err := uc.UpdateControls(&accountdto.UpdateControlsInput{
		ActorID: "admin-1", AccountID: "buyer-1", Action: ActionLimit,
		CanCreateOrders: &off,
		LimitNotes:      "pending KYC refresh",
		LimitExpiresAt:  &expiry,
	})
	require.NoError(t, err)
	assert.False(t, account.CanCreateOrders)
	assert.True(t, account.CanWithdraw)
	assert.True(t, account.CanRespondToRfq)
	assert.Equal(t, "pending KYC refresh", account.LimitNotes)
	require.NotNil(t, account.LimitExpiresAt)
}

func TestUnlimitRestoresAllFlags(t *testing.T) {
	_, uc := newAccountFixture()

	off := false
	_, err := uc.UpdateControls(&accountdto.UpdateControlsInput{
		ActorID: "admin-1", AccountID: "buyer-1", Action: ActionLimit,
		CanCreateOrders: &off, CanWithdraw: &off,
	})
	require.NoError(t, err)

	account, err := uc.UpdateControls(&accountdto.UpdateControlsInput{
		ActorID: "admin-1", AccountID: "buyer-1", Action: ActionUnlimit,
	})
	require.NoError(t, err)
	assert.True(t, account.CanCreateOrders)
	assert.True(t, account.CanWithdraw)
	assert.Empty(t, account.LimitNotes)
	assert.Nil(t, account.LimitExpiresAt)
}

func TestUnknownControlAction(t *testing.T) {
	_, uc := newAccountFixture()

	_, err := uc.UpdateControls(&accountdto.UpdateControlsInput{
		ActorID: "admin-1", AccountID: "buyer-1", Action: "BANISH",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpireLimits(t *testing.T) {
	repo, uc := newAccountFixture()

	past := time.Now().Add(-time.Hour)
	buyer := repo.accounts["buyer-1"]
	buyer.CanCreateOrders = false
	buyer.LimitNotes = "temp limit"
	buyer.LimitExpiresAt = &past

	require.NoError(t, uc.ExpireLimits(context.Background()))

	restored := repo.accounts["buyer-1"]
	assert.True(t, restored.CanCreateOrders)
	assert.Empty(t, restored.LimitNotes)
	assert.Nil(t, restored.LimitExpiresAt)

	require.Len(t, repo.audits, 1)
	assert.Equal(t, "ACCOUNT_LIMIT_EXPIRED", repo.audits[0].Action)
	assert.Equal(t, "system", repo.audits[0].ActorID)
}
