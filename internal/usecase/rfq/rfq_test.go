package rfq

import (
	"context"
	"testing"
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	rfqdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/rfq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountRepo struct {
	accounts map[string]*domain.Account
}

func (f *fakeAccountRepo) GetAccountByID(id string) (*domain.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

func (f *fakeAccountRepo) UpdateControls(account *domain.Account, entry *domain.AuditEntry) error {
	return nil
}

func (f *fakeAccountRepo) FindExpiredLimits(now time.Time) ([]*domain.Account, error) {
	return nil, nil
}

type fakeCountryRepo struct {
	countries map[string]*domain.TradeCountry
}

func (f *fakeCountryRepo) GetCountryByCode(code string) (*domain.TradeCountry, error) {
	country, ok := f.countries[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return country, nil
}

type fakeRFQRepo struct {
	rfqs    map[string]*domain.RFQ
	orders  map[string]*domain.Order
	escrows map[string]*domain.EscrowRecord
	audits  []*domain.AuditEntry
}

func newFakeRFQRepo() *fakeRFQRepo {
	return &fakeRFQRepo{
		rfqs:    make(map[string]*domain.RFQ),
		orders:  make(map[string]*domain.Order),
		escrows: make(map[string]*domain.EscrowRecord),
	}
}

func (f *fakeRFQRepo) CreateRFQ(rfq *domain.RFQ) error {
	copied := *rfq
	f.rfqs[rfq.ID] = &copied
	return nil
}

func (f *fakeRFQRepo) GetRFQByID(rfqID string) (*domain.RFQ, error) {
	rfq, ok := f.rfqs[rfqID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *rfq
	return &copied, nil
}

func (f *fakeRFQRepo) UpdateRFQ(rfq *domain.RFQ, expectedStatus domain.RFQStatus, entry *domain.AuditEntry) error {
	stored, ok := f.rfqs[rfq.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Status != expectedStatus {
		return domain.ErrConflict
	}
	copied := *rfq
	f.rfqs[rfq.ID] = &copied
	f.audits = append(f.audits, entry)
	return nil
}

func (f *fakeRFQRepo) ConfirmRFQ(rfq *domain.RFQ, order *domain.Order, escrow *domain.EscrowRecord, entry *domain.AuditEntry) error {
	stored, ok := f.rfqs[rfq.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Status != domain.RFQQuoted {
		return domain.ErrConflict
	}
	copiedRFQ := *rfq
	f.rfqs[rfq.ID] = &copiedRFQ
	copiedOrder := *order
	f.orders[order.ID] = &copiedOrder
	copiedEscrow := *escrow
	f.escrows[escrow.OrderID] = &copiedEscrow
	f.audits = append(f.audits, entry)
	return nil
}

func (f *fakeRFQRepo) FindExpiredRFQs(now time.Time) ([]*domain.RFQ, error) {
	var expired []*domain.RFQ
	for _, rfq := range f.rfqs {
		if rfq.Status != domain.RFQPending && rfq.Status != domain.RFQAssigned {
			continue
		}
		if rfq.ExpiresAt.Before(now) {
			copied := *rfq
			expired = append(expired, &copied)
		}
	}
	return expired, nil
}

func testAccounts() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*domain.Account{
		"buyer-1": {
			ID: "buyer-1", Role: domain.RoleBuyer, IsActive: true,
			CanCreateOrders: true, Tick: domain.TickBlue,
		},
		"supplier-1": {
			ID: "supplier-1", Role: domain.RoleSupplier, IsActive: true,
			CanRespondToRfq: true,
		},
		"supplier-frozen": {
			ID: "supplier-frozen", Role: domain.RoleSupplier, IsActive: true,
			CanRespondToRfq: true, IsFrozen: true,
		},
		"ops-1":   {ID: "ops-1", Role: domain.RoleOps, IsActive: true},
		"admin-1": {ID: "admin-1", Role: domain.RoleAdmin, IsActive: true},
	}}
}

func testCountries() *fakeCountryRepo {
	return &fakeCountryRepo{countries: map[string]*domain.TradeCountry{
		"NG": {
			Code: "NG", Status: domain.CountryEnabled,
			AllowBuyNow: true, AllowRfq: true,
		},
		"GH": {
			Code: "GH", Status: domain.CountryEnabled,
			AllowRfq: true, RequireDocsReview: true,
		},
	}}
}

func newTestUsecase(repo *fakeRFQRepo) *DefaultRFQUsecase {
	return NewDefaultRFQUsecase(repo, testAccounts(), testCountries(), nil, nil, domain.PlatformSettings{
		FulfillmentFeeBps: 520,
		RFQTtl:            72 * time.Hour,
	})
}

func TestCreateRFQ(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)

	rfq, err := uc.CreateRFQ(&rfqdto.CreateRFQInput{
		ActorID:     "buyer-1",
		Category:    "ELECTRONICS",
		Quantity:    150,
		Region:      "LAGOS",
		CountryCode: "NG",
		Currency:    "NGN",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RFQPending, rfq.Status)
	assert.Equal(t, domain.PlanBasic, rfq.ServicePlan)
	assert.NotEmpty(t, rfq.ID)
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), rfq.ExpiresAt, time.Minute)
}

func TestCreateRFQRejectsBadQuantity(t *testing.T) {
	uc := newTestUsecase(newFakeRFQRepo())

	_, err := uc.CreateRFQ(&rfqdto.CreateRFQInput{
		ActorID: "buyer-1", Quantity: 0, CountryCode: "NG", Currency: "NGN",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func seedRFQ(repo *fakeRFQRepo, status domain.RFQStatus, supplierID string) *domain.RFQ {
	rfq := &domain.RFQ{
		ID:          "rfq-1",
		BuyerID:     "buyer-1",
		SupplierID:  supplierID,
		Category:    "ELECTRONICS",
		Quantity:    150,
		Region:      "LAGOS",
		CountryCode: "NG",
		ServicePlan: domain.PlanBasic,
		Status:      status,
		Currency:    "NGN",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	repo.rfqs[rfq.ID] = rfq
	return rfq
}

func TestAssignSupplier(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	seedRFQ(repo, domain.RFQPending, "")

	err := uc.AssignSupplier(&rfqdto.AssignSupplierInput{
		ActorID: "ops-1", RFQID: "rfq-1", SupplierID: "supplier-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RFQAssigned, repo.rfqs["rfq-1"].Status)
	assert.Equal(t, "supplier-1", repo.rfqs["rfq-1"].SupplierID)
}

func TestAssignSupplierIdempotent(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	seedRFQ(repo, domain.RFQAssigned, "supplier-1")

	// Same supplier again: no-op.
	err := uc.AssignSupplier(&rfqdto.AssignSupplierInput{
		ActorID: "ops-1", RFQID: "rfq-1", SupplierID: "supplier-1",
	})
	assert.NoError(t, err)

	// A different supplier conflicts.
	err = uc.AssignSupplier(&rfqdto.AssignSupplierInput{
		ActorID: "ops-1", RFQID: "rfq-1", SupplierID: "supplier-frozen",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAssignSupplierRejectsFrozenSupplier(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	seedRFQ(repo, domain.RFQPending, "")

	err := uc.AssignSupplier(&rfqdto.AssignSupplierInput{
		ActorID: "ops-1", RFQID: "rfq-1", SupplierID: "supplier-frozen",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAssignSupplierRequiresOps(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	seedRFQ(repo, domain.RFQPending, "")

	err := uc.AssignSupplier(&rfqdto.AssignSupplierInput{
		ActorID: "buyer-1", RFQID: "rfq-1", SupplierID: "supplier-1",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGenerateQuote(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	seedRFQ(repo, domain.RFQAssigned, "supplier-1")

	rfq, err := uc.GenerateQuote(&rfqdto.GenerateQuoteInput{
		ActorID: "ops-1", RFQID: "rfq-1", UnitPrice: 10_000, DutyCategory: "ELECTRONICS",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RFQQuoted, rfq.Status)
	require.NotNil(t, rfq.Quote)
	assert.Equal(t, int64(1_500_000), rfq.Quote.ProductTotal)
	assert.Equal(t, int64(0), rfq.Quote.DutyAmount) // NG does not require docs review
	assert.Equal(t, "ops-1", rfq.Quote.QuotedBy)
}

func TestGenerateQuoteAllowsRequote(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	seedRFQ(repo, domain.RFQAssigned, "supplier-1")

	first, err := uc.GenerateQuote(&rfqdto.GenerateQuoteInput{
		ActorID: "ops-1", RFQID: "rfq-1", UnitPrice: 10_000,
	})
	require.NoError(t, err)

	second, err := uc.GenerateQuote(&rfqdto.GenerateQuoteInput{
		ActorID: "ops-1", RFQID: "rfq-1", UnitPrice: 12_000,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RFQQuoted, second.Status)
	assert.Greater(t, second.Quote.Total, first.Quote.Total)
}

func TestConfirmRFQCreatesOrderAndEscrow(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	seedRFQ(repo, domain.RFQAssigned, "supplier-1")

	_, err := uc.GenerateQuote(&rfqdto.GenerateQuoteInput{
		ActorID: "ops-1", RFQID: "rfq-1", UnitPrice: 10_000,
	})
	require.NoError(t, err)

	order, err := uc.ConfirmRFQ(&rfqdto.ConfirmRFQInput{ActorID: "buyer-1", RFQID: "rfq-1"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPendingReview, order.Status)
	assert.Equal(t, domain.TypeRFQ, order.Type)
	assert.Equal(t, "rfq-1", order.RFQID)
	assert.Equal(t, domain.RFQConfirmed, repo.rfqs["rfq-1"].Status)

	escrow := repo.escrows[order.ID]
	require.NotNil(t, escrow)
	assert.Equal(t, domain.EscrowPending, escrow.Status)
	assert.Equal(t, order.TotalAmount, escrow.TotalAmount)
	assert.Equal(t, order.TotalAmount*520/10000, escrow.PlatformFeeAmount)
	assert.Equal(t, int64(1), escrow.Version)
}

func TestConfirmRFQRequiresQuote(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	seedRFQ(repo, domain.RFQAssigned, "supplier-1")

	_, err := uc.ConfirmRFQ(&rfqdto.ConfirmRFQInput{ActorID: "buyer-1", RFQID: "rfq-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestConfirmRFQOnlyBuyer(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	seedRFQ(repo, domain.RFQAssigned, "supplier-1")

	_, err := uc.GenerateQuote(&rfqdto.GenerateQuoteInput{
		ActorID: "ops-1", RFQID: "rfq-1", UnitPrice: 10_000,
	})
	require.NoError(t, err)

	_, err = uc.ConfirmRFQ(&rfqdto.ConfirmRFQInput{ActorID: "supplier-1", RFQID: "rfq-1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCancelRFQ(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	seedRFQ(repo, domain.RFQPending, "")

	err := uc.CancelRFQ(&rfqdto.CancelRFQInput{ActorID: "buyer-1", RFQID: "rfq-1", Reason: "found locally"})
	require.NoError(t, err)
	assert.Equal(t, domain.RFQCancelled, repo.rfqs["rfq-1"].Status)

	// Terminal RFQs cannot be cancelled again.
	err = uc.CancelRFQ(&rfqdto.CancelRFQInput{ActorID: "buyer-1", RFQID: "rfq-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestExpireRFQs(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	rfq := seedRFQ(repo, domain.RFQPending, "")
	rfq.ExpiresAt = time.Now().Add(-time.Minute)

	require.NoError(t, uc.ExpireRFQs(context.Background()))
	assert.Equal(t, domain.RFQExpired, repo.rfqs["rfq-1"].Status)
}

func TestExpireRFQsLeavesQuoted(t *testing.T) {
	repo := newFakeRFQRepo()
	uc := newTestUsecase(repo)
	rfq := seedRFQ(repo, domain.RFQQuoted, "supplier-1")
	rfq.ExpiresAt = time.Now().Add(-time.Minute)

	// A quoted RFQ sits with the buyer; the sweep leaves it alone.
	require.NoError(t, uc.ExpireRFQs(context.Background()))
	assert.Equal(t, domain.RFQQuoted, repo.rfqs["rfq-1"].Status)
}
