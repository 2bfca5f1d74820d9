package order

import (
	"testing"
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
	orderdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/order"
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

type fakeOrderRepo struct {
	orders map[string]*domain.Order
	audits []*domain.AuditEntry
}

func (f *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) UpdateOrder(order *domain.Order, expectedStatus domain.OrderStatus, entry *domain.AuditEntry) error {
	stored, ok := f.orders[order.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Status != expectedStatus {
		return domain.ErrConflict
	}
	copied := *order
	f.orders[order.ID] = &copied
	f.audits = append(f.audits, entry)
	return nil
}

func (f *fakeOrderRepo) GetOrdersByBuyerID(buyerID string, page, limit int64) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

type fakeEscrowRepo struct {
	escrows map[string]*domain.EscrowRecord
	tokens  map[string]bool
}

func (f *fakeEscrowRepo) GetEscrowByOrderID(orderID string) (*domain.EscrowRecord, error) {
	escrow, ok := f.escrows[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *escrow
	return &copied, nil
}

func (f *fakeEscrowRepo) ProcessEscrowOperation(op *domain.EscrowOperation, escrow *domain.EscrowRecord, order *domain.Order, dispute *domain.Dispute, entry *domain.AuditEntry) error {
	if f.tokens == nil {
		f.tokens = make(map[string]bool)
	}
	if f.tokens[op.Token] {
		return domain.ErrConflict
	}
	f.tokens[op.Token] = true
	copied := *escrow
	f.escrows[op.OrderID] = &copied
	return nil
}

type fakeDocumentStore struct {
	docs map[string][]*domain.TradeDocument
}

func (f *fakeDocumentStore) GetOrderDocuments(orderID string) ([]*domain.TradeDocument, error) {
	return f.docs[orderID], nil
}

type fakeShipmentStore struct {
	shipments map[string]*domain.Shipment
}

func (f *fakeShipmentStore) GetOrderShipment(orderID string) (*domain.Shipment, error) {
	return f.shipments[orderID], nil
}

type orderFixture struct {
	orders    *fakeOrderRepo
	escrows   *fakeEscrowRepo
	docs      *fakeDocumentStore
	shipments *fakeShipmentStore
	uc        *DefaultOrderUsecase
}

func newOrderFixture() *orderFixture {
	accounts := &fakeAccountRepo{accounts: map[string]*domain.Account{
		"ops-1": {ID: "ops-1", Role: domain.RoleOps, IsActive: true},
		"buyer-1": {
			ID: "buyer-1", Role: domain.RoleBuyer, IsActive: true, CanCreateOrders: true,
		},
		"supplier-1": {ID: "supplier-1", Role: domain.RoleSupplier, IsActive: true},
	}}
	f := &orderFixture{
		orders:    &fakeOrderRepo{orders: make(map[string]*domain.Order)},
		escrows:   &fakeEscrowRepo{escrows: make(map[string]*domain.EscrowRecord)},
		docs:      &fakeDocumentStore{docs: make(map[string][]*domain.TradeDocument)},
		shipments: &fakeShipmentStore{shipments: make(map[string]*domain.Shipment)},
	}
	f.uc = NewDefaultOrderUsecase(f.orders, f.escrows, accounts, f.docs, f.shipments, nil, nil)
	return f
}

func (f *orderFixture) seedOrder(status domain.OrderStatus, international bool) *domain.Order {
	order := &domain.Order{
		ID:            "ord-1",
		BuyerID:       "buyer-1",
		SupplierID:    "supplier-1",
		Type:          domain.TypeRFQ,
		Status:        status,
		CountryCode:   "NG",
		International: international,
		TotalAmount:   100_000,
		Currency:      "NGN",
	}
	f.orders.orders[order.ID] = order
	return order
}

func (f *orderFixture) seedEscrow(status domain.EscrowStatus) *domain.EscrowRecord {
	escrow := &domain.EscrowRecord{
		ID:                "esc-1",
		OrderID:           "ord-1",
		TotalAmount:       100_000,
		PlatformFeeAmount: 5_200,
		Status:            status,
		Version:           2,
	}
	f.escrows.escrows["ord-1"] = escrow
	return escrow
}

func TestAdvanceOrderRequiresOps(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusPendingReview, false)

	_, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "buyer-1", OrderID: "ord-1", TargetStatus: string(domain.StatusDocsApproved),
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAdvanceOrderBlockedByDispute(t *testing.T) {
	f := newOrderFixture()
	order := f.seedOrder(domain.StatusInTransit, false)
	order.DisputeID = "dsp-1"

	_, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "ops-1", OrderID: "ord-1", TargetStatus: string(domain.StatusDelivered),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAdvanceOrderRejectsIllegalStep(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusPendingReview, false)

	_, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "ops-1", OrderID: "ord-1", TargetStatus: string(domain.StatusShippingArranged),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAdvanceOrderDocsGateInternational(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusDocsSubmitted, true)
	f.docs.docs["ord-1"] = []*domain.TradeDocument{
		{ID: "doc-1", OrderID: "ord-1", Type: "INVOICE", Status: domain.DocApproved},
		{ID: "doc-2", OrderID: "ord-1", Type: "CUSTOMS_FORM", Status: domain.DocPending},
	}

	_, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "ops-1", OrderID: "ord-1", TargetStatus: string(domain.StatusDocsApproved),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	f.docs.docs["ord-1"][1].Status = domain.DocApproved
	order, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "ops-1", OrderID: "ord-1", TargetStatus: string(domain.StatusDocsApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDocsApproved, order.Status)
	assert.NotNil(t, order.DocsApprovedAt)
}

func TestAdvanceOrderDocsGateSkippedDomestic(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusPendingReview, false)

	order, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "ops-1", OrderID: "ord-1", TargetStatus: string(domain.StatusDocsApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDocsApproved, order.Status)
}

func TestAdvanceOrderShipmentGate(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusDocsApproved, false)

	_, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "ops-1", OrderID: "ord-1", TargetStatus: string(domain.StatusShippingArranged),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	f.shipments.shipments["ord-1"] = &domain.Shipment{ID: "shp-1", OrderID: "ord-1", Carrier: "DHL"}
	order, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "ops-1", OrderID: "ord-1", TargetStatus: string(domain.StatusShippingArranged),
	})
	require.NoError(t, err)
	assert.Equal(t, "shp-1", order.ShipmentID)
	assert.NotNil(t, order.ShippingArrangedAt)
}

func TestAdvanceOrderCompletionRequiresTerminalEscrow(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusDelivered, false)
	f.seedEscrow(domain.EscrowLocked)

	_, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "ops-1", OrderID: "ord-1", TargetStatus: string(domain.StatusCompleted),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	f.seedEscrow(domain.EscrowReleased)
	order, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "ops-1", OrderID: "ord-1", TargetStatus: string(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, order.Status)
	assert.NotNil(t, order.CompletedAt)
}

func TestAdvanceOrderAppendsOpsNotes(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusInTransit, false)

	order, err := f.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID: "ops-1", OrderID: "ord-1",
		TargetStatus: string(domain.StatusDelivered),
		Notes:        "handed to buyer warehouse",
	})
	require.NoError(t, err)
	assert.Contains(t, order.OpsNotes, "handed to buyer warehouse")
	assert.NotNil(t, order.DeliveredAt)

	require.Len(t, f.orders.audits, 1)
	assert.Equal(t, "ORDER_ADVANCE", f.orders.audits[0].Action)
}

func TestConfirmDeliveryBuyerOnly(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusDelivered, false)
	f.seedEscrow(domain.EscrowLocked)

	err := f.uc.ConfirmDelivery(&orderdto.ConfirmDeliveryInput{ActorID: "supplier-1", OrderID: "ord-1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestConfirmDeliveryRequiresDeliveredStatus(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusInTransit, false)
	f.seedEscrow(domain.EscrowLocked)

	err := f.uc.ConfirmDelivery(&orderdto.ConfirmDeliveryInput{ActorID: "buyer-1", OrderID: "ord-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestConfirmDelivery(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusDelivered, false)
	f.seedEscrow(domain.EscrowLocked)

	require.NoError(t, f.uc.ConfirmDelivery(&orderdto.ConfirmDeliveryInput{ActorID: "buyer-1", OrderID: "ord-1"}))

	stored := f.escrows.escrows["ord-1"]
	require.NotNil(t, stored.DeliveryConfirmedAt)
	assert.Equal(t, int64(3), stored.Version)
	assert.True(t, f.escrows.tokens["ord-1:delivery_confirm:2"])

	// A second confirmation is a no-op, not a replayed operation.
	require.NoError(t, f.uc.ConfirmDelivery(&orderdto.ConfirmDeliveryInput{ActorID: "buyer-1", OrderID: "ord-1"}))
	assert.Len(t, f.escrows.tokens, 1)
}

func TestConfirmDeliveryAfterSettlementIsNoOp(t *testing.T) {
	f := newOrderFixture()
	f.seedOrder(domain.StatusCompleted, false)
	f.seedEscrow(domain.EscrowReleased)

	// The payout already settled without a buyer confirmation on record;
	// confirming now records nothing.
	require.NoError(t, f.uc.ConfirmDelivery(&orderdto.ConfirmDeliveryInput{ActorID: "buyer-1", OrderID: "ord-1"}))
	assert.Empty(t, f.escrows.tokens)
	assert.Nil(t, f.escrows.escrows["ord-1"].DeliveryConfirmedAt)
}
