package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLockedEscrow(t *testing.T, total, fee int64) *EscrowRecord {
	t.Helper()
	e := &EscrowRecord{
		ID:      "esc-1",
		OrderID: "ord-1",
		Status:  EscrowPending,
		Version: 1,
	}
	require.NoError(t, e.Lock(total, fee))
	return e
}

func TestEscrowLock(t *testing.T) {
	e := &EscrowRecord{ID: "esc-1", OrderID: "ord-1", Status: EscrowPending, Version: 1}

	require.NoError(t, e.Lock(100_000, 5_200))
	assert.Equal(t, EscrowLocked, e.Status)
	assert.Equal(t, int64(2), e.Version)
	assert.Equal(t, int64(94_800), e.Remaining())

	err := e.Lock(100_000, 5_200)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestEscrowReleaseRequiresDeliveryConfirmation(t *testing.T) {
	e := newLockedEscrow(t, 100_000, 5_200)

	err := e.Release(10_000, false)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, e.ConfirmDelivery(time.Now()))
	require.NoError(t, e.Release(10_000, false))
	assert.Equal(t, EscrowPartialRelease, e.Status)
	assert.Equal(t, int64(84_800), e.Remaining())
}

func TestEscrowReleaseNeverClamps(t *testing.T) {
	e := newLockedEscrow(t, 100_000, 5_200)
	require.NoError(t, e.ConfirmDelivery(time.Now()))

	err := e.Release(94_801, false)
	assert.ErrorIs(t, err, ErrBalanceExceeded)
	assert.Equal(t, int64(0), e.ReleasedAmount)

	require.NoError(t, e.Release(94_800, false))
	assert.Equal(t, EscrowReleased, e.Status)
	assert.True(t, e.Status.Terminal())

	// Releasing against an emptied record is still a balance error, not a
	// state error.
	assert.ErrorIs(t, e.Release(1, false), ErrBalanceExceeded)
}

func TestEscrowRefundToZeroIsRefunded(t *testing.T) {
	e := newLockedEscrow(t, 100_000, 5_200)

	require.NoError(t, e.Refund(94_800, false))
	assert.Equal(t, EscrowRefunded, e.Status)
	assert.True(t, e.Status.Terminal())
}

func TestEscrowMixedTerminalIsReleased(t *testing.T) {
	e := newLockedEscrow(t, 100_000, 5_200)
	require.NoError(t, e.ConfirmDelivery(time.Now()))

	require.NoError(t, e.Release(50_000, false))
	require.NoError(t, e.Refund(44_800, false))
	assert.Equal(t, EscrowReleased, e.Status)
}

func TestEscrowTerminalIsImmutable(t *testing.T) {
	e := newLockedEscrow(t, 100_000, 5_200)
	require.NoError(t, e.Refund(94_800, false))

	// Monetary operations against a drained record report the balance
	// violation; non-monetary transitions report the state violation.
	assert.ErrorIs(t, e.Refund(1, false), ErrBalanceExceeded)
	assert.ErrorIs(t, e.Release(1, true), ErrBalanceExceeded)
	assert.ErrorIs(t, e.Hold(), ErrInvalidTransition)
	assert.ErrorIs(t, e.ClearHold(), ErrInvalidTransition)
}

func TestEscrowDisputeHoldBlocksOrdinaryMoves(t *testing.T) {
	e := newLockedEscrow(t, 100_000, 5_200)
	require.NoError(t, e.ConfirmDelivery(time.Now()))
	require.NoError(t, e.Hold())
	assert.Equal(t, EscrowDisputed, e.Status)

	assert.ErrorIs(t, e.Release(10_000, false), ErrInvalidTransition)
	assert.ErrorIs(t, e.Refund(10_000, false), ErrInvalidTransition)

	// A resolution bypasses the hold but not the balance invariant.
	assert.ErrorIs(t, e.Release(94_801, true), ErrBalanceExceeded)
	require.NoError(t, e.Release(10_000, true))
	assert.False(t, e.DisputeHold)
	assert.Equal(t, EscrowPartialRelease, e.Status)
}

func TestEscrowApplyResolution(t *testing.T) {
	e := newLockedEscrow(t, 100_000, 5_200)
	require.NoError(t, e.Hold())

	err := e.ApplyResolution(90_000, 10_000)
	assert.ErrorIs(t, err, ErrBalanceExceeded)

	require.NoError(t, e.ApplyResolution(80_000, 14_800))
	assert.False(t, e.DisputeHold)
	assert.Equal(t, int64(80_000), e.RefundedAmount)
	assert.Equal(t, int64(14_800), e.PenaltyAmount)
	assert.Equal(t, int64(0), e.Remaining())
	assert.Equal(t, EscrowRefunded, e.Status)
}

func TestEscrowResolutionPenaltySeparateFromRefund(t *testing.T) {
	e := &EscrowRecord{ID: "esc-1", OrderID: "ord-1", Status: EscrowPending, Version: 1}
	require.NoError(t, e.Lock(50_000, 1_000))
	require.NoError(t, e.Hold())

	require.NoError(t, e.ApplyResolution(20_000, 5_000))
	assert.Equal(t, int64(20_000), e.RefundedAmount)
	assert.Equal(t, int64(5_000), e.PenaltyAmount)
	assert.Equal(t, int64(24_000), e.Remaining())
	assert.Equal(t, EscrowPartialRelease, e.Status)
}

func TestEscrowClearHold(t *testing.T) {
	e := newLockedEscrow(t, 100_000, 5_200)
	require.NoError(t, e.Hold())
	require.NoError(t, e.ClearHold())
	assert.Equal(t, EscrowLocked, e.Status)

	assert.ErrorIs(t, e.ClearHold(), ErrInvalidTransition)
}

func TestEscrowVersionAdvancesPerMutation(t *testing.T) {
	e := newLockedEscrow(t, 100_000, 5_200) // version 2 after lock
	require.NoError(t, e.ConfirmDelivery(time.Now()))
	require.NoError(t, e.Release(10_000, false))
	require.NoError(t, e.Hold())
	assert.Equal(t, int64(5), e.Version)
}

func TestEscrowOperationToken(t *testing.T) {
	op := NewEscrowOperation("ord-1", EscrowActionRelease, 3, "ops-1", "payout")
	assert.Equal(t, "ord-1:release:3", op.Token)
	assert.Equal(t, int64(3), op.ExpectedVersion)
}

func TestOrderTransitionTable(t *testing.T) {
	assert.True(t, StatusPendingReview.CanTransition(StatusDocsRequired))
	assert.True(t, StatusPendingReview.CanTransition(StatusDocsApproved))
	assert.True(t, StatusInTransit.CanTransition(StatusDelivered))
	assert.True(t, StatusDelivered.CanTransition(StatusCompleted))

	assert.False(t, StatusPendingReview.CanTransition(StatusShippingArranged))
	assert.False(t, StatusDelivered.CanTransition(StatusInTransit))
	assert.False(t, StatusCompleted.CanTransition(StatusDelivered))
}

func TestNormalizeRole(t *testing.T) {
	role, kind := NormalizeRole("FACTORY")
	assert.Equal(t, RoleSupplier, role)
	assert.Equal(t, SupplierFactory, kind)

	role, kind = NormalizeRole("wholesaler")
	assert.Equal(t, RoleSupplier, role)
	assert.Equal(t, SupplierWholesaler, kind)

	role, _ = NormalizeRole("RETAILER")
	assert.Equal(t, RoleBuyer, role)

	role, _ = NormalizeRole("SUPER_ADMIN")
	assert.Equal(t, RoleAdmin, role)
}
