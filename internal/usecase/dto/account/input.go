package accountdto

import "time"

// UpdateControlsInput mirrors the admin account-controls surface:
// freeze, unfreeze, limit, unlimit.
type UpdateControlsInput struct {
	ActorID   string
	AccountID string
	Action    string
	Reason    string

	CanCreateOrders *bool
	CanRespondToRfq *bool
	CanWithdraw     *bool
	CanListProducts *bool
	LimitNotes      string
	LimitExpiresAt  *time.Time
}
