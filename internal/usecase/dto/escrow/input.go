package escrowdto

type LockEscrowInput struct {
	ActorID string
	OrderID string
	Amount  int64
	Version int64
}

// ReleaseEscrowInput releases Amount, or the full remaining balance when
// Amount is zero. Version pins the idempotency token; zero means "current".
type ReleaseEscrowInput struct {
	ActorID string
	OrderID string
	Amount  int64
	Reason  string
	Version int64
}

type RefundEscrowInput struct {
	ActorID string
	OrderID string
	Amount  int64
	Reason  string
	Version int64
}
