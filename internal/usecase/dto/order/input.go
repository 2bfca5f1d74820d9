package orderdto

type AdvanceOrderInput struct {
	ActorID      string
	OrderID      string
	TargetStatus string
	Notes        string
}

type ConfirmDeliveryInput struct {
	ActorID string
	OrderID string
}
