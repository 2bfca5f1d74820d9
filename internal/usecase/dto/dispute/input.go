package disputedto

type OpenDisputeInput struct {
	ActorID     string
	OrderID     string
	Type        string
	Description string
	Evidence    []byte
}

type InvestigateDisputeInput struct {
	ActorID       string
	DisputeID     string
	InternalNotes string
}

type ResolveDisputeInput struct {
	ActorID         string
	DisputeID       string
	ResolutionType  string
	RefundAmount    int64
	SupplierPenalty int64
	BuyerCredit     int64
	Notes           string
}

type CloseDisputeInput struct {
	ActorID   string
	DisputeID string
	Notes     string
}
