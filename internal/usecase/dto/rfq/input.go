package rfqdto

type CreateRFQInput struct {
	ActorID     string
	Category    string
	Quantity    int64
	Region      string
	CountryCode string
	ServicePlan string
	Currency    string
}

type AssignSupplierInput struct {
	ActorID    string
	RFQID      string
	SupplierID string
}

type GenerateQuoteInput struct {
	ActorID          string
	RFQID            string
	UnitPrice        int64
	ShippingEstimate int64
	DutyCategory     string
	Notes            string
}

type ConfirmRFQInput struct {
	ActorID string
	RFQID   string
}

type CancelRFQInput struct {
	ActorID string
	RFQID   string
	Reason  string
}
