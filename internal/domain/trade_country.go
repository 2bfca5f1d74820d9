package domain

type CountryStatus string

const (
	CountryEnabled  CountryStatus = "ENABLED"
	CountryDisabled CountryStatus = "DISABLED"
	CountryPending  CountryStatus = "PENDING"
)

// TradeCountry is per-country trade policy. The core reads it; only the
// admin surface outside this service writes it.
type TradeCountry struct {
	ID                 string
	Code               string
	Name               string
	Status             CountryStatus
	AllowBuyNow        bool
	AllowRfq           bool
	RequireDocsReview  bool
	RequireBlueTick    bool
	HighValueThreshold int64
}

type TradeCountryRepository interface {
	GetCountryByCode(code string) (*TradeCountry, error)
}
