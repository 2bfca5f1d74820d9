package models

type TradeCountryModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	Code               string `gorm:"uniqueIndex:idx_country_code"`
	Name               string
	Status             string
	AllowBuyNow        bool
	AllowRfq           bool
	RequireDocsReview  bool
	RequireBlueTick    bool
	HighValueThreshold int64
}

func (TradeCountryModel) TableName() string {
	return "trade_countries"
}
