package pricing

import (
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
)

// Quote pricing for RFQs. All amounts are minor currency units.

type packagingTier struct {
	minQty     int64
	maxQty     int64 // 0 means open-ended
	feePerUnit int64
}

var packagingTiers = []packagingTier{
	{1, 100, 1000},
	{101, 200, 980},
	{201, 300, 950},
	{301, 500, 930},
	{501, 1000, 900},
	{1001, 0, 880},
}

func PackagingFeePerUnit(quantity int64) int64 {
	for _, t := range packagingTiers {
		if quantity >= t.minQty && (t.maxQty == 0 || quantity <= t.maxQty) {
			return t.feePerUnit
		}
	}
	return 1000
}

type DutyCategory string

const (
	DutyGeneral     DutyCategory = "GENERAL"
	DutyElectronics DutyCategory = "ELECTRONICS"
	DutyIndustrial  DutyCategory = "INDUSTRIAL"
)

// DutyBps returns the import duty in basis points for a category.
func DutyBps(category DutyCategory) int64 {
	switch category {
	case DutyElectronics:
		return 1000
	case DutyIndustrial:
		return 1500
	default:
		return 700
	}
}

// DeliveryBase returns the base delivery charge for a region.
func DeliveryBase(region string) int64 {
	switch region {
	case "LAGOS":
		return 2000
	case "SOUTH_WEST":
		return 2500
	case "NORTH":
		return 4000
	case "EAST":
		return 3500
	default:
		return 3000
	}
}

type QuoteInput struct {
	UnitPrice        int64
	Quantity         int64
	DutyCategory     DutyCategory
	Region           string
	International    bool
	ShippingEstimate int64
	Notes            string
	QuotedBy         string
}

// BuildQuote computes the full pricing breakdown for an RFQ quote. The
// fulfillment fee comes from the injected settings snapshot, never from
// ambient configuration.
func BuildQuote(input QuoteInput, settings domain.PlatformSettings) *domain.QuoteBreakdown {
	productTotal := input.UnitPrice * input.Quantity

	perUnit := PackagingFeePerUnit(input.Quantity)
	packagingTotal := perUnit * input.Quantity

	fulfillment := productTotal * settings.FulfillmentFeeBps / 10000

	var duty int64
	if input.International {
		duty = productTotal * DutyBps(input.DutyCategory) / 10000
	}

	delivery := DeliveryBase(input.Region)

	total := productTotal + packagingTotal + fulfillment + duty + delivery + input.ShippingEstimate

	return &domain.QuoteBreakdown{
		UnitPrice:        input.UnitPrice,
		Quantity:         input.Quantity,
		ProductTotal:     productTotal,
		PackagingPerUnit: perUnit,
		PackagingTotal:   packagingTotal,
		FulfillmentFee:   fulfillment,
		FulfillmentBps:   settings.FulfillmentFeeBps,
		DutyAmount:       duty,
		DeliveryBase:     delivery,
		ShippingEstimate: input.ShippingEstimate,
		Total:            total,
		Notes:            input.Notes,
		QuotedBy:         input.QuotedBy,
		QuotedAt:         time.Now(),
	}
}
