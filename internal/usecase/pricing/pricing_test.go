package pricing

import (
	"testing"

	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPackagingFeePerUnit(t *testing.T) {
	cases := []struct {
		quantity int64
		want     int64
	}{
		{1, 1000},
		{100, 1000},
		{101, 980},
		{200, 980},
		{201, 950},
		{300, 950},
		{301, 930},
		{500, 930},
		{501, 900},
		{1000, 900},
		{1001, 880},
		{50_000, 880},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PackagingFeePerUnit(tc.quantity), "quantity %d", tc.quantity)
	}
}

func TestDutyBps(t *testing.T) {
	assert.Equal(t, int64(700), DutyBps(DutyGeneral))
	assert.Equal(t, int64(1000), DutyBps(DutyElectronics))
	assert.Equal(t, int64(1500), DutyBps(DutyIndustrial))
	assert.Equal(t, int64(700), DutyBps(DutyCategory("UNKNOWN")))
}

func TestBuildQuoteDomestic(t *testing.T) {
	settings := domain.PlatformSettings{FulfillmentFeeBps: 520}

	quote := BuildQuote(QuoteInput{
		UnitPrice:    10_000,
		Quantity:     150,
		DutyCategory: DutyElectronics,
		Region:       "LAGOS",
		QuotedBy:     "ops-1",
	}, settings)

	assert.Equal(t, int64(1_500_000), quote.ProductTotal)
	assert.Equal(t, int64(980), quote.PackagingPerUnit)
	assert.Equal(t, int64(147_000), quote.PackagingTotal)
	assert.Equal(t, int64(78_000), quote.FulfillmentFee) // 5.2% of product total
	assert.Equal(t, int64(0), quote.DutyAmount)          // domestic, no duty
	assert.Equal(t, int64(2_000), quote.DeliveryBase)
	assert.Equal(t, int64(1_727_000), quote.Total)
}

func TestBuildQuoteInternationalAddsDuty(t *testing.T) {
	settings := domain.PlatformSettings{FulfillmentFeeBps: 520}

	quote := BuildQuote(QuoteInput{
		UnitPrice:        10_000,
		Quantity:         150,
		DutyCategory:     DutyElectronics,
		Region:           "NORTH",
		International:    true,
		ShippingEstimate: 50_000,
	}, settings)

	assert.Equal(t, int64(150_000), quote.DutyAmount) // 10% of product total
	assert.Equal(t, int64(4_000), quote.DeliveryBase)
	assert.Equal(t, int64(1_929_000), quote.Total)
}

func TestPlatformFee(t *testing.T) {
	settings := domain.PlatformSettings{FulfillmentFeeBps: 520}
	assert.Equal(t, int64(5_200), settings.PlatformFee(100_000))
	assert.Equal(t, int64(0), settings.PlatformFee(0))
}
