package domain

import "time"

// PlatformSettings is the immutable configuration snapshot injected into the
// usecases. Nothing in the core reads fee or hold policy from ambient state.
type PlatformSettings struct {
	FulfillmentFeeBps int64
	EscrowHoldDays    int
	RFQTtl            time.Duration
}

func (s PlatformSettings) PlatformFee(total int64) int64 {
	return total * s.FulfillmentFeeBps / 10000
}
