package capability

import (
	"time"

	"github.com/kolatrade/trade-core-service/internal/domain"
)

type Action string

const (
	ActionOrderCreate    Action = "ORDER_CREATE"
	ActionOrderAdvance   Action = "ORDER_ADVANCE"
	ActionRFQCreate      Action = "RFQ_CREATE"
	ActionRFQRespond     Action = "RFQ_RESPOND"
	ActionEscrowWithdraw Action = "ESCROW_WITHDRAW"
	ActionProductList    Action = "PRODUCT_LIST"
	ActionDisputeOpen    Action = "DISPUTE_OPEN"
	ActionDisputeResolve Action = "DISPUTE_RESOLVE"
)

type TradeMode string

const (
	ModeBuyNow TradeMode = "BUY_NOW"
	ModeRFQ    TradeMode = "RFQ"
)

// Context carries the policy inputs for one authorization check. Country and
// Target may be nil when the action has no country or counterparty scope.
type Context struct {
	Country   *domain.TradeCountry
	TradeMode TradeMode
	Amount    int64
	Now       time.Time
}

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// Err converts a denial into the domain error; nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return domain.Deny(d.Reason)
}

// Authorize is the single gate in front of every mutating action. Pure: it
// reads the actor and context and produces a decision, nothing else.
// Order of checks follows the admin control semantics: a freeze beats every
// granular flag, granular flags beat country policy, country policy beats
// verification requirements.
func Authorize(actor *domain.Account, action Action, ctx Context) Decision {
	if actor == nil {
		return deny("account not resolved")
	}
	if !actor.IsActive {
		return deny("account deactivated")
	}
	if actor.IsFrozen {
		return deny("account frozen")
	}

	// Ops and admin actions are role-gated, not flag-gated.
	switch action {
	case ActionOrderAdvance, ActionDisputeResolve:
		if actor.Role != domain.RoleOps && actor.Role != domain.RoleAdmin {
			return deny("ops role required")
		}
		return allow()
	}

	if flag, gated := granularFlag(actor, action); gated && !actor.Allowed(flag) {
		if limitActive(actor, ctx.Now) {
			return deny("capability restricted")
		}
	}

	if ctx.Country != nil {
		if ctx.Country.Status != domain.CountryEnabled {
			return deny("country policy")
		}
		if ctx.TradeMode == ModeBuyNow && !ctx.Country.AllowBuyNow {
			return deny("country policy")
		}
		if ctx.TradeMode == ModeRFQ && !ctx.Country.AllowRfq {
			return deny("country policy")
		}
		if needsBlueTick(ctx) && !hasTick(actor, domain.TickBlue) {
			return deny("verification required")
		}
	}

	return allow()
}

func granularFlag(actor *domain.Account, action Action) (bool, bool) {
	switch action {
	case ActionOrderCreate, ActionRFQCreate:
		return actor.CanCreateOrders, true
	case ActionRFQRespond:
		return actor.CanRespondToRfq, true
	case ActionEscrowWithdraw:
		return actor.CanWithdraw, true
	case ActionProductList:
		return actor.CanListProducts, true
	}
	return false, false
}

// limitActive reports whether a granular restriction still applies. Expired
// limits are treated as lifted even before the background sweep restores the
// stored flags.
func limitActive(actor *domain.Account, now time.Time) bool {
	if actor.LimitExpiresAt == nil {
		return true
	}
	if now.IsZero() {
		now = time.Now()
	}
	return now.Before(*actor.LimitExpiresAt)
}

func needsBlueTick(ctx Context) bool {
	if ctx.Country.RequireBlueTick {
		return true
	}
	return ctx.Country.HighValueThreshold > 0 && ctx.Amount >= ctx.Country.HighValueThreshold
}

// hasTick treats the tick ladder as cumulative: gold and green satisfy a
// blue requirement.
func hasTick(actor *domain.Account, want domain.VerificationTick) bool {
	rank := map[domain.VerificationTick]int{
		domain.TickNone:  0,
		domain.TickBlue:  1,
		domain.TickGreen: 2,
		domain.TickGold:  3,
	}
	return rank[actor.Tick] >= rank[want]
}
