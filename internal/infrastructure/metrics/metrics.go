package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TradeMetrics groups the counters the lifecycle engine exports.
type TradeMetrics struct {
	RFQsCreatedTotal   prometheus.CounterVec
	RFQsConfirmedTotal prometheus.CounterVec
	RFQsExpiredTotal   prometheus.Counter

	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec
	OrderTransitionsTotal    prometheus.CounterVec
	OrdersCompletedTotal     prometheus.Counter
	DeliveriesConfirmedTotal prometheus.Counter

	EscrowLockedAmountTotal   prometheus.Counter
	EscrowReleasedAmountTotal prometheus.Counter
	EscrowRefundedAmountTotal prometheus.Counter
	PlatformFeeTotal          prometheus.Counter
	EscrowTerminalTotal       prometheus.CounterVec

	DisputesOpenedTotal   prometheus.Counter
	DisputesResolvedTotal prometheus.CounterVec

	AccountControlActionsTotal prometheus.CounterVec
}

func NewTradeMetrics() *TradeMetrics {
	return &TradeMetrics{
		RFQsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rfqs_created_total",
				Help: "Total RFQs created",
			},
			[]string{"country", "service_plan"},
		),

		RFQsConfirmedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rfqs_confirmed_total",
				Help: "Total RFQs confirmed into orders",
			},
			[]string{"country"},
		),

		RFQsExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rfqs_expired_total",
				Help: "Total RFQs expired by the background sweep",
			},
		),

		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total orders created",
			},
			[]string{"order_type", "currency"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total amount of created orders in minor currency units",
			},
			[]string{"currency"},
		),

		OrderTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transitions_total",
				Help: "Order status transitions by target status",
			},
			[]string{"status"},
		),

		OrdersCompletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_completed_total",
				Help: "Total orders reaching COMPLETED",
			},
		),

		DeliveriesConfirmedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "deliveries_confirmed_total",
				Help: "Total buyer delivery confirmations",
			},
		),

		EscrowLockedAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "escrow_locked_amount_total",
				Help: "Total amount locked into escrow in minor currency units",
			},
		),

		EscrowReleasedAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "escrow_released_amount_total",
				Help: "Total amount released to suppliers",
			},
		),

		EscrowRefundedAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "escrow_refunded_amount_total",
				Help: "Total amount refunded to buyers",
			},
		),

		PlatformFeeTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "platform_fee_total",
				Help: "Total platform fees withheld",
			},
		),

		EscrowTerminalTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_terminal_total",
				Help: "Escrow records reaching a terminal status",
			},
			[]string{"status"},
		),

		DisputesOpenedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "disputes_opened_total",
				Help: "Total disputes opened",
			},
		),

		DisputesResolvedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disputes_resolved_total",
				Help: "Disputes resolved by outcome",
			},
			[]string{"outcome"},
		),

		AccountControlActionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_control_actions_total",
				Help: "Admin account control actions applied",
			},
			[]string{"action"},
		),
	}
}
