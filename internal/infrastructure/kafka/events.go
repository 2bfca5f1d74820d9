package kafka

import (
	"encoding/json"

	"github.com/kolatrade/trade-core-service/internal/domain"
)

const (
	TopicRFQEvents     = "trade.rfq.events"
	TopicOrderEvents   = "trade.order.events"
	TopicEscrowEvents  = "trade.escrow.events"
	TopicDisputeEvents = "trade.dispute.events"
)

type RFQEvent struct {
	RFQID      string `json:"rfq_id"`
	BuyerID    string `json:"buyer_id"`
	SupplierID string `json:"supplier_id,omitempty"`
	Status     string `json:"status"`
	Total      int64  `json:"total,omitempty"`
}

type OrderEvent struct {
	OrderID    string `json:"order_id"`
	BuyerID    string `json:"buyer_id"`
	SupplierID string `json:"supplier_id"`
	Status     string `json:"status"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
}

type EscrowEvent struct {
	OrderID string `json:"order_id"`
	Action  string `json:"action"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
}

type DisputeEvent struct {
	DisputeID string `json:"dispute_id"`
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
}

// Publish helpers tolerate a nil port so usecases stay testable without a
// broker attached.

func PublishRFQEvent(p domain.PublisherPort, event RFQEvent) error {
	return publish(p, TopicRFQEvents, event.RFQID, event)
}

func PublishOrderEvent(p domain.PublisherPort, event OrderEvent) error {
	return publish(p, TopicOrderEvents, event.OrderID, event)
}

func PublishEscrowEvent(p domain.PublisherPort, event EscrowEvent) error {
	return publish(p, TopicEscrowEvents, event.OrderID, event)
}

func PublishDisputeEvent(p domain.PublisherPort, event DisputeEvent) error {
	return publish(p, TopicDisputeEvents, event.DisputeID, event)
}

func publish(p domain.PublisherPort, topic, key string, event any) error {
	if p == nil {
		return nil
	}
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(topic, domain.Message{Key: []byte(key), Value: v})
}
