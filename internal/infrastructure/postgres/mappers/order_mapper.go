package mappers

import (
	"github.com/kolatrade/trade-core-service/internal/domain"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:            model.ID,
		BuyerID:       model.BuyerID,
		SupplierID:    model.SupplierID,
		RFQID:         model.RFQID,
		Type:          domain.OrderType(model.Type),
		Status:        domain.OrderStatus(model.Status),
		DisputeID:     model.DisputeID,
		CountryCode:   model.CountryCode,
		International: model.International,
		TotalAmount:   model.TotalAmount,
		Currency:      model.Currency,
		OpsNotes:      model.OpsNotes,
		ShipmentID:    model.ShipmentID,
		MetadataJSON:  []byte(model.Metadata),

		DocsApprovedAt:     model.DocsApprovedAt,
		ShippingArrangedAt: model.ShippingArrangedAt,
		ShippedAt:          model.ShippedAt,
		CustomsClearanceAt: model.CustomsClearanceAt,
		DeliveredAt:        model.DeliveredAt,
		CompletedAt:        model.CompletedAt,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:            order.ID,
		BuyerID:       order.BuyerID,
		SupplierID:    order.SupplierID,
		RFQID:         order.RFQID,
		Type:          string(order.Type),
		Status:        string(order.Status),
		DisputeID:     order.DisputeID,
		CountryCode:   order.CountryCode,
		International: order.International,
		TotalAmount:   order.TotalAmount,
		Currency:      order.Currency,
		OpsNotes:      order.OpsNotes,
		ShipmentID:    order.ShipmentID,
		Metadata:      string(order.MetadataJSON),

		DocsApprovedAt:     order.DocsApprovedAt,
		ShippingArrangedAt: order.ShippingArrangedAt,
		ShippedAt:          order.ShippedAt,
		CustomsClearanceAt: order.CustomsClearanceAt,
		DeliveredAt:        order.DeliveredAt,
		CompletedAt:        order.CompletedAt,

		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func ToDomainDocument(model *models.TradeDocumentModel) *domain.TradeDocument {
	return &domain.TradeDocument{
		ID:      model.ID,
		OrderID: model.OrderID,
		Type:    model.Type,
		Status:  domain.DocumentStatus(model.Status),
	}
}

func ToDomainShipment(model *models.ShipmentModel) *domain.Shipment {
	return &domain.Shipment{
		ID:          model.ID,
		OrderID:     model.OrderID,
		Carrier:     model.Carrier,
		TrackingRef: model.TrackingRef,
	}
}
