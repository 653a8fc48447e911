package handlers

import (
	"context"

	"service-checkout-delivery/internal/domain"
	"service-checkout-delivery/internal/service/delivery"
)

type deliveryOptionsUsecase interface {
	GetOrRefreshDeliveryOptions(ctx context.Context, checkoutID string) (domain.CachedDeliverySet, error)
	ListCollectionPoints(ctx context.Context, checkoutID string) ([]domain.CollectionPoint, error)
}

// NewDeliveryOptionsUsecase wires a delivery Service into a deliveryOptionsUsecase.
func NewDeliveryOptionsUsecase(svc *delivery.Service) deliveryOptionsUsecase {
	return svc
}

type deliveryMethodUsecase interface {
	AssignDeliveryMethod(ctx context.Context, checkoutID string, method domain.DeliveryMethod) error
}

// NewDeliveryMethodUsecase wires a delivery Assigner into a deliveryMethodUsecase.
func NewDeliveryMethodUsecase(a *delivery.Assigner) deliveryMethodUsecase {
	return a
}
