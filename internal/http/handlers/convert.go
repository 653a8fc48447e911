package handlers

import (
	"errors"
	"slices"
	"strings"

	"service-checkout-delivery/internal/domain"
)

var errUnknownMethodType = errors.New("unknown delivery method type")

func (r assignDeliveryMethodRequest) toModel() (domain.DeliveryMethod, error) {
	id := strings.TrimSpace(r.ID)
	switch strings.ToLower(strings.TrimSpace(r.Type)) {
	case methodTypeNone:
		return domain.NoDeliveryMethod{}, nil
	case methodTypeShipping:
		if id == "" {
			return nil, errors.New("shipping method id is required")
		}
		return domain.ShippingMethod{OptionID: id}, nil
	case methodTypeCollectionPoint:
		if id == "" {
			return nil, errors.New("collection point id is required")
		}
		return domain.CollectionPointMethod{WarehouseID: id}, nil
	default:
		return nil, errUnknownMethodType
	}
}

func optionToResponse(o domain.DeliveryOption) deliveryOptionDTO {
	return deliveryOptionDTO{
		ID:              o.ID,
		Source:          string(o.Source),
		Name:            o.Name,
		Description:     o.Description,
		Price:           moneyDTO{Amount: o.Price.Amount.StringFixed(2), Currency: o.Price.Currency},
		MinDeliveryDays: o.MinDeliveryDays,
		MaxDeliveryDays: o.MaxDeliveryDays,
		TaxClassID:      o.TaxClassID(),
		Active:          o.Active,
		Message:         o.Message,
		Metadata:        o.Metadata,
	}
}

// setToResponse lists options ordered by id so responses are stable.
func setToResponse(set domain.CachedDeliverySet) deliveryOptionsResponse {
	options := make([]deliveryOptionDTO, 0, len(set.Options))
	for _, o := range set.Options {
		options = append(options, optionToResponse(o))
	}
	slices.SortFunc(options, func(a, b deliveryOptionDTO) int {
		return strings.Compare(a.ID, b.ID)
	})

	resp := deliveryOptionsResponse{
		CheckoutID:       set.CheckoutID,
		Options:          options,
		AssignedOptionID: set.AssignedOptionID,
		AssignedIsValid:  set.AssignedIsValid,
		StaleAt:          set.StaleAt.UTC(),
	}
	if set.AssignedOption != nil {
		assigned := optionToResponse(*set.AssignedOption)
		resp.AssignedOption = &assigned
	}
	return resp
}

func pointsToResponse(points []domain.CollectionPoint) collectionPointsResponse {
	out := make([]collectionPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, collectionPointDTO{ID: p.ID, Name: p.Name, Address: p.Address})
	}
	return collectionPointsResponse{CollectionPoints: out}
}
