package domain

// DeliveryMethod is the caller's choice: NoDeliveryMethod, ShippingMethod or CollectionPointMethod.
type DeliveryMethod interface {
	deliveryMethod()
}

// NoDeliveryMethod clears any assignment.
type NoDeliveryMethod struct{}

// ShippingMethod selects a delivery option by id.
type ShippingMethod struct {
	OptionID string
}

// CollectionPointMethod selects a click-and-collect warehouse.
type CollectionPointMethod struct {
	WarehouseID string
}

func (NoDeliveryMethod) deliveryMethod()      {}
func (ShippingMethod) deliveryMethod()        {}
func (CollectionPointMethod) deliveryMethod() {}

// DeliveryState is the delivery dimension of a checkout.
type DeliveryState string

// List of delivery states
const (
	StateNoDeliveryMethod        DeliveryState = "no_delivery_method"
	StateShippingMethodAssigned  DeliveryState = "shipping_method_assigned"
	StateCollectionPointAssigned DeliveryState = "collection_point_assigned"
)

// State derives the delivery state from the checkout fields.
func (c Checkout) State() DeliveryState {
	switch {
	case c.CollectionPointID != "":
		return StateCollectionPointAssigned
	case c.AssignedDeliveryID != "":
		return StateShippingMethodAssigned
	default:
		return StateNoDeliveryMethod
	}
}
