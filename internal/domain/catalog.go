package domain

import "github.com/shopspring/decimal"

// ShippingMethodType is the eligibility rule kind of a catalog method.
type ShippingMethodType string

// List of catalog shipping method types
const (
	ShippingPriceBased  ShippingMethodType = "price"
	ShippingWeightBased ShippingMethodType = "weight"
)

// CatalogShippingMethod is a row of the internal shipping catalog already
// filtered by channel and country.
type CatalogShippingMethod struct {
	ID          int64
	Name        string
	Description string
	Type        ShippingMethodType
	Price       Money
	// Price tier bounds; nil means unbounded.
	MinOrderAmount *decimal.Decimal
	MaxOrderAmount *decimal.Decimal
	// Weight tier bounds in grams; nil means unbounded.
	MinWeightGrams  *int64
	MaxWeightGrams  *int64
	MinDeliveryDays *int
	MaxDeliveryDays *int
	TaxClass        *TaxClass
	Metadata        map[string]string
	PrivateMetadata map[string]string
}
