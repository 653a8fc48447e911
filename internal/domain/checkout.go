package domain

import (
	"maps"
	"time"
)

// VoucherType is the kind of voucher applied to a checkout.
type VoucherType string

// List of voucher types
const (
	VoucherEntireOrder     VoucherType = "entire_order"
	VoucherShipping        VoucherType = "shipping"
	VoucherSpecificProduct VoucherType = "specific_product"
)

// AffectsShippingLookup reports whether the discount must be left out of the
// subtotal used to look up shipping methods.
func (t VoucherType) AffectsShippingLookup() bool {
	return t == VoucherShipping || t == VoucherSpecificProduct
}

// Voucher is the voucher applied to a checkout.
type Voucher struct {
	Code     string
	Type     VoucherType
	Discount Money
}

// Address is a postal address.
type Address struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	CompanyName    string `json:"company_name,omitempty"`
	StreetAddress1 string `json:"street_address_1"`
	StreetAddress2 string `json:"street_address_2,omitempty"`
	City           string `json:"city"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country"`
	CountryArea    string `json:"country_area,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// SameAddress compares two optional addresses by value.
func SameAddress(a, b *Address) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Checkout carries the checkout fields the delivery engine reads and writes.
type Checkout struct {
	ID                  string
	ChannelID           string
	Currency            string
	ShippingAddress     *Address
	SaveShippingAddress bool

	AssignedDeliveryID    string
	AssignedDeliveryValid bool
	ShippingMethodName    string
	CollectionPointID     string
	// BaseShippingPrice is the undiscounted shipping price of the assignment.
	BaseShippingPrice Money

	Voucher *Voucher

	DeliveryMethodsStaleAt time.Time
	PriceExpiration        time.Time
	DiscountExpiration     time.Time

	Metadata  map[string]string
	UpdatedAt time.Time
}

// Clone returns a copy that can be mutated without touching c.
func (c Checkout) Clone() Checkout {
	out := c
	if c.ShippingAddress != nil {
		addr := *c.ShippingAddress
		out.ShippingAddress = &addr
	}
	if c.Voucher != nil {
		v := *c.Voucher
		out.Voucher = &v
	}
	out.Metadata = maps.Clone(c.Metadata)
	return out
}

// Country returns the shipping country or "".
func (c Checkout) Country() string {
	if c.ShippingAddress == nil {
		return ""
	}
	return c.ShippingAddress.Country
}

// DeliveryStamp captures the fields a refresh must find unchanged before it writes.
// UpdatedAt moves on every write to the checkout row, stale marks included, so
// line changes that never touch the checkout columns are caught too.
type DeliveryStamp struct {
	AssignedDeliveryID     string
	CollectionPointID      string
	DeliveryMethodsStaleAt time.Time
	ShippingAddress        *Address
	Voucher                *Voucher
	UpdatedAt              time.Time
}

// Stamp returns the checkout's delivery stamp.
func (c Checkout) Stamp() DeliveryStamp {
	cc := c.Clone()
	return DeliveryStamp{
		AssignedDeliveryID:     c.AssignedDeliveryID,
		CollectionPointID:      c.CollectionPointID,
		DeliveryMethodsStaleAt: c.DeliveryMethodsStaleAt,
		ShippingAddress:        cc.ShippingAddress,
		Voucher:                cc.Voucher,
		UpdatedAt:              c.UpdatedAt,
	}
}

// Equal compares two stamps.
func (s DeliveryStamp) Equal(o DeliveryStamp) bool {
	return s.AssignedDeliveryID == o.AssignedDeliveryID &&
		s.CollectionPointID == o.CollectionPointID &&
		s.DeliveryMethodsStaleAt.Equal(o.DeliveryMethodsStaleAt) &&
		SameAddress(s.ShippingAddress, o.ShippingAddress) &&
		sameVoucher(s.Voucher, o.Voucher) &&
		s.UpdatedAt.Equal(o.UpdatedAt)
}

func sameVoucher(a, b *Voucher) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Code == b.Code && a.Type == b.Type && a.Discount.Equal(b.Discount)
}

// CheckoutLine is a single line of a checkout.
type CheckoutLine struct {
	ID                 string
	VariantID          string
	Quantity           int
	UnitPrice          Money
	IsShippingRequired bool
	WeightGrams        int64
}

// Total returns the undiscounted line total.
func (l CheckoutLine) Total() Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// ShippingRequired reports whether any line is physical.
func ShippingRequired(lines []CheckoutLine) bool {
	for _, l := range lines {
		if l.IsShippingRequired {
			return true
		}
	}
	return false
}

// TotalWeightGrams sums the weight of shipping-required lines.
func TotalWeightGrams(lines []CheckoutLine) int64 {
	var total int64
	for _, l := range lines {
		if l.IsShippingRequired {
			total += l.WeightGrams * int64(l.Quantity)
		}
	}
	return total
}

// CollectionPoint is a warehouse offering click-and-collect.
type CollectionPoint struct {
	ID        string
	ChannelID string
	Name      string
	Address   Address
}

// List of persisted checkout field names
const (
	FieldShippingAddress        = "shipping_address"
	FieldSaveShippingAddress    = "save_shipping_address"
	FieldAssignedDeliveryID     = "assigned_delivery_id"
	FieldAssignedDeliveryValid  = "assigned_delivery_valid"
	FieldShippingMethodName     = "shipping_method_name"
	FieldCollectionPointID      = "collection_point_id"
	FieldBaseShippingPrice      = "base_shipping_price_amount"
	FieldDeliveryMethodsStaleAt = "delivery_methods_stale_at"
	FieldPriceExpiration        = "price_expiration"
	FieldDiscountExpiration     = "discount_expiration"
	FieldMetadata               = "metadata"
)

// MetaActiveAppShippingID is left by older external assignments.
const MetaActiveAppShippingID = "external_app_shipping_id"
