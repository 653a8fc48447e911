package domain

import (
	"strconv"
	"strings"
	"time"
)

// DeliverySource tells where a delivery option came from.
type DeliverySource string

// List of delivery option sources
const (
	SourceInternal DeliverySource = "internal"
	SourceExternal DeliverySource = "external"
)

// Valid checks if the DeliverySource is known
func (s DeliverySource) Valid() bool {
	return s == SourceInternal || s == SourceExternal
}

// TaxClass is the tax class attached to a delivery option.
type TaxClass struct {
	ID       string
	Name     string
	Metadata map[string]string
}

// DeliveryOption is a normalized shipping option offered to a checkout.
type DeliveryOption struct {
	ID              string
	Source          DeliverySource
	Name            string
	Description     string
	Price           Money
	MinDeliveryDays *int
	MaxDeliveryDays *int
	TaxClass        *TaxClass
	// Active is false when the exclusion policy hid the option; Message holds the reason.
	Active  bool
	Message string
	// Valid is a storage flag: false for a retained assignment no source offers anymore.
	Valid           bool
	Metadata        map[string]string
	PrivateMetadata map[string]string
}

// InternalOptionID renders an internal catalog id.
func InternalOptionID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ExternalOptionID renders "<provider>:<providerMethodId>".
func ExternalOptionID(provider, methodID string) string {
	return provider + ":" + methodID
}

// SplitExternalOptionID is the inverse of ExternalOptionID.
func SplitExternalOptionID(id string) (provider, methodID string, ok bool) {
	provider, methodID, ok = strings.Cut(id, ":")
	if !ok || provider == "" || methodID == "" {
		return "", "", false
	}
	return provider, methodID, true
}

// TaxClassID returns the tax class id or "" when none is set.
func (o DeliveryOption) TaxClassID() string {
	if o.TaxClass == nil {
		return ""
	}
	return o.TaxClass.ID
}

// PriceRelevantEqual reports whether price and tax class are unchanged.
func (o DeliveryOption) PriceRelevantEqual(other DeliveryOption) bool {
	return o.Price.Equal(other.Price) && o.TaxClassID() == other.TaxClassID()
}

// CachedDeliverySet is the last resolved set of delivery options of a checkout.
type CachedDeliverySet struct {
	CheckoutID string
	// Options holds the currently valid options keyed by id.
	Options map[string]DeliveryOption
	// AssignedOptionID may point outside Options when the assignment is no longer offered.
	AssignedOptionID string
	AssignedIsValid  bool
	// AssignedOption is the stored data of the assignment, if any is known.
	AssignedOption *DeliveryOption
	StaleAt        time.Time
}

// IsStale reports whether the set must be refreshed before being trusted.
func (s CachedDeliverySet) IsStale(now time.Time) bool {
	return !now.Before(s.StaleAt)
}

// Selectable reports whether id may be chosen as a new assignment.
func (s CachedDeliverySet) Selectable(id string) bool {
	if id == "" {
		return false
	}
	if id == s.AssignedOptionID {
		return true
	}
	opt, ok := s.Options[id]
	return ok && opt.Active
}

// Lookup returns option data for id, including a retained assignment.
func (s CachedDeliverySet) Lookup(id string) (DeliveryOption, bool) {
	if opt, ok := s.Options[id]; ok {
		return opt, true
	}
	if s.AssignedOption != nil && s.AssignedOption.ID == id {
		return *s.AssignedOption, true
	}
	return DeliveryOption{}, false
}
