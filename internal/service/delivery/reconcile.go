package delivery

import (
	"slices"
	"strings"

	"service-checkout-delivery/internal/domain"
)

// ReconcileResult is the outcome of merging fresh candidates with the previous assignment.
type ReconcileResult struct {
	// Options holds every candidate by id, the refreshed assignment included.
	Options          map[string]domain.DeliveryOption
	AssignedOptionID string
	AssignedIsValid  bool
	// Assigned is the refreshed or retained data of the assignment.
	Assigned      *domain.DeliveryOption
	PriceImpacted bool
	// Retained is set when the assignment is no longer offered and is kept with Valid=false.
	Retained *domain.DeliveryOption
}

// Reconcile merges internal and external candidates and preserves the checkout's
// assignment even when no candidate carries its id anymore. stored is the option
// data persisted before this refresh.
func Reconcile(
	checkout domain.Checkout,
	stored []domain.DeliveryOption,
	internal, external []domain.DeliveryOption,
) ReconcileResult {
	candidates := make(map[string]domain.DeliveryOption, len(internal)+len(external))
	for _, o := range internal {
		candidates[o.ID] = withValid(o, true)
	}
	// last write wins on id collisions
	for _, o := range external {
		candidates[o.ID] = withValid(o, true)
	}

	res := ReconcileResult{Options: candidates}

	assignedID := checkout.AssignedDeliveryID
	if assignedID == "" {
		return res
	}
	res.AssignedOptionID = assignedID
	previous := findStored(stored, assignedID)

	if cur, ok := candidates[assignedID]; ok {
		res.Assigned = &cur
		res.AssignedIsValid = cur.Active
		if previous == nil {
			// rows were dropped: the checkout still remembers what it charges
			res.PriceImpacted = !checkout.BaseShippingPrice.Equal(cur.Price) || checkout.ShippingMethodName != cur.Name
		} else {
			res.PriceImpacted = !previous.Valid || !previous.PriceRelevantEqual(cur)
		}
		return res
	}

	retained := retainedOption(checkout, previous)
	res.Assigned = &retained
	res.Retained = &retained
	res.AssignedIsValid = false
	// already a zombie before this refresh: its price did not move again
	if previous == nil {
		res.PriceImpacted = checkout.AssignedDeliveryValid
	} else {
		res.PriceImpacted = previous.Valid
	}
	return res
}

// Persisted lists the rows that must survive the refresh, ordered by id.
func (r ReconcileResult) Persisted() []domain.DeliveryOption {
	out := make([]domain.DeliveryOption, 0, len(r.Options)+1)
	for _, o := range r.Options {
		out = append(out, o)
	}
	if r.Retained != nil {
		out = append(out, *r.Retained)
	}
	slices.SortFunc(out, func(a, b domain.DeliveryOption) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// findStored prefers the valid row over a retained one.
func findStored(stored []domain.DeliveryOption, id string) *domain.DeliveryOption {
	var found *domain.DeliveryOption
	for i := range stored {
		if stored[i].ID != id {
			continue
		}
		if stored[i].Valid {
			o := stored[i]
			return &o
		}
		o := stored[i]
		found = &o
	}
	return found
}

func retainedOption(checkout domain.Checkout, previous *domain.DeliveryOption) domain.DeliveryOption {
	if previous != nil {
		o := *previous
		o.Valid = false
		o.Active = false
		return o
	}
	// nothing stored: rebuild from what the checkout remembers
	source := domain.SourceInternal
	if _, _, ok := domain.SplitExternalOptionID(checkout.AssignedDeliveryID); ok {
		source = domain.SourceExternal
	}
	return domain.DeliveryOption{
		ID:     checkout.AssignedDeliveryID,
		Source: source,
		Name:   checkout.ShippingMethodName,
		Price:  checkout.BaseShippingPrice,
	}
}

func withValid(o domain.DeliveryOption, valid bool) domain.DeliveryOption {
	o.Valid = valid
	return o
}

// cachedSet builds the caller-facing view from a checkout and its stored rows.
func cachedSet(c domain.Checkout, stored []domain.DeliveryOption) domain.CachedDeliverySet {
	set := domain.CachedDeliverySet{
		CheckoutID:       c.ID,
		Options:          make(map[string]domain.DeliveryOption, len(stored)),
		AssignedOptionID: c.AssignedDeliveryID,
		AssignedIsValid:  c.AssignedDeliveryValid,
		StaleAt:          c.DeliveryMethodsStaleAt,
	}
	for _, o := range stored {
		if o.Valid {
			set.Options[o.ID] = o
		}
	}
	if c.AssignedDeliveryID != "" {
		set.AssignedOption = findStored(stored, c.AssignedDeliveryID)
	}
	return set
}

func (r ReconcileResult) set(c domain.Checkout) domain.CachedDeliverySet {
	options := make(map[string]domain.DeliveryOption, len(r.Options))
	for id, o := range r.Options {
		options[id] = o
	}
	return domain.CachedDeliverySet{
		CheckoutID:       c.ID,
		Options:          options,
		AssignedOptionID: r.AssignedOptionID,
		AssignedIsValid:  r.AssignedIsValid,
		AssignedOption:   r.Assigned,
		StaleAt:          c.DeliveryMethodsStaleAt,
	}
}
