package checkoutevents

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byType map[string]actionFunc
}

func newActionFactory(onInputsChanged, onFinished actionFunc) *actionFactory {
	return &actionFactory{
		byType: map[string]actionFunc{
			TypeAddressUpdated: onInputsChanged,
			TypeLinesUpdated:   onInputsChanged,
			// the lookup subtotal depends on the voucher type
			TypeVoucherUpdated: onInputsChanged,
			TypeCompleted:      onFinished,
			TypeDeleted:        onFinished,
		},
	}
}

func (f *actionFactory) get(eventType string) (actionFunc, bool) {
	eventType = strings.ToLower(strings.TrimSpace(eventType))
	fn, ok := f.byType[eventType]
	return fn, ok
}
