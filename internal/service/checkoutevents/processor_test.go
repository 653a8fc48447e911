package checkoutevents_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"service-checkout-delivery/internal/service/checkoutevents"
	testlog "service-checkout-delivery/internal/testutil"
)

func TestProcessor_Handle_InputsChangedMarksStale(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{
		checkoutevents.TypeAddressUpdated,
		"  CHECKOUT.LINES_UPDATED ",
		checkoutevents.TypeVoucherUpdated,
	} {
		typ := typ
		t.Run(typ, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockDeliveryStore(ctrl)
			at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
			store.EXPECT().MarkDeliveryStale(gomock.Any(), "c1", at).Return(true, nil)

			p := checkoutevents.NewProcessor(store, testlog.New().Logger())
			err := p.Handle(context.Background(), checkoutevents.Event{Type: typ, CheckoutID: "c1", OccurredAt: at})
			require.NoError(t, err)
		})
	}
}

func TestProcessor_Handle_MissingTimestampUsesNow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockDeliveryStore(ctrl)
	before := time.Now().UTC()
	store.EXPECT().
		MarkDeliveryStale(gomock.Any(), "c1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, at time.Time) (bool, error) {
			require.False(t, at.Before(before))
			return false, nil
		})

	p := checkoutevents.NewProcessor(store, testlog.New().Logger())
	require.NoError(t, p.Handle(context.Background(), checkoutevents.Event{Type: checkoutevents.TypeAddressUpdated, CheckoutID: "c1"}))
}

func TestProcessor_Handle_FinishedDropsOptions(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{checkoutevents.TypeCompleted, checkoutevents.TypeDeleted} {
		typ := typ
		t.Run(typ, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rec := testlog.New()
			store := NewMockDeliveryStore(ctrl)
			store.EXPECT().DeleteDeliveryOptions(gomock.Any(), "c1").Return(int64(3), nil)

			p := checkoutevents.NewProcessor(store, rec.Logger())
			require.NoError(t, p.Handle(context.Background(), checkoutevents.Event{Type: typ, CheckoutID: "c1"}))

			v, ok := rec.Field("delivery options dropped", "rows")
			require.True(t, ok)
			require.Equal(t, int64(3), v)
		})
	}
}

func TestProcessor_Handle_StoreErrorReturned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("boom")
	store := NewMockDeliveryStore(ctrl)
	store.EXPECT().MarkDeliveryStale(gomock.Any(), "c1", gomock.Any()).Return(false, wantErr)
	store.EXPECT().DeleteDeliveryOptions(gomock.Any(), "c1").Return(int64(0), wantErr)

	p := checkoutevents.NewProcessor(store, testlog.New().Logger())
	require.ErrorIs(t, p.Handle(context.Background(), checkoutevents.Event{Type: checkoutevents.TypeLinesUpdated, CheckoutID: "c1"}), wantErr)
	require.ErrorIs(t, p.Handle(context.Background(), checkoutevents.Event{Type: checkoutevents.TypeDeleted, CheckoutID: "c1"}), wantErr)
}

func TestProcessor_Handle_UnknownTypeIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := testlog.New()
	p := checkoutevents.NewProcessor(NewMockDeliveryStore(ctrl), rec.Logger())

	require.NoError(t, p.Handle(context.Background(), checkoutevents.Event{Type: "checkout.created", CheckoutID: "c1"}))
	require.True(t, rec.Has("debug", "checkout event skipped"))
}
