package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"service-checkout-delivery/internal/apperr"
	"service-checkout-delivery/internal/domain"
	"service-checkout-delivery/internal/ports/deliverytx"
)

// CheckoutRepo represents checkout repository.
type CheckoutRepo struct {
	db *pgxpool.Pool
}

// NewCheckoutRepo creates a new CheckoutRepo.
func NewCheckoutRepo(db *pgxpool.Pool) *CheckoutRepo {
	return &CheckoutRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *CheckoutRepo) WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// rollback on panic
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				panic(rbErr)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetCheckout returns the checkout or nil when it does not exist.
func (r *CheckoutRepo) GetCheckout(ctx context.Context, id string) (*domain.Checkout, error) {
	c, err := getCheckout(ctx, r.db, id, false)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checkout %q: %w", id, err)
	}
	return c, nil
}

// ListLines returns checkout lines ordered by id.
func (r *CheckoutRepo) ListLines(ctx context.Context, checkoutID string) ([]domain.CheckoutLine, error) {
	return listLines(ctx, r.db, checkoutID)
}

// ListDeliveryOptions returns all stored delivery options of a checkout.
func (r *CheckoutRepo) ListDeliveryOptions(ctx context.Context, checkoutID string) ([]domain.DeliveryOption, error) {
	return listDeliveryOptions(ctx, r.db, checkoutID)
}

// MarkDeliveryStale moves the staleness deadline to at, if it is later, and reports
// whether it moved. The row is touched either way, so a refresh already in flight
// sees a new updated_at and gives up its write.
func (r *CheckoutRepo) MarkDeliveryStale(ctx context.Context, checkoutID string, at time.Time) (bool, error) {
	var moved bool
	err := r.db.QueryRow(ctx, `
        UPDATE checkouts c
        SET delivery_methods_stale_at = LEAST(c.delivery_methods_stale_at, $2),
            updated_at = clock_timestamp()
        FROM (
            SELECT token, delivery_methods_stale_at AS prev
            FROM checkouts
            WHERE token = $1
            FOR UPDATE
        ) p
        WHERE c.token = p.token
        RETURNING p.prev > $2
    `, checkoutID, at).Scan(&moved)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("mark delivery stale %q: %w", checkoutID, err)
	}
	return moved, nil
}

// DeleteDeliveryOptions drops the cached delivery set of a checkout.
func (r *CheckoutRepo) DeleteDeliveryOptions(ctx context.Context, checkoutID string) (int64, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM checkout_delivery_options WHERE checkout_token = $1`, checkoutID)
	if err != nil {
		return 0, fmt.Errorf("delete delivery options %q: %w", checkoutID, err)
	}
	return ct.RowsAffected(), nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// LockCheckoutForUpdate - select the checkout row FOR UPDATE.
func (r *TxRepo) LockCheckoutForUpdate(ctx context.Context, checkoutID string) (*domain.Checkout, error) {
	c, err := getCheckout(ctx, r.tx, checkoutID, true)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("lock checkout %q: %w", checkoutID, err)
	}
	return c, nil
}

// ListLines - list checkout lines inside the transaction.
func (r *TxRepo) ListLines(ctx context.Context, checkoutID string) ([]domain.CheckoutLine, error) {
	return listLines(ctx, r.tx, checkoutID)
}

// ListDeliveryOptions - list stored delivery options inside the transaction.
func (r *TxRepo) ListDeliveryOptions(ctx context.Context, checkoutID string) ([]domain.DeliveryOption, error) {
	return listDeliveryOptions(ctx, r.tx, checkoutID)
}

// UpdateCheckoutFields - update only the named checkout columns.
func (r *TxRepo) UpdateCheckoutFields(ctx context.Context, c *domain.Checkout, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	sets := make([]string, 0, len(fields)+1)
	args := []any{c.ID}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		expr, val, err := checkoutColumn(c, f)
		if err != nil {
			return err
		}
		args = append(args, val)
		sets = append(sets, fmt.Sprintf(expr, len(args)))
	}
	sets = append(sets, "updated_at = now()")

	ct, err := r.tx.Exec(ctx,
		`UPDATE checkouts SET `+strings.Join(sets, ", ")+` WHERE token = $1`, args...)
	if err != nil {
		return fmt.Errorf("update checkout %q: %w", c.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("checkout %q: %w", c.ID, apperr.ErrNotFound)
	}
	return nil
}

// checkoutColumn returns a SET expression with a %d placeholder and its argument.
func checkoutColumn(c *domain.Checkout, field string) (string, any, error) {
	switch field {
	case domain.FieldShippingAddress:
		if c.ShippingAddress == nil {
			return "shipping_address = $%d::jsonb", nil, nil
		}
		b, err := json.Marshal(c.ShippingAddress)
		if err != nil {
			return "", nil, fmt.Errorf("encode shipping address: %w", err)
		}
		return "shipping_address = $%d::jsonb", string(b), nil
	case domain.FieldSaveShippingAddress:
		return "save_shipping_address = $%d", c.SaveShippingAddress, nil
	case domain.FieldAssignedDeliveryID:
		return "assigned_delivery_id = $%d", c.AssignedDeliveryID, nil
	case domain.FieldAssignedDeliveryValid:
		return "assigned_delivery_valid = $%d", c.AssignedDeliveryValid, nil
	case domain.FieldShippingMethodName:
		return "shipping_method_name = $%d", c.ShippingMethodName, nil
	case domain.FieldCollectionPointID:
		return "collection_point_id = $%d", c.CollectionPointID, nil
	case domain.FieldBaseShippingPrice:
		return "base_shipping_price_amount = $%d::numeric", c.BaseShippingPrice.Amount.String(), nil
	case domain.FieldDeliveryMethodsStaleAt:
		return "delivery_methods_stale_at = $%d", c.DeliveryMethodsStaleAt, nil
	case domain.FieldPriceExpiration:
		return "price_expiration = $%d", c.PriceExpiration, nil
	case domain.FieldDiscountExpiration:
		return "discount_expiration = $%d", c.DiscountExpiration, nil
	case domain.FieldMetadata:
		raw, err := encodeStringMap(c.Metadata)
		if err != nil {
			return "", nil, err
		}
		return "metadata = $%d::jsonb", raw, nil
	default:
		return "", nil, fmt.Errorf("unknown checkout field %q", field)
	}
}

func getCheckout(ctx context.Context, q querier, id string, forUpdate bool) (*domain.Checkout, error) {
	sql := `
        SELECT token, channel_id, currency, shipping_address, save_shipping_address,
               assigned_delivery_id, assigned_delivery_valid, shipping_method_name,
               collection_point_id, base_shipping_price_amount::text,
               voucher_code, voucher_type, discount_amount::text,
               delivery_methods_stale_at, price_expiration, discount_expiration,
               metadata, updated_at
        FROM checkouts
        WHERE token = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}

	var (
		c                     domain.Checkout
		addrRaw, metaRaw      []byte
		basePrice, discount   string
		voucherCode, vchrType string
	)
	err := q.QueryRow(ctx, sql, id).Scan(
		&c.ID, &c.ChannelID, &c.Currency, &addrRaw, &c.SaveShippingAddress,
		&c.AssignedDeliveryID, &c.AssignedDeliveryValid, &c.ShippingMethodName,
		&c.CollectionPointID, &basePrice,
		&voucherCode, &vchrType, &discount,
		&c.DeliveryMethodsStaleAt, &c.PriceExpiration, &c.DiscountExpiration,
		&metaRaw, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(addrRaw) > 0 && string(addrRaw) != "null" {
		var addr domain.Address
		if err := json.Unmarshal(addrRaw, &addr); err != nil {
			return nil, fmt.Errorf("decode shipping address: %w", err)
		}
		c.ShippingAddress = &addr
	}
	if c.BaseShippingPrice, err = domain.NewMoney(basePrice, c.Currency); err != nil {
		return nil, err
	}
	if voucherCode != "" {
		d, err := decimal.NewFromString(discount)
		if err != nil {
			return nil, fmt.Errorf("parse discount: %w", err)
		}
		c.Voucher = &domain.Voucher{
			Code:     voucherCode,
			Type:     domain.VoucherType(vchrType),
			Discount: domain.Money{Amount: d, Currency: c.Currency},
		}
	}
	if c.Metadata, err = decodeStringMap(metaRaw); err != nil {
		return nil, err
	}
	return &c, nil
}

func listLines(ctx context.Context, q querier, checkoutID string) ([]domain.CheckoutLine, error) {
	rows, err := q.Query(ctx, `
        SELECT l.id, l.variant_id, l.quantity, l.unit_price_amount::text, c.currency,
               l.is_shipping_required, l.weight_grams
        FROM checkout_lines l
        JOIN checkouts c ON c.token = l.checkout_token
        WHERE l.checkout_token = $1
        ORDER BY l.id
    `, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("list lines %q: %w", checkoutID, err)
	}
	defer rows.Close()

	var out []domain.CheckoutLine
	for rows.Next() {
		var (
			l                 domain.CheckoutLine
			amount, currency string
		)
		if err := rows.Scan(&l.ID, &l.VariantID, &l.Quantity, &amount, &currency,
			&l.IsShippingRequired, &l.WeightGrams); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		if l.UnitPrice, err = domain.NewMoney(amount, currency); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
