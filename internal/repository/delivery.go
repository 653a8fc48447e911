package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"service-checkout-delivery/internal/domain"
)

// optionKey is the natural key of a stored delivery option.
type optionKey struct {
	ID     string
	Source domain.DeliverySource
	Valid  bool
}

func keyOf(o domain.DeliveryOption) optionKey {
	return optionKey{ID: o.ID, Source: o.Source, Valid: o.Valid}
}

// UpsertDeliveryOptions - merge options into storage: rows with a matching
// (option id, source, valid) key are updated, the rest are inserted.
func (r *TxRepo) UpsertDeliveryOptions(ctx context.Context, checkoutID string, opts []domain.DeliveryOption) error {
	if len(opts) == 0 {
		return nil
	}
	existing, err := storedKeys(ctx, r.tx, checkoutID)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, o := range opts {
		args, err := optionArgs(checkoutID, o)
		if err != nil {
			return err
		}
		if _, ok := existing[keyOf(o)]; ok {
			batch.Queue(updateOptionSQL, args...)
		} else {
			batch.Queue(insertOptionSQL, args...)
		}
	}

	br := r.tx.SendBatch(ctx, batch)
	for _, o := range opts {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("upsert delivery option %q: %w", o.ID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("upsert delivery options: %w", err)
	}
	return nil
}

// DeleteDeliveryOptionsExcept - delete stored options whose key is not in keep.
func (r *TxRepo) DeleteDeliveryOptionsExcept(ctx context.Context, checkoutID string, keep []domain.DeliveryOption) error {
	ids := make([]string, 0, len(keep))
	sources := make([]string, 0, len(keep))
	valid := make([]bool, 0, len(keep))
	for _, o := range keep {
		ids = append(ids, o.ID)
		sources = append(sources, string(o.Source))
		valid = append(valid, o.Valid)
	}

	_, err := r.tx.Exec(ctx, `
        DELETE FROM checkout_delivery_options d
        WHERE d.checkout_token = $1
          AND (d.option_id, d.source, d.is_valid) NOT IN (
              SELECT k.option_id, k.source, k.is_valid
              FROM unnest($2::text[], $3::text[], $4::bool[]) AS k(option_id, source, is_valid)
          )
    `, checkoutID, ids, sources, valid)
	if err != nil {
		return fmt.Errorf("delete stale delivery options %q: %w", checkoutID, err)
	}
	return nil
}

const insertOptionSQL = `
    INSERT INTO checkout_delivery_options (
        checkout_token, option_id, source, is_valid, name, description,
        price_amount, currency, min_days, max_days,
        tax_class_id, tax_class_name, tax_class_metadata,
        active, message, metadata, private_metadata, updated_at
    ) VALUES (
        $1, $2, $3, $4, $5, $6,
        $7::numeric, $8, $9, $10,
        $11, $12, $13::jsonb,
        $14, $15, $16::jsonb, $17::jsonb, now()
    )`

const updateOptionSQL = `
    UPDATE checkout_delivery_options
    SET name = $5,
        description = $6,
        price_amount = $7::numeric,
        currency = $8,
        min_days = $9,
        max_days = $10,
        tax_class_id = $11,
        tax_class_name = $12,
        tax_class_metadata = $13::jsonb,
        active = $14,
        message = $15,
        metadata = $16::jsonb,
        private_metadata = $17::jsonb,
        updated_at = now()
    WHERE checkout_token = $1 AND option_id = $2 AND source = $3 AND is_valid = $4`

func optionArgs(checkoutID string, o domain.DeliveryOption) ([]any, error) {
	var taxID, taxName string
	var taxMeta map[string]string
	if o.TaxClass != nil {
		taxID, taxName, taxMeta = o.TaxClass.ID, o.TaxClass.Name, o.TaxClass.Metadata
	}
	taxMetaRaw, err := encodeStringMap(taxMeta)
	if err != nil {
		return nil, err
	}
	metaRaw, err := encodeStringMap(o.Metadata)
	if err != nil {
		return nil, err
	}
	privRaw, err := encodeStringMap(o.PrivateMetadata)
	if err != nil {
		return nil, err
	}
	return []any{
		checkoutID, o.ID, string(o.Source), o.Valid, o.Name, o.Description,
		o.Price.Amount.String(), o.Price.Currency, o.MinDeliveryDays, o.MaxDeliveryDays,
		taxID, taxName, taxMetaRaw,
		o.Active, o.Message, metaRaw, privRaw,
	}, nil
}

func storedKeys(ctx context.Context, q querier, checkoutID string) (map[optionKey]struct{}, error) {
	rows, err := q.Query(ctx, `
        SELECT option_id, source, is_valid
        FROM checkout_delivery_options
        WHERE checkout_token = $1
    `, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("list delivery option keys %q: %w", checkoutID, err)
	}
	defer rows.Close()

	out := make(map[optionKey]struct{})
	for rows.Next() {
		var k optionKey
		var source string
		if err := rows.Scan(&k.ID, &source, &k.Valid); err != nil {
			return nil, fmt.Errorf("scan delivery option key: %w", err)
		}
		k.Source = domain.DeliverySource(source)
		out[k] = struct{}{}
	}
	return out, rows.Err()
}

func listDeliveryOptions(ctx context.Context, q querier, checkoutID string) ([]domain.DeliveryOption, error) {
	rows, err := q.Query(ctx, `
        SELECT option_id, source, is_valid, name, description,
               price_amount::text, currency, min_days, max_days,
               tax_class_id, tax_class_name, tax_class_metadata,
               active, message, metadata, private_metadata
        FROM checkout_delivery_options
        WHERE checkout_token = $1
        ORDER BY price_amount, option_id
    `, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("list delivery options %q: %w", checkoutID, err)
	}
	defer rows.Close()

	var out []domain.DeliveryOption
	for rows.Next() {
		var (
			o                          domain.DeliveryOption
			source, amount, currency   string
			taxID, taxName             string
			taxMeta, meta, privateMeta []byte
		)
		if err := rows.Scan(&o.ID, &source, &o.Valid, &o.Name, &o.Description,
			&amount, &currency, &o.MinDeliveryDays, &o.MaxDeliveryDays,
			&taxID, &taxName, &taxMeta,
			&o.Active, &o.Message, &meta, &privateMeta); err != nil {
			return nil, fmt.Errorf("scan delivery option: %w", err)
		}
		o.Source = domain.DeliverySource(source)
		if o.Price, err = domain.NewMoney(amount, currency); err != nil {
			return nil, err
		}
		if taxID != "" {
			tm, err := decodeStringMap(taxMeta)
			if err != nil {
				return nil, err
			}
			o.TaxClass = &domain.TaxClass{ID: taxID, Name: taxName, Metadata: tm}
		}
		if o.Metadata, err = decodeStringMap(meta); err != nil {
			return nil, err
		}
		if o.PrivateMetadata, err = decodeStringMap(privateMeta); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
