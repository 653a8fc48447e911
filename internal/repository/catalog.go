package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"service-checkout-delivery/internal/domain"
)

// CatalogRepo reads the internal shipping catalog and warehouses.
type CatalogRepo struct{ db *pgxpool.Pool }

// NewCatalogRepo creates a new CatalogRepo.
func NewCatalogRepo(db *pgxpool.Pool) *CatalogRepo { return &CatalogRepo{db: db} }

// ShippingMethodsFor returns catalog methods of the channel whose zone covers country.
func (r *CatalogRepo) ShippingMethodsFor(ctx context.Context, channelID, country string) ([]domain.CatalogShippingMethod, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, description, type, price_amount::text, currency,
               min_order_amount::text, max_order_amount::text,
               min_weight_grams, max_weight_grams, min_days, max_days,
               tax_class_id, tax_class_name, tax_class_metadata,
               metadata, private_metadata
        FROM shipping_methods
        WHERE channel_id = $1
          AND $2 = ANY(countries)
        ORDER BY id
    `, channelID, country)
	if err != nil {
		return nil, fmt.Errorf("query shipping methods: %w", err)
	}
	defer rows.Close()

	var out []domain.CatalogShippingMethod
	for rows.Next() {
		var (
			m                          domain.CatalogShippingMethod
			typ, amount, currency      string
			minOrder, maxOrder         *string
			taxID, taxName             string
			taxMeta, meta, privateMeta []byte
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &typ, &amount, &currency,
			&minOrder, &maxOrder,
			&m.MinWeightGrams, &m.MaxWeightGrams, &m.MinDeliveryDays, &m.MaxDeliveryDays,
			&taxID, &taxName, &taxMeta,
			&meta, &privateMeta); err != nil {
			return nil, fmt.Errorf("scan shipping method: %w", err)
		}
		m.Type = domain.ShippingMethodType(typ)
		if m.Price, err = domain.NewMoney(amount, currency); err != nil {
			return nil, fmt.Errorf("shipping method %d: %w", m.ID, err)
		}
		if m.MinOrderAmount, err = parseOptionalDecimal(minOrder); err != nil {
			return nil, fmt.Errorf("shipping method %d: %w", m.ID, err)
		}
		if m.MaxOrderAmount, err = parseOptionalDecimal(maxOrder); err != nil {
			return nil, fmt.Errorf("shipping method %d: %w", m.ID, err)
		}
		if taxID != "" {
			tm, err := decodeStringMap(taxMeta)
			if err != nil {
				return nil, err
			}
			m.TaxClass = &domain.TaxClass{ID: taxID, Name: taxName, Metadata: tm}
		}
		if m.Metadata, err = decodeStringMap(meta); err != nil {
			return nil, err
		}
		if m.PrivateMetadata, err = decodeStringMap(privateMeta); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetCollectionPoint returns a click-and-collect warehouse or nil.
func (r *CatalogRepo) GetCollectionPoint(ctx context.Context, id string) (*domain.CollectionPoint, error) {
	var (
		cp      domain.CollectionPoint
		addrRaw []byte
	)
	err := r.db.QueryRow(ctx, `
        SELECT id, channel_id, name, address
        FROM warehouses
        WHERE id = $1 AND click_and_collect
    `, id).Scan(&cp.ID, &cp.ChannelID, &cp.Name, &addrRaw)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collection point %q: %w", id, err)
	}
	if err := json.Unmarshal(addrRaw, &cp.Address); err != nil {
		return nil, fmt.Errorf("decode warehouse address: %w", err)
	}
	return &cp, nil
}

// ListCollectionPoints returns click-and-collect warehouses of a channel.
func (r *CatalogRepo) ListCollectionPoints(ctx context.Context, channelID string) ([]domain.CollectionPoint, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, channel_id, name, address
        FROM warehouses
        WHERE channel_id = $1 AND click_and_collect
        ORDER BY name, id
    `, channelID)
	if err != nil {
		return nil, fmt.Errorf("list collection points: %w", err)
	}
	defer rows.Close()

	var out []domain.CollectionPoint
	for rows.Next() {
		var (
			cp      domain.CollectionPoint
			addrRaw []byte
		)
		if err := rows.Scan(&cp.ID, &cp.ChannelID, &cp.Name, &addrRaw); err != nil {
			return nil, fmt.Errorf("scan collection point: %w", err)
		}
		if err := json.Unmarshal(addrRaw, &cp.Address); err != nil {
			return nil, fmt.Errorf("decode warehouse address: %w", err)
		}
		out = append(out, cp)
	}
	return out, rows.Err()
}

func parseOptionalDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", *s, err)
	}
	return &d, nil
}
