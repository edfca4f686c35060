package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

type ServicePricingPostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IServicePricingRepository = (*ServicePricingPostgresRepository)(nil)

func NewServicePricingPostgresRepository(db *sqlx.DB) *ServicePricingPostgresRepository {
	return &ServicePricingPostgresRepository{db: db}
}

func (r *ServicePricingPostgresRepository) ListAll(ctx context.Context) ([]entities.ServicePrice, error) {
	rows := []entities.ServicePrice{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, service_id, tier_name, price
		FROM service_pricing
		ORDER BY service_id, tier_name
	`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ServicePricingPostgresRepository) Upsert(ctx context.Context, p entities.ServicePrice) (entities.ServicePrice, error) {
	var out entities.ServicePrice
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO service_pricing (service_id, tier_name, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (service_id, tier_name)
		DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()
		RETURNING id, service_id, tier_name, price
	`, p.ServiceID, p.TierName, p.Price)
	if err != nil {
		return entities.ServicePrice{}, err
	}
	return out, nil
}

const discountColumns = `id, code, discount_type, discount_value, active, created_at`

// DiscountCodePostgresRepository looks codes up case-insensitively.
type DiscountCodePostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IDiscountCodeRepository = (*DiscountCodePostgresRepository)(nil)

func NewDiscountCodePostgresRepository(db *sqlx.DB) *DiscountCodePostgresRepository {
	return &DiscountCodePostgresRepository{db: db}
}

func (r *DiscountCodePostgresRepository) GetByCode(ctx context.Context, code string) (entities.DiscountCode, error) {
	var d entities.DiscountCode
	err := r.db.GetContext(ctx, &d, `SELECT `+discountColumns+` FROM discount_codes WHERE UPPER(code) = UPPER($1) LIMIT 1`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.DiscountCode{}, nil
		}
		return entities.DiscountCode{}, err
	}
	return d, nil
}

func (r *DiscountCodePostgresRepository) List(ctx context.Context) ([]entities.DiscountCode, error) {
	codes := []entities.DiscountCode{}
	if err := r.db.SelectContext(ctx, &codes, `SELECT `+discountColumns+` FROM discount_codes ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *DiscountCodePostgresRepository) Create(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
	var out entities.DiscountCode
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO discount_codes (code, discount_type, discount_value, active)
		VALUES ($1, $2, $3, $4)
		RETURNING `+discountColumns,
		d.Code, d.DiscountType, d.DiscountValue, d.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.DiscountCode{}, fmt.Errorf("%w: %v", interfaces.ErrDuplicateKey, err)
		}
		return entities.DiscountCode{}, err
	}
	return out, nil
}

func (r *DiscountCodePostgresRepository) SetActive(ctx context.Context, code string, active bool) (entities.DiscountCode, error) {
	var out entities.DiscountCode
	err := r.db.GetContext(ctx, &out, `
		UPDATE discount_codes SET active = $1
		WHERE UPPER(code) = UPPER($2)
		RETURNING `+discountColumns,
		active, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.DiscountCode{}, nil
		}
		return entities.DiscountCode{}, err
	}
	return out, nil
}
