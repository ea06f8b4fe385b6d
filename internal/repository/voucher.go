package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type VoucherRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVoucherRepo(db *dbpg.DB) *VoucherRepository {
	return &VoucherRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *VoucherRepository) CreateVoucher(ctx context.Context, v *domain.Voucher) error {
	query := `INSERT INTO vouchers (id, code, discount_type, discount_value, max_discount, min_order_total,
			                        valid_from, valid_to, usage_limit, per_user_limit, used_count, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Code, v.DiscountType, v.DiscountValue, v.MaxDiscount, v.MinOrderTotal,
		nullZeroTime(v.ValidFrom), nullZeroTime(v.ValidTo), v.UsageLimit, v.PerUserLimit,
		v.UsedCount, v.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: voucher code %q already exists", domain.ErrValidation, v.Code)
		}
		return fmt.Errorf("insert voucher: %w", err)
	}

	return nil
}

func (r *VoucherRepository) GetVoucher(ctx context.Context, id string) (*domain.Voucher, error) {
	query := `SELECT id, code, discount_type, discount_value, max_discount, min_order_total,
			         valid_from, valid_to, usage_limit, per_user_limit, used_count, created_at
			  FROM vouchers
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get voucher: %w", err)
	}

	var (
		v                  domain.Voucher
		validFrom, validTo sql.NullTime
	)
	if err = row.Scan(
		&v.ID, &v.Code, &v.DiscountType, &v.DiscountValue, &v.MaxDiscount, &v.MinOrderTotal,
		&validFrom, &validTo, &v.UsageLimit, &v.PerUserLimit, &v.UsedCount, &v.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("scan voucher: %w", err)
	}
	v.ValidFrom, v.ValidTo = validFrom.Time, validTo.Time

	return &v, nil
}

func (r *VoucherRepository) CountVoucherUsage(ctx context.Context, voucherID, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM voucher_usages WHERE voucher_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, voucherID, userID)
	if err != nil {
		return 0, fmt.Errorf("count voucher usage: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan voucher usage: %w", err)
	}
	return n, nil
}
