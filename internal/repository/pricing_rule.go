package repository

import (
	"context"
	"fmt"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PricingRuleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPricingRuleRepo(db *dbpg.DB) *PricingRuleRepository {
	return &PricingRuleRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PricingRuleRepository) ListRules(ctx context.Context, courtID string) ([]domain.PricingRule, error) {
	query := `SELECT id, court_id, weekdays, start_minute, end_minute, price_per_hour, priority
              FROM pricing_rules
              WHERE court_id = $1
              ORDER BY priority, start_minute`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, courtID)
	if err != nil {
		return nil, fmt.Errorf("list pricing rules: %w", err)
	}
	defer rows.Close()

	var res []domain.PricingRule
	for rows.Next() {
		var (
			rule       domain.PricingRule
			weekdays   []int64
			start, end int
		)
		if err = rows.Scan(
			&rule.ID, &rule.CourtID, pq.Array(&weekdays), &start, &end,
			&rule.PricePerHour, &rule.Priority,
		); err != nil {
			return nil, fmt.Errorf("scan pricing rule: %w", err)
		}
		rule.Weekdays = toWeekdays(weekdays)
		rule.StartTime, rule.EndTime = domain.TimeOfDay(start), domain.TimeOfDay(end)
		res = append(res, rule)
	}

	return res, rows.Err()
}

func (r *PricingRuleRepository) ReplaceRules(ctx context.Context, courtID string, rules []domain.PricingRule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM pricing_rules WHERE court_id = $1`, courtID); err != nil {
		return fmt.Errorf("delete pricing rules: %w", err)
	}

	query := `INSERT INTO pricing_rules (id, court_id, weekdays, start_minute, end_minute, price_per_hour, priority)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, rule := range rules {
		if _, err = tx.ExecContext(
			ctx, query, rule.ID, courtID, pq.Array(fromWeekdays(rule.Weekdays)),
			int(rule.StartTime), int(rule.EndTime), rule.PricePerHour, rule.Priority,
		); err != nil {
			return fmt.Errorf("insert pricing rule: %w", err)
		}
	}

	return tx.Commit()
}
