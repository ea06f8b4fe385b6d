package ports

import (
	"context"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

type PricingRuleRepo interface {
	ListRules(ctx context.Context, courtID string) ([]domain.PricingRule, error)
	ReplaceRules(ctx context.Context, courtID string, rules []domain.PricingRule) error
}
