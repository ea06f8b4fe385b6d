package service

import (
	"context"
	"fmt"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/pricing"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PricingService struct {
	repo   ports.PricingRuleRepo
	logger logger.Logger
}

func NewPricingService(repo ports.PricingRuleRepo, logger logger.Logger) *PricingService {
	return &PricingService{repo: repo, logger: logger}
}

func (s *PricingService) ListRules(ctx context.Context, courtID string) ([]domain.PricingRule, error) {
	return s.repo.ListRules(ctx, courtID)
}

// ReplaceRules swaps the whole rule set of a court. Equal-priority rules that overlap
// on a shared weekday are rejected.
func (s *PricingService) ReplaceRules(ctx context.Context, courtID string, rules []domain.PricingRule) ([]domain.PricingRule, error) {
	if courtID == "" {
		return nil, fmt.Errorf("%w: court_id is required", domain.ErrValidation)
	}

	for i := range rules {
		if rules[i].ID == "" {
			rules[i].ID = newID()
		}
		rules[i].CourtID = courtID
		rules[i].Weekdays = rules[i].Weekdays.Normalize()
	}

	if err := pricing.ValidateRules(rules); err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceRules(ctx, courtID, rules); err != nil {
		return nil, fmt.Errorf("replace pricing rules: %w", err)
	}

	s.logger.Info("pricing rules replaced",
		logger.String("court_id", courtID),
		logger.Int("rules", len(rules)),
	)

	return rules, nil
}
