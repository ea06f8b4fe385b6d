package service

import (
	"context"
	"fmt"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/pricing"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/schedule"
)

type pricedSlot struct {
	slot   schedule.Slot
	amount int64
}

type pricedRequest struct {
	slots []pricedSlot
	total int64
}

// price expands req and prices every slot from the court's stored rules.
func (s *BookingService) price(ctx context.Context, req *domain.BookingRequest) (*pricedRequest, error) {
	if req.CourtID == "" {
		return nil, fmt.Errorf("%w: court_id is required", domain.ErrValidation)
	}

	slots, err := s.expander.Expand(req)
	if err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.ListRules(ctx, req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("list pricing rules: %w", err)
	}

	res := &pricedRequest{slots: make([]pricedSlot, 0, len(slots))}
	for _, sl := range slots {
		br, err := pricing.Resolve(rules, sl.Weekday(), sl.StartTime, sl.EndTime)
		if err != nil {
			return nil, fmt.Errorf("price %s: %w", sl.Date.Format(domain.DateLayout), err)
		}
		res.slots = append(res.slots, pricedSlot{slot: sl, amount: br.Total})
		res.total += br.Total
	}

	return res, nil
}

func (p *pricedRequest) occurrenceQuotes() []domain.OccurrenceQuote {
	out := make([]domain.OccurrenceQuote, 0, len(p.slots))
	for _, ps := range p.slots {
		out = append(out, domain.OccurrenceQuote{
			Date:      ps.slot.Date,
			StartTime: ps.slot.StartTime,
			EndTime:   ps.slot.EndTime,
			Amount:    ps.amount,
		})
	}
	return out
}
