package service

import (
	"context"
	"testing"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingService_ReplaceRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rules, err := f.pricing.ReplaceRules(ctx, "court-d", []domain.PricingRule{
		{Weekdays: domain.WeekdaySet{8, 7, 7}, StartTime: tod(8, 0), EndTime: tod(22, 0), PricePerHour: 200_000, Priority: 1},
		{StartTime: tod(6, 0), EndTime: tod(22, 0), PricePerHour: 120_000, Priority: 2},
	})
	require.NoError(t, err)
	require.Len(t, rules, 2)
	for _, r := range rules {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "court-d", r.CourtID)
	}
	assert.Equal(t, domain.WeekdaySet{7, 8}, rules[0].Weekdays)

	stored, err := f.pricing.ListRules(ctx, "court-d")
	require.NoError(t, err)
	assert.Equal(t, rules, stored)
}

func TestPricingService_ReplaceRules_Ambiguous(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.pricing.ReplaceRules(ctx, court, []domain.PricingRule{
		{ID: "a", Weekdays: domain.WeekdaySet{2}, StartTime: tod(6, 0), EndTime: tod(12, 0), PricePerHour: 1, Priority: 1},
		{ID: "b", StartTime: tod(11, 0), EndTime: tod(14, 0), PricePerHour: 2, Priority: 1},
	})
	require.ErrorIs(t, err, domain.ErrAmbiguousRule)

	stored, err := f.pricing.ListRules(ctx, court)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Equal(t, "day", stored[0].ID)
}

func TestPricingService_ReplaceRules_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.pricing.ReplaceRules(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.pricing.ReplaceRules(context.Background(), court, []domain.PricingRule{
		{StartTime: tod(10, 0), EndTime: tod(9, 0), PricePerHour: 1},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
