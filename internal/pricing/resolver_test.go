package pricing

import (
	"testing"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(h, m int) domain.TimeOfDay { return domain.NewTimeOfDay(h, m) }

func standardRules() []domain.PricingRule {
	return []domain.PricingRule{
		{ID: "day", Weekdays: domain.WeekdaySet{2, 3, 4, 5, 6}, StartTime: tod(6, 0), EndTime: tod(17, 0), PricePerHour: 100_000, Priority: 1},
		{ID: "evening", Weekdays: domain.WeekdaySet{2, 3, 4, 5, 6, 7, 8}, StartTime: tod(17, 0), EndTime: tod(23, 0), PricePerHour: 150_000, Priority: 2},
	}
}

func TestResolve_CrossesRuleBoundary(t *testing.T) {
	// Tuesday is weekday code 3.
	res, err := Resolve(standardRules(), 3, tod(16, 0), tod(18, 0))

	require.NoError(t, err)
	assert.Equal(t, int64(250_000), res.Total)
	require.Len(t, res.Segments, 2)
	assert.Equal(t, "day", res.Segments[0].RuleID)
	assert.Equal(t, tod(17, 0), res.Segments[0].To)
	assert.Equal(t, "evening", res.Segments[1].RuleID)
}

func TestResolve_AdditiveAcrossBoundary(t *testing.T) {
	rules := []domain.PricingRule{
		{ID: "early", StartTime: tod(6, 0), EndTime: tod(8, 0), PricePerHour: 80_000, Priority: 1},
		{ID: "late", StartTime: tod(8, 0), EndTime: tod(22, 0), PricePerHour: 120_000, Priority: 1},
	}

	whole, err := Resolve(rules, 4, tod(7, 0), tod(10, 0))
	require.NoError(t, err)
	first, err := Resolve(rules, 4, tod(7, 0), tod(8, 0))
	require.NoError(t, err)
	second, err := Resolve(rules, 4, tod(8, 0), tod(10, 0))
	require.NoError(t, err)

	assert.Equal(t, first.Total+second.Total, whole.Total)
	assert.Equal(t, int64(320_000), whole.Total)
}

func TestResolve_ZeroLength(t *testing.T) {
	res, err := Resolve(nil, 3, tod(9, 0), tod(9, 0))

	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Segments)
}

func TestResolve_StartAfterEnd(t *testing.T) {
	_, err := Resolve(standardRules(), 3, tod(10, 0), tod(9, 0))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResolve_OutsideAllRules(t *testing.T) {
	_, err := Resolve(standardRules(), 3, tod(1, 0), tod(2, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRuleResolution)

	var rre *domain.RuleResolutionError
	require.ErrorAs(t, err, &rre)
	assert.Equal(t, tod(1, 0), rre.At)
}

func TestResolve_PartiallyUncovered(t *testing.T) {
	_, err := Resolve(standardRules(), 3, tod(22, 0), tod(24, 0))

	var rre *domain.RuleResolutionError
	require.ErrorAs(t, err, &rre)
	assert.Equal(t, tod(23, 0), rre.At)
}

func TestResolve_WeekdayFiltering(t *testing.T) {
	// Sunday (8) is only covered by the evening rule.
	_, err := Resolve(standardRules(), 8, tod(16, 0), tod(18, 0))
	assert.ErrorIs(t, err, domain.ErrRuleResolution)

	res, err := Resolve(standardRules(), 8, tod(17, 0), tod(19, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(300_000), res.Total)
}

func TestResolve_FractionalHours(t *testing.T) {
	rules := []domain.PricingRule{
		{ID: "a", StartTime: tod(0, 0), EndTime: tod(10, 20), PricePerHour: 100_000, Priority: 1},
		{ID: "b", StartTime: tod(10, 20), EndTime: tod(24, 0), PricePerHour: 70_000, Priority: 1},
	}

	// 20 min at 100k = 33,333.33 and 25 min at 70k = 29,166.66; rounded once: 62,500.
	res, err := Resolve(rules, 2, tod(10, 0), tod(10, 45))

	require.NoError(t, err)
	assert.Equal(t, int64(62_500), res.Total)
}

func TestResolve_PriorityOrderWins(t *testing.T) {
	rules := []domain.PricingRule{
		{ID: "base", StartTime: tod(6, 0), EndTime: tod(22, 0), PricePerHour: 100_000, Priority: 5},
		{ID: "peak", StartTime: tod(18, 0), EndTime: tod(20, 0), PricePerHour: 200_000, Priority: 1},
	}

	res, err := Resolve(rules, 5, tod(17, 0), tod(21, 0))

	require.NoError(t, err)
	// 1h base + 2h peak + 1h base.
	assert.Equal(t, int64(600_000), res.Total)
	require.Len(t, res.Segments, 3)
	assert.Equal(t, []string{"base", "peak", "base"}, []string{
		res.Segments[0].RuleID, res.Segments[1].RuleID, res.Segments[2].RuleID,
	})
}

func TestResolve_EqualPriorityOverlapRejected(t *testing.T) {
	rules := []domain.PricingRule{
		{ID: "a", StartTime: tod(6, 0), EndTime: tod(12, 0), PricePerHour: 100_000, Priority: 1},
		{ID: "b", StartTime: tod(10, 0), EndTime: tod(14, 0), PricePerHour: 120_000, Priority: 1},
	}

	_, err := Resolve(rules, 2, tod(9, 0), tod(11, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmbiguousRule)

	var are *domain.AmbiguousRuleError
	require.ErrorAs(t, err, &are)
	assert.Equal(t, tod(10, 0), are.At)
}

func TestResolve_EqualPriorityNotTouchedIsFine(t *testing.T) {
	rules := []domain.PricingRule{
		{ID: "a", StartTime: tod(6, 0), EndTime: tod(12, 0), PricePerHour: 100_000, Priority: 1},
		{ID: "b", StartTime: tod(10, 0), EndTime: tod(14, 0), PricePerHour: 120_000, Priority: 1},
	}

	res, err := Resolve(rules, 2, tod(6, 0), tod(8, 0))

	require.NoError(t, err)
	assert.Equal(t, int64(200_000), res.Total)
}

func TestValidateRules(t *testing.T) {
	require.NoError(t, ValidateRules(standardRules()))

	overlapping := []domain.PricingRule{
		{ID: "a", Weekdays: domain.WeekdaySet{2}, StartTime: tod(6, 0), EndTime: tod(12, 0), Priority: 1},
		{ID: "b", StartTime: tod(11, 0), EndTime: tod(14, 0), Priority: 1},
	}
	assert.ErrorIs(t, ValidateRules(overlapping), domain.ErrAmbiguousRule)

	disjointDays := []domain.PricingRule{
		{ID: "a", Weekdays: domain.WeekdaySet{2}, StartTime: tod(6, 0), EndTime: tod(12, 0), Priority: 1},
		{ID: "b", Weekdays: domain.WeekdaySet{3}, StartTime: tod(6, 0), EndTime: tod(12, 0), Priority: 1},
	}
	assert.NoError(t, ValidateRules(disjointDays))

	badRange := []domain.PricingRule{{ID: "x", StartTime: tod(12, 0), EndTime: tod(6, 0)}}
	assert.ErrorIs(t, ValidateRules(badRange), domain.ErrValidation)
}

func TestHoldAmount(t *testing.T) {
	assert.Equal(t, int64(250_000), HoldAmount(250_000, 0, domain.PaymentPlanFull, 30))
	assert.Equal(t, int64(75_000), HoldAmount(250_000, 0, domain.PaymentPlanDeposit, 30))
	assert.Equal(t, int64(60_000), HoldAmount(250_000, 50_000, domain.PaymentPlanDeposit, 30))
	// round((100,001) × 0.5) = 50,001 (half up)
	assert.Equal(t, int64(50_001), HoldAmount(100_001, 0, domain.PaymentPlanDeposit, 50))
	assert.Zero(t, HoldAmount(100_000, 150_000, domain.PaymentPlanDeposit, 30))
	assert.Zero(t, HoldAmount(100_000, 150_000, domain.PaymentPlanFull, 30))
}
