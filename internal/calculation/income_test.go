package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seniorplan/carecalc/internal/domain"
)

func TestMonthlyIncome_NonVASources(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	answers := domain.AnswerMap{
		"ss_a":               1800,
		"ss_b":               1200,
		"pension_a":          950.50,
		"rental_income":      "$1,000.00",
		"dividends_interest": 49.50,
	}
	breakdown := ic.MonthlyIncome(answers, decimal.Zero)

	assert.True(t, breakdown.NonVA.Equal(decimal.NewFromInt(5000)),
		"expected 5000, got %s", breakdown.NonVA)
}

func TestVAAwards_PrecedenceNotSummedAcrossPersons(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	// Both persons flagged veteran_only: the household ceiling is the
	// veteran_only ceiling once, attributed to Person A, never doubled.
	answers := domain.AnswerMap{
		"va_cat_a": "veteran_only",
		"va_cat_b": "veteran_only",
	}
	breakdown := ic.MonthlyIncome(answers, decimal.NewFromInt(5000))

	require.True(t, breakdown.VAPersonA.Equal(decimal.NewFromFloat(2358.33)),
		"expected full veteran_only ceiling 2358.33, got %s", breakdown.VAPersonA)
	require.True(t, breakdown.VAPersonB.IsZero(),
		"expected zero for person B, got %s", breakdown.VAPersonB)
}

func TestVAAwards_PrecedenceOrder(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	// veteran_with_spouse on B outranks veteran_only on A.
	answers := domain.AnswerMap{
		"va_cat_a": "veteran_only",
		"va_cat_b": "veteran_with_spouse",
	}
	breakdown := ic.MonthlyIncome(answers, decimal.NewFromInt(5000))

	assert.True(t, breakdown.VAPersonA.IsZero(), "got %s", breakdown.VAPersonA)
	assert.True(t, breakdown.VAPersonB.Equal(decimal.NewFromFloat(2795.67)),
		"expected veteran_with_spouse ceiling, got %s", breakdown.VAPersonB)
}

func TestVAAwards_TwoVeteransSplitEvenly(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	answers := domain.AnswerMap{
		"va_cat_a": "two_veterans_married",
		"va_cat_b": "veteran_only",
	}
	breakdown := ic.MonthlyIncome(answers, decimal.NewFromInt(5000))

	half := decimal.NewFromFloat(1870.25)
	assert.True(t, breakdown.VAPersonA.Equal(half), "got %s", breakdown.VAPersonA)
	assert.True(t, breakdown.VAPersonB.Equal(half), "got %s", breakdown.VAPersonB)
}

func TestVAAwards_MedicalDeductionClampsToFullCeiling(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	// Deductible medical exceeds countable income: the inner clamp zeroes
	// the subtraction and the award is the full ceiling, not negative and
	// not capped below the ceiling.
	answers := domain.AnswerMap{
		"va_cat_a": "veteran_only",
		"ss_a":     2000,
		"medicare": 300,
		"rx":       200,
	}
	careCost := decimal.NewFromInt(4000) // 4500/mo medical vs 2000/mo income

	breakdown := ic.MonthlyIncome(answers, careCost)
	assert.True(t, breakdown.VAPersonA.Equal(decimal.NewFromFloat(2358.33)),
		"expected full ceiling, got %s", breakdown.VAPersonA)
}

func TestVAAwards_IncomeReducesAward(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	// No medical deductions, 1000/mo countable income: the annual award is
	// ceiling*12 - 12000, so the monthly award drops by exactly 1000.
	answers := domain.AnswerMap{
		"va_cat_a": "veteran_only",
		"ss_a":     1000,
	}
	breakdown := ic.MonthlyIncome(answers, decimal.Zero)

	want := decimal.NewFromFloat(1358.33)
	assert.True(t, breakdown.VAPersonA.Equal(want),
		"expected %s, got %s", want, breakdown.VAPersonA)
}

func TestVAAwards_NoCategoryIsInert(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	answers := domain.AnswerMap{
		"ss_a": 100,
		"rx":   5000,
	}
	breakdown := ic.MonthlyIncome(answers, decimal.NewFromInt(9000))

	assert.True(t, breakdown.VAPersonA.IsZero())
	assert.True(t, breakdown.VAPersonB.IsZero())
}

func TestVAAwards_ManualOverride(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	// Person A supplies an award-letter amount; Person B stays computed.
	answers := domain.AnswerMap{
		"va_cat_a":      "two_veterans_married",
		"va_cat_b":      "two_veterans_married",
		"va_override_a": true,
		"va_benefit_a":  1234.56,
	}
	breakdown := ic.MonthlyIncome(answers, decimal.NewFromInt(5000))

	assert.True(t, breakdown.VAPersonA.Equal(decimal.NewFromFloat(1234.56)),
		"override must replace the computed award, got %s", breakdown.VAPersonA)
	assert.True(t, breakdown.VAPersonB.Equal(decimal.NewFromFloat(1870.25)),
		"person B keeps the computed half, got %s", breakdown.VAPersonB)
}

func TestMonthlyIncome_LTCAddOns(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	answers := domain.AnswerMap{
		"ltc_insurance_a": "Yes",
		"ltc_insurance_b": true,
	}
	breakdown := ic.MonthlyIncome(answers, decimal.Zero)

	assert.True(t, breakdown.LTCAddOns.Equal(decimal.NewFromInt(3600)),
		"expected 1800 per flagged person, got %s", breakdown.LTCAddOns)
}

func TestMonthlyIncome_EquityDrawsRequireElection(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	// Draw amounts without the matching election flags count nothing.
	answers := domain.AnswerMap{
		"hecm_draw":  900,
		"heloc_draw": 400,
	}
	breakdown := ic.MonthlyIncome(answers, decimal.Zero)
	require.True(t, breakdown.EquityDraws.IsZero(), "got %s", breakdown.EquityDraws)

	answers["expect_hecm"] = true
	breakdown = ic.MonthlyIncome(answers, decimal.Zero)
	require.True(t, breakdown.EquityDraws.Equal(decimal.NewFromInt(900)), "got %s", breakdown.EquityDraws)

	answers["expect_heloc"] = true
	breakdown = ic.MonthlyIncome(answers, decimal.Zero)
	require.True(t, breakdown.EquityDraws.Equal(decimal.NewFromInt(1300)), "got %s", breakdown.EquityDraws)
}

func TestMonthlyIncome_TotalComposition(t *testing.T) {
	ic := NewIncomeCalculator(domain.DefaultRateConfiguration())

	answers := domain.AnswerMap{
		"ss_a":            2000,
		"va_cat_a":        "surviving_spouse",
		"ltc_insurance_a": true,
		"expect_hecm":     true,
		"hecm_draw":       500,
	}
	breakdown := ic.MonthlyIncome(answers, decimal.NewFromInt(6000))

	want := breakdown.NonVA.
		Add(breakdown.VAPersonA).
		Add(breakdown.VAPersonB).
		Add(breakdown.LTCAddOns).
		Add(breakdown.EquityDraws)
	assert.True(t, breakdown.Total.Equal(want),
		"total %s != component sum %s", breakdown.Total, want)
	// Care cost dwarfs income, so the award is the full surviving_spouse ceiling.
	assert.True(t, breakdown.VAPersonA.Equal(decimal.NewFromFloat(1515.58)),
		"got %s", breakdown.VAPersonA)
}
