package calculation

import (
	"github.com/seniorplan/carecalc/internal/domain"
)

// homeCarryKeys are the recurring costs of keeping the home. They count only
// when the household answered that it intends to keep living in the home.
var homeCarryKeys = []string{
	"mortgage",
	"taxes",
	"insurance",
	"hoa",
	"utilities",
}

// optionalCostKeys is the fixed set of discretionary monthly line items.
// Anything absent from the answers contributes zero.
var optionalCostKeys = []string{
	"medicare",
	"dvh",
	"rx",
	"personal",
	"phone_internet",
	"life_insurance",
	"transportation",
	"family_travel",
	"auto",
	"auto_insurance",
	"debts",
	"pet_care",
	"entertainment",
	"other_monthly",
}

// HouseholdCostCalculator aggregates the full recurring monthly cost picture:
// care for both persons net of the shared-unit discount, home carry, and the
// optional line items.
type HouseholdCostCalculator struct {
	Rates    *domain.RateConfiguration
	CareCost *CareCostCalculator
}

// NewHouseholdCostCalculator creates a household cost calculator.
func NewHouseholdCostCalculator(rates *domain.RateConfiguration) *HouseholdCostCalculator {
	return &HouseholdCostCalculator{
		Rates:    rates,
		CareCost: NewCareCostCalculator(rates),
	}
}

// MonthlyCost calculates the household's recurring monthly cost breakdown.
func (hc *HouseholdCostCalculator) MonthlyCost(answers domain.AnswerMap) domain.CareCostBreakdown {
	breakdown := domain.CareCostBreakdown{
		PersonA:            hc.CareCost.PersonCost(answers, domain.PersonA),
		PersonB:            hc.CareCost.PersonCost(answers, domain.PersonB),
		SharedUnitDiscount: hc.CareCost.SharedUnitDiscount(answers),
	}
	breakdown.Care = breakdown.PersonA.Add(breakdown.PersonB).Sub(breakdown.SharedUnitDiscount).Round(2)

	if answers.GetBool("maintain_home") {
		breakdown.HomeCarry = answers.SumMoney(homeCarryKeys...).Round(2)
	}
	breakdown.Optional = answers.SumMoney(optionalCostKeys...).Round(2)

	breakdown.Total = breakdown.Care.Add(breakdown.HomeCarry).Add(breakdown.Optional).Round(2)
	return breakdown
}
