package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/seniorplan/carecalc/internal/domain"
)

// Engine orchestrates the valuation: household cost, income with the VA
// means test, and the asset runway. It is a pure function of its inputs:
// it holds only a read-only rate snapshot, never mutates the answers, and is
// safe for concurrent use. Hot rate reloads must construct a new Engine over
// the new snapshot rather than mutate this one.
type Engine struct {
	Rates     *domain.RateConfiguration
	Household *HouseholdCostCalculator
	Income    *IncomeCalculator
	Runway    *RunwayProjector
}

// NewEngine creates a valuation engine over an immutable rate snapshot.
func NewEngine(rates *domain.RateConfiguration) *Engine {
	return &Engine{
		Rates:     rates,
		Household: NewHouseholdCostCalculator(rates),
		Income:    NewIncomeCalculator(rates),
		Runway:    NewRunwayProjector(rates),
	}
}

// Calculate maps a flat answer map to a fresh result record. Cost is
// computed before income because the means test deducts the care cost as a
// medical expense. Bad or partial input degrades to zero components; this
// method never fails.
func (e *Engine) Calculate(answers domain.AnswerMap) domain.ResultRecord {
	cost := e.Household.MonthlyCost(answers)
	income := e.Income.MonthlyIncome(answers, cost.Care)

	rawGap := cost.Total.Sub(income.Total)
	assets := e.Runway.LiquidAssets(answers)

	return domain.ResultRecord{
		Cost:              cost,
		Income:            income,
		TotalMonthlyCost:  cost.Total,
		HouseholdIncome:   income.Total,
		MonthlyGap:        decimal.Max(decimal.Zero, rawGap).Round(2),
		TotalLiquidAssets: assets,
		YearsFunded:       e.Runway.YearsFunded(assets, rawGap),
	}
}
