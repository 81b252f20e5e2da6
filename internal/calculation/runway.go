package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/seniorplan/carecalc/internal/domain"
)

// liquidAssetKeys are the account balances counted toward the asset runway.
var liquidAssetKeys = []string{
	"cash_savings",
	"brokerage_taxable",
	"ira_traditional",
	"ira_roth",
	"ira_total",
	"employer_401k",
	"annuity_surrender",
}

// RunwayProjector estimates how long liquid assets cover an ongoing monthly
// shortfall.
type RunwayProjector struct {
	Rates *domain.RateConfiguration
}

// NewRunwayProjector creates a runway projector over a rate snapshot.
func NewRunwayProjector(rates *domain.RateConfiguration) *RunwayProjector {
	return &RunwayProjector{Rates: rates}
}

// LiquidAssets sums the enumerated account balances, plus home equity when
// the household chose to monetize the home, minus committed one-time
// expenditures such as home modifications. Never negative.
//
// When the home is being sold, net proceeds (sale price - mortgage payoff -
// selling costs, floored at zero) take precedence over a directly entered
// home-equity balance; the direct balance is the fallback when no sale
// figures were given.
func (rp *RunwayProjector) LiquidAssets(answers domain.AnswerMap) decimal.Decimal {
	total := answers.SumMoney(liquidAssetKeys...)

	if answers.GetBool("home_to_assets") {
		equity := answers.GetMoney("home_equity")
		if sale := answers.GetMoney("sell_price"); sale.IsPositive() {
			proceeds := sale.Sub(answers.GetMoney("mortgage_payoff")).Sub(answers.GetMoney("selling_fees"))
			equity = decimal.Max(decimal.Zero, proceeds)
		}
		total = total.Add(equity)
	}

	total = total.Sub(answers.GetMoney("home_modification_costs"))
	return decimal.Max(decimal.Zero, total).Round(2)
}

// YearsFunded projects the asset runway in years for a monthly gap. A gap of
// zero or less means assets are not being drawn down for ongoing costs; the
// display cap is returned as the fully-funded sentinel. Otherwise
// assets / (gap * 12), clamped to [0, cap].
func (rp *RunwayProjector) YearsFunded(assets, monthlyGap decimal.Decimal) decimal.Decimal {
	cap := rp.Rates.Settings.DisplayCapYearsFunded
	if monthlyGap.LessThanOrEqual(decimal.Zero) {
		return cap
	}
	years := assets.Div(monthlyGap.Mul(twelve))
	return decimal.Max(decimal.Zero, decimal.Min(cap, years)).Round(2)
}
