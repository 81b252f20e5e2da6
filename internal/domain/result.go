package domain

import (
	"github.com/shopspring/decimal"
)

// CareCostBreakdown details the monthly care cost side of an estimate.
type CareCostBreakdown struct {
	PersonA            decimal.Decimal `json:"personA"`
	PersonB            decimal.Decimal `json:"personB"`
	SharedUnitDiscount decimal.Decimal `json:"sharedUnitDiscount"`
	Care               decimal.Decimal `json:"care"`      // PersonA + PersonB - SharedUnitDiscount
	HomeCarry          decimal.Decimal `json:"homeCarry"` // zero unless the home is kept
	Optional           decimal.Decimal `json:"optional"`
	Total              decimal.Decimal `json:"total"`
}

// IncomeBreakdown details the monthly household income side of an estimate.
type IncomeBreakdown struct {
	NonVA       decimal.Decimal `json:"nonVa"`
	VAPersonA   decimal.Decimal `json:"vaPersonA"`
	VAPersonB   decimal.Decimal `json:"vaPersonB"`
	LTCAddOns   decimal.Decimal `json:"ltcAddOns"`
	EquityDraws decimal.Decimal `json:"equityDraws"` // elected HECM/HELOC draw streams
	Total       decimal.Decimal `json:"total"`
}

// ResultRecord is the engine's output: a transient projection recomputed
// fresh on every call, with no persisted identity. MonthlyGap is floored at
// zero for display; the runway projection uses the unfloored gap internally.
type ResultRecord struct {
	Cost   CareCostBreakdown `json:"cost"`
	Income IncomeBreakdown   `json:"income"`

	TotalMonthlyCost  decimal.Decimal `json:"totalMonthlyCost"`
	HouseholdIncome   decimal.Decimal `json:"householdIncome"`
	MonthlyGap        decimal.Decimal `json:"monthlyGap"`
	TotalLiquidAssets decimal.Decimal `json:"totalLiquidAssets"`
	// YearsFunded is clamped to the configured display cap; when there is no
	// gap it reports the cap itself as the fully-funded sentinel.
	YearsFunded decimal.Decimal `json:"yearsFunded"`
}
