package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/seniorplan/carecalc/internal/domain"
)

// nonVAIncomeKeys are the monthly income sources counted against the VA
// ceiling (everything except VA awards and elected equity draws).
var nonVAIncomeKeys = []string{
	"ss_a",
	"ss_b",
	"pension_a",
	"pension_b",
	"disability",
	"rental_income",
	"wages_part_time",
	"alimony_support",
	"dividends_interest",
	"other_income_monthly",
}

// deductibleMedicalKeys are the recurring medical costs (beyond the computed
// care cost itself) deducted from countable income in the means test.
var deductibleMedicalKeys = []string{
	"medicare",
	"dvh",
	"rx",
	"personal",
}

var twelve = decimal.NewFromInt(12)

// IncomeCalculator computes household monthly income, including the
// simplified VA Aid & Attendance means test. It is an approximation of the
// real entitlement rules, not a certified implementation: the annual award
// fills the gap between the household MAPR ceiling and countable income net
// of deductible medical expenses, clamped to [0, ceiling].
type IncomeCalculator struct {
	Rates *domain.RateConfiguration
}

// NewIncomeCalculator creates an income calculator over a rate snapshot.
func NewIncomeCalculator(rates *domain.RateConfiguration) *IncomeCalculator {
	return &IncomeCalculator{Rates: rates}
}

// MonthlyIncome calculates the household income breakdown. careCost is the
// already-computed monthly care cost (income depends on cost because paid
// care is the dominant deductible medical expense).
func (ic *IncomeCalculator) MonthlyIncome(answers domain.AnswerMap, careCost decimal.Decimal) domain.IncomeBreakdown {
	breakdown := domain.IncomeBreakdown{
		NonVA: answers.SumMoney(nonVAIncomeKeys...).Round(2),
	}

	breakdown.VAPersonA, breakdown.VAPersonB = ic.vaAwards(answers, breakdown.NonVA, careCost)

	if answers.GetBool("ltc_insurance_a") {
		breakdown.LTCAddOns = breakdown.LTCAddOns.Add(ic.Rates.Settings.LTCMonthlyAdd)
	}
	if answers.GetBool("ltc_insurance_b") {
		breakdown.LTCAddOns = breakdown.LTCAddOns.Add(ic.Rates.Settings.LTCMonthlyAdd)
	}

	if answers.GetBool("expect_hecm") {
		breakdown.EquityDraws = breakdown.EquityDraws.Add(answers.GetMoney("hecm_draw"))
	}
	if answers.GetBool("expect_heloc") {
		breakdown.EquityDraws = breakdown.EquityDraws.Add(answers.GetMoney("heloc_draw"))
	}
	breakdown.EquityDraws = breakdown.EquityDraws.Round(2)

	breakdown.Total = breakdown.NonVA.
		Add(breakdown.VAPersonA).
		Add(breakdown.VAPersonB).
		Add(breakdown.LTCAddOns).
		Add(breakdown.EquityDraws).
		Round(2)
	return breakdown
}

// vaAwards runs the household means test and splits the monthly award across
// the two persons. A manual override (an amount from an official award
// letter) replaces the computed value for that person only.
func (ic *IncomeCalculator) vaAwards(answers domain.AnswerMap, nonVAMonthly, careCost decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	catA := domain.VACategory(answers.GetString(domain.Key("va_cat", domain.PersonA)))
	catB := domain.VACategory(answers.GetString(domain.Key("va_cat", domain.PersonB)))

	matched, matchedPerson := matchVACategory(catA, catB)
	monthlyAward := ic.meansTestedAward(answers, matched, nonVAMonthly, careCost)

	var vaA, vaB decimal.Decimal
	switch {
	case matched == domain.VACategoryTwoVeteransMarried:
		// One combined household benefit, attributed half to each person.
		half := monthlyAward.Div(decimal.NewFromInt(2)).Round(2)
		vaA, vaB = half, half
	case matchedPerson == domain.PersonA:
		vaA = monthlyAward
	case matchedPerson == domain.PersonB:
		vaB = monthlyAward
	}

	if answers.GetBool("va_override_a") {
		vaA = answers.GetMoney("va_benefit_a").Round(2)
	}
	if answers.GetBool("va_override_b") {
		vaB = answers.GetMoney("va_benefit_b").Round(2)
	}
	return vaA, vaB
}

// meansTestedAward computes the monthly award for the matched household
// category: max(0, annual ceiling - max(0, countable income - deductible
// medical)) / 12. With no matched category the ceiling is zero and the award
// is inert regardless of the income and medical figures.
func (ic *IncomeCalculator) meansTestedAward(answers domain.AnswerMap, matched domain.VACategory, nonVAMonthly, careCost decimal.Decimal) decimal.Decimal {
	ceilingAnnual := ic.Rates.VACeilingMonthly(matched).Mul(twelve)

	countableAnnual := nonVAMonthly.Mul(twelve)
	deductibleAnnual := careCost.Add(answers.SumMoney(deductibleMedicalKeys...)).Mul(twelve)

	netCountable := decimal.Max(decimal.Zero, countableAnnual.Sub(deductibleAnnual))
	annualAward := decimal.Max(decimal.Zero, ceilingAnnual.Sub(netCountable))
	return annualAward.Div(twelve).Round(2)
}

// matchVACategory evaluates both persons' declared categories against the
// fixed precedence order and returns the first match plus the person whose
// declaration matched (Person A wins ties, mirroring the household rule that
// a couple draws one benefit).
func matchVACategory(catA, catB domain.VACategory) (domain.VACategory, domain.Person) {
	for _, cat := range domain.VACategoryPrecedence {
		if catA == cat {
			return cat, domain.PersonA
		}
		if catB == cat {
			return cat, domain.PersonB
		}
	}
	return domain.VACategoryNone, ""
}
