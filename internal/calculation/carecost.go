package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/seniorplan/carecalc/internal/domain"
)

// CareCostCalculator prices monthly paid care for one person from the
// categorical answers and the rate tables.
//
// Conventions (applied consistently throughout):
//   - The in-home rate curve holds daily rates. The daily figure (interpolated
//     rate + in-home mobility adder + chronic adder) is multiplied by days per
//     month, then by the state multiplier.
//   - The memory-care multiplier scales the room price only, before the
//     care-level, mobility, and chronic adders are applied, exactly once.
type CareCostCalculator struct {
	Rates *domain.RateConfiguration
}

// NewCareCostCalculator creates a care cost calculator over a rate snapshot.
func NewCareCostCalculator(rates *domain.RateConfiguration) *CareCostCalculator {
	return &CareCostCalculator{Rates: rates}
}

// PersonCost calculates the monthly care cost for one person. A person who
// stays at home, or whose care setting is unset or unrecognized, costs zero.
func (cc *CareCostCalculator) PersonCost(answers domain.AnswerMap, p domain.Person) decimal.Decimal {
	setting := answers.CareSetting(p)
	stateMult := cc.Rates.StateMultiplier(answers.GetString("state"))
	chronicAdd := cc.Rates.ChronicAdder(answers.GetString(domain.Key("chronic", p)))

	switch {
	case setting == domain.CareSettingInHome:
		hours := answers.GetInt(domain.Key("hours", p), 0)
		days := answers.GetInt(domain.Key("days", p), cc.Rates.Settings.DaysPerMonthDefault)
		daily := InterpolateDailyRate(cc.Rates, hours).
			Add(cc.Rates.InHomeMobilityAdder(answers.GetString(domain.Key("mobility", p)))).
			Add(chronicAdd)
		return daily.Mul(decimal.NewFromInt(int64(days))).Mul(stateMult).Round(2)

	case setting.IsFacility():
		room := cc.Rates.RoomPrice(answers.GetString(domain.Key("room", p)))
		if setting == domain.CareSettingMemoryCare {
			room = room.Mul(cc.Rates.Settings.MemoryCareMultiplier)
		}
		base := room.
			Add(cc.Rates.CareLevelAdder(answers.GetString(domain.Key("care_level", p)))).
			Add(cc.Rates.FacilityMobilityAdder(answers.GetString(domain.Key("mobility", p)))).
			Add(chronicAdd)
		return base.Mul(stateMult).Round(2)
	}

	return decimal.Zero
}

// SharedUnitDiscount returns the flat monthly savings of one shared facility
// unit. It applies only when both persons are in a facility setting and the
// household opted to share one unit; the configured discount is scaled by the
// state multiplier like every other facility amount.
func (cc *CareCostCalculator) SharedUnitDiscount(answers domain.AnswerMap) decimal.Decimal {
	if !answers.GetBool("share_one_unit") {
		return decimal.Zero
	}
	if !answers.CareSetting(domain.PersonA).IsFacility() || !answers.CareSetting(domain.PersonB).IsFacility() {
		return decimal.Zero
	}
	stateMult := cc.Rates.StateMultiplier(answers.GetString("state"))
	return cc.Rates.Settings.SecondOccupantDiscount.Mul(stateMult).Round(2)
}

// InterpolateDailyRate looks up the daily in-home care rate for a given
// hours-per-day via piecewise-linear interpolation over the rate curve.
// Hours at or below the lowest sample clamp to that sample, hours at or above
// the highest clamp to the highest; an exact sample match returns the sample
// value with no interpolation error.
func InterpolateDailyRate(rates *domain.RateConfiguration, hours int) decimal.Decimal {
	samples := rates.CurveHours()
	if len(samples) == 0 {
		return decimal.Zero
	}
	if hours <= samples[0] {
		return rates.InHomeCareRates[samples[0]]
	}
	if hours >= samples[len(samples)-1] {
		return rates.InHomeCareRates[samples[len(samples)-1]]
	}

	// Find the bracketing samples. len >= 2 here because hours is strictly
	// between the first and last sample.
	lo, hi := samples[0], samples[len(samples)-1]
	for _, h := range samples {
		if h == hours {
			return rates.InHomeCareRates[h]
		}
		if h < hours && h > lo {
			lo = h
		}
		if h > hours && h < hi {
			hi = h
		}
	}

	loRate := rates.InHomeCareRates[lo]
	hiRate := rates.InHomeCareRates[hi]
	frac := decimal.NewFromInt(int64(hours - lo)).Div(decimal.NewFromInt(int64(hi - lo)))
	return loRate.Add(hiRate.Sub(loRate).Mul(frac))
}
