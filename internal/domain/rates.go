package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// VACategory is a household VA Aid & Attendance category. The categories map
// to MAPR ceiling rows in the rate configuration.
type VACategory string

const (
	VACategoryNone               VACategory = "none"
	VACategoryVeteranOnly        VACategory = "veteran_only"
	VACategoryVeteranWithSpouse  VACategory = "veteran_with_spouse"
	VACategoryTwoVeteransMarried VACategory = "two_veterans_married"
	VACategorySurvivingSpouse    VACategory = "surviving_spouse"
)

// VACategoryPrecedence orders the categories a household can match, highest
// first. A married couple draws one combined benefit, so the first category
// matched across either person sets the ceiling for the whole household.
var VACategoryPrecedence = []VACategory{
	VACategoryTwoVeteransMarried,
	VACategoryVeteranWithSpouse,
	VACategoryVeteranOnly,
	VACategorySurvivingSpouse,
}

// MobilityAdders holds the mobility cost adders, split by care context:
// facility adders are monthly amounts, in-home adders are daily amounts
// applied on top of the interpolated daily rate.
type MobilityAdders struct {
	Facility map[string]decimal.Decimal `yaml:"facility" json:"facility" mapstructure:"facility"`
	InHome   map[string]decimal.Decimal `yaml:"in_home" json:"in_home" mapstructure:"in_home"`
}

// RateSettings are the scalar knobs of the rate configuration.
type RateSettings struct {
	// MemoryCareMultiplier scales the room price (only the room price,
	// before adders) when the care setting is memory care.
	MemoryCareMultiplier decimal.Decimal `yaml:"memory_care_multiplier" json:"memory_care_multiplier" mapstructure:"memory_care_multiplier"`
	// SecondOccupantDiscount is the flat monthly savings when both persons
	// share one facility unit.
	SecondOccupantDiscount decimal.Decimal `yaml:"second_occupant_discount" json:"second_occupant_discount" mapstructure:"second_occupant_discount"`
	// LTCMonthlyAdd is the flat monthly income attributed per person holding
	// a long-term-care insurance policy.
	LTCMonthlyAdd decimal.Decimal `yaml:"ltc_monthly_add" json:"ltc_monthly_add" mapstructure:"ltc_monthly_add"`
	// DisplayCapYearsFunded caps the reported asset runway, and doubles as
	// the "fully funded" sentinel when there is no monthly gap.
	DisplayCapYearsFunded decimal.Decimal `yaml:"display_cap_years_funded" json:"display_cap_years_funded" mapstructure:"display_cap_years_funded"`
	// DaysPerMonthDefault is used for in-home care when the days answer is
	// absent.
	DaysPerMonthDefault int `yaml:"days_per_month_default" json:"days_per_month_default" mapstructure:"days_per_month_default"`
}

// RateConfiguration is the immutable reference data the engine prices
// against. It is loaded once (optionally merged with an overlay) and never
// mutated afterwards; hot reloads publish a fresh instance.
//
// Every lookup degrades gracefully: missing monetary keys price as zero and
// missing multipliers as 1.0, so partial tables under-count rather than fail.
type RateConfiguration struct {
	StateMultipliers map[string]decimal.Decimal     `yaml:"state_multipliers" json:"state_multipliers" mapstructure:"state_multipliers"`
	RoomTypePrices   map[string]decimal.Decimal     `yaml:"room_type_prices" json:"room_type_prices" mapstructure:"room_type_prices"`
	CareLevelAdders  map[string]decimal.Decimal     `yaml:"care_level_adders" json:"care_level_adders" mapstructure:"care_level_adders"`
	MobilityAdders   MobilityAdders                 `yaml:"mobility_adders" json:"mobility_adders" mapstructure:"mobility_adders"`
	ChronicAdders    map[string]decimal.Decimal     `yaml:"chronic_adders" json:"chronic_adders" mapstructure:"chronic_adders"`
	InHomeCareRates  map[int]decimal.Decimal        `yaml:"in_home_care_rates" json:"in_home_care_rates" mapstructure:"in_home_care_rates"`
	VACeilings       map[VACategory]decimal.Decimal `yaml:"va_ceilings" json:"va_ceilings" mapstructure:"va_ceilings"`
	Settings         RateSettings                   `yaml:"settings" json:"settings" mapstructure:"settings"`
}

// lookupAmount resolves a categorical key against a rate table, degrading to
// zero when the key is unknown. Matching is case-insensitive because config
// sources (notably viper-merged files) do not preserve key casing.
func lookupAmount(table map[string]decimal.Decimal, key string) decimal.Decimal {
	if v, ok := table[key]; ok {
		return v
	}
	for k, v := range table {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return decimal.Zero
}

// StateMultiplier returns the regional cost multiplier for a state, or 1.0
// for unknown locations and "National".
func (rc *RateConfiguration) StateMultiplier(state string) decimal.Decimal {
	if m, ok := rc.StateMultipliers[state]; ok {
		return m
	}
	for k, m := range rc.StateMultipliers {
		if strings.EqualFold(k, state) {
			return m
		}
	}
	return decimal.NewFromInt(1)
}

// RoomPrice returns the monthly room price for a room type, zero if unknown.
func (rc *RateConfiguration) RoomPrice(roomType string) decimal.Decimal {
	return lookupAmount(rc.RoomTypePrices, roomType)
}

// CareLevelAdder returns the monthly care-level adder, zero if unknown.
func (rc *RateConfiguration) CareLevelAdder(level string) decimal.Decimal {
	return lookupAmount(rc.CareLevelAdders, level)
}

// FacilityMobilityAdder returns the monthly facility mobility adder.
func (rc *RateConfiguration) FacilityMobilityAdder(tier string) decimal.Decimal {
	return lookupAmount(rc.MobilityAdders.Facility, tier)
}

// InHomeMobilityAdder returns the daily in-home mobility adder.
func (rc *RateConfiguration) InHomeMobilityAdder(tier string) decimal.Decimal {
	return lookupAmount(rc.MobilityAdders.InHome, tier)
}

// ChronicAdder returns the chronic-condition adder, zero if unknown.
func (rc *RateConfiguration) ChronicAdder(tier string) decimal.Decimal {
	return lookupAmount(rc.ChronicAdders, tier)
}

// VACeilingMonthly returns the monthly MAPR ceiling for a category, zero if
// the category is unknown or "none".
func (rc *RateConfiguration) VACeilingMonthly(cat VACategory) decimal.Decimal {
	return rc.VACeilings[cat]
}

// CurveHours returns the in-home rate curve's hour samples sorted ascending.
func (rc *RateConfiguration) CurveHours() []int {
	hours := make([]int, 0, len(rc.InHomeCareRates))
	for h := range rc.InHomeCareRates {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// DefaultRateConfiguration returns the compiled-in national rate tables,
// used when no rates file is supplied.
func DefaultRateConfiguration() *RateConfiguration {
	return &RateConfiguration{
		StateMultipliers: map[string]decimal.Decimal{
			"National": decimal.NewFromInt(1),
		},
		RoomTypePrices: map[string]decimal.Decimal{
			"Studio":    decimal.NewFromInt(3500),
			"1 Bedroom": decimal.NewFromInt(4200),
			"Shared":    decimal.NewFromInt(3000),
		},
		CareLevelAdders: map[string]decimal.Decimal{
			"Low":    decimal.NewFromInt(200),
			"Medium": decimal.NewFromInt(600),
			"High":   decimal.NewFromInt(1200),
		},
		MobilityAdders: MobilityAdders{
			Facility: map[string]decimal.Decimal{
				"No support needed": decimal.Zero,
				"Walker":            decimal.NewFromInt(150),
				"Wheelchair":        decimal.NewFromInt(300),
			},
			InHome: map[string]decimal.Decimal{
				"Low":    decimal.Zero,
				"Medium": decimal.NewFromInt(10),
				"High":   decimal.NewFromInt(20),
			},
		},
		ChronicAdders: map[string]decimal.Decimal{
			"None":             decimal.Zero,
			"Some":             decimal.NewFromInt(150),
			"Multiple/Complex": decimal.NewFromInt(400),
		},
		InHomeCareRates: map[int]decimal.Decimal{
			2:  decimal.NewFromInt(120),
			4:  decimal.NewFromInt(220),
			6:  decimal.NewFromInt(300),
			8:  decimal.NewFromInt(380),
			10: decimal.NewFromInt(450),
		},
		VACeilings: map[VACategory]decimal.Decimal{
			VACategoryNone:               decimal.Zero,
			VACategoryVeteranOnly:        decimal.NewFromFloat(2358.33),
			VACategoryVeteranWithSpouse:  decimal.NewFromFloat(2795.67),
			VACategoryTwoVeteransMarried: decimal.NewFromFloat(3740.50),
			VACategorySurvivingSpouse:    decimal.NewFromFloat(1515.58),
		},
		Settings: RateSettings{
			MemoryCareMultiplier:   decimal.NewFromFloat(1.25),
			SecondOccupantDiscount: decimal.NewFromInt(1200),
			LTCMonthlyAdd:          decimal.NewFromInt(1800),
			DisplayCapYearsFunded:  decimal.NewFromInt(30),
			DaysPerMonthDefault:    20,
		},
	}
}
