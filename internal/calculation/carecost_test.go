package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/seniorplan/carecalc/internal/domain"
)

func TestInterpolateDailyRate_ExactSamples(t *testing.T) {
	rates := domain.DefaultRateConfiguration()

	// Every curve sample must come back exactly, with no interpolation error.
	for hours, want := range rates.InHomeCareRates {
		got := InterpolateDailyRate(rates, hours)
		if !got.Equal(want) {
			t.Errorf("hours=%d: expected %s, got %s", hours, want, got)
		}
	}
}

func TestInterpolateDailyRate_Midpoints(t *testing.T) {
	rates := domain.DefaultRateConfiguration()

	tests := []struct {
		hours int
		want  string
	}{
		{3, "170"}, // halfway between 120 and 220
		{5, "260"}, // halfway between 220 and 300
		{7, "340"},
		{9, "415"},
	}
	for _, tt := range tests {
		got := InterpolateDailyRate(rates, tt.hours)
		want, _ := decimal.NewFromString(tt.want)
		if !got.Equal(want) {
			t.Errorf("hours=%d: expected %s, got %s", tt.hours, tt.want, got)
		}
	}
}

func TestInterpolateDailyRate_BoundaryClamping(t *testing.T) {
	rates := domain.DefaultRateConfiguration()

	for _, hours := range []int{0, 1, 2} {
		if got := InterpolateDailyRate(rates, hours); !got.Equal(decimal.NewFromInt(120)) {
			t.Errorf("hours=%d: expected clamp to minimum sample 120, got %s", hours, got)
		}
	}
	for _, hours := range []int{10, 16, 24} {
		if got := InterpolateDailyRate(rates, hours); !got.Equal(decimal.NewFromInt(450)) {
			t.Errorf("hours=%d: expected clamp to maximum sample 450, got %s", hours, got)
		}
	}
}

func TestInterpolateDailyRate_Monotonic(t *testing.T) {
	rates := domain.DefaultRateConfiguration()

	prev := decimal.Zero
	for hours := 0; hours <= 24; hours++ {
		got := InterpolateDailyRate(rates, hours)
		if got.LessThan(prev) {
			t.Fatalf("daily rate decreased at hours=%d: %s -> %s", hours, prev, got)
		}
		prev = got
	}
}

func TestInterpolateDailyRate_EmptyCurve(t *testing.T) {
	rates := domain.DefaultRateConfiguration()
	rates.InHomeCareRates = map[int]decimal.Decimal{}

	if got := InterpolateDailyRate(rates, 8); !got.IsZero() {
		t.Errorf("expected zero for empty curve, got %s", got)
	}
}

func TestPersonCost_StayAtHomeAndUnset(t *testing.T) {
	cc := NewCareCostCalculator(domain.DefaultRateConfiguration())

	answers := domain.AnswerMap{"care_type_a": "stay_at_home"}
	if got := cc.PersonCost(answers, domain.PersonA); !got.IsZero() {
		t.Errorf("stay at home should cost zero, got %s", got)
	}
	if got := cc.PersonCost(domain.AnswerMap{}, domain.PersonA); !got.IsZero() {
		t.Errorf("unset care setting should cost zero, got %s", got)
	}
}

func TestPersonCost_InHome(t *testing.T) {
	cc := NewCareCostCalculator(domain.DefaultRateConfiguration())

	answers := domain.AnswerMap{
		"care_type_a": "in_home",
		"hours_a":     4,
		"days_a":      20,
		"mobility_a":  "Medium",
		"chronic_a":   "Some",
	}
	// (220 + 10 + 150) * 20 = 7600
	got := cc.PersonCost(answers, domain.PersonA)
	if !got.Equal(decimal.NewFromInt(7600)) {
		t.Errorf("expected 7600, got %s", got)
	}
}

func TestPersonCost_InHomeDefaultDays(t *testing.T) {
	cc := NewCareCostCalculator(domain.DefaultRateConfiguration())

	// days absent falls back to the configured default (20).
	answers := domain.AnswerMap{
		"care_type_a": "in_home",
		"hours_a":     4,
		"chronic_a":   "None",
	}
	got := cc.PersonCost(answers, domain.PersonA)
	if !got.Equal(decimal.NewFromInt(4400)) {
		t.Errorf("expected 220*20=4400, got %s", got)
	}
}

func TestPersonCost_AssistedLiving(t *testing.T) {
	cc := NewCareCostCalculator(domain.DefaultRateConfiguration())

	answers := domain.AnswerMap{
		"care_type_a":  "assisted_living",
		"room_a":       "Studio",
		"care_level_a": "Medium",
		"mobility_a":   "Walker",
		"chronic_a":    "None",
	}
	// 3500 + 600 + 150 + 0 = 4250
	got := cc.PersonCost(answers, domain.PersonA)
	if !got.Equal(decimal.NewFromInt(4250)) {
		t.Errorf("expected 4250, got %s", got)
	}
}

func TestPersonCost_MemoryCareMultiplierAppliedOnceToRoomOnly(t *testing.T) {
	cc := NewCareCostCalculator(domain.DefaultRateConfiguration())

	answers := domain.AnswerMap{
		"care_type_b":  "memory_care",
		"room_b":       "Studio",
		"care_level_b": "Medium",
		"mobility_b":   "Walker",
		"chronic_b":    "None",
	}
	// 3500*1.25 + 600 + 150 = 5125; the multiplier must not touch the adders.
	got := cc.PersonCost(answers, domain.PersonB)
	if !got.Equal(decimal.NewFromInt(5125)) {
		t.Errorf("expected 5125, got %s", got)
	}
}

func TestPersonCost_UnknownCategoricalDefaultsToZero(t *testing.T) {
	cc := NewCareCostCalculator(domain.DefaultRateConfiguration())

	base := domain.AnswerMap{
		"care_type_a":  "assisted_living",
		"room_a":       "Studio",
		"care_level_a": "Medium",
	}
	withUnknown := domain.AnswerMap{
		"care_type_a":  "assisted_living",
		"room_a":       "Studio",
		"care_level_a": "Medium",
		"mobility_a":   "Hoverboard",
		"chronic_a":    "???",
	}
	if a, b := cc.PersonCost(base, domain.PersonA), cc.PersonCost(withUnknown, domain.PersonA); !a.Equal(b) {
		t.Errorf("unknown categorical values must contribute zero: %s vs %s", a, b)
	}
}

func TestPersonCost_StateMultiplier(t *testing.T) {
	rates := domain.DefaultRateConfiguration()
	rates.StateMultipliers["Washington"] = decimal.NewFromFloat(1.2)
	cc := NewCareCostCalculator(rates)

	answers := domain.AnswerMap{
		"care_type_a":  "assisted_living",
		"room_a":       "Studio",
		"care_level_a": "Medium",
		"state":        "Washington",
	}
	// (3500 + 600) * 1.2 = 4920
	got := cc.PersonCost(answers, domain.PersonA)
	if !got.Equal(decimal.NewFromInt(4920)) {
		t.Errorf("expected 4920, got %s", got)
	}

	// Unknown state falls back to 1.0.
	answers["state"] = "Atlantis"
	got = cc.PersonCost(answers, domain.PersonA)
	if !got.Equal(decimal.NewFromInt(4100)) {
		t.Errorf("expected 4100 for unknown state, got %s", got)
	}
}

func TestSharedUnitDiscount_Gating(t *testing.T) {
	cc := NewCareCostCalculator(domain.DefaultRateConfiguration())
	discount := decimal.NewFromInt(1200)

	bothFacility := domain.AnswerMap{
		"care_type_a":    "assisted_living",
		"care_type_b":    "memory_care",
		"share_one_unit": true,
	}
	if got := cc.SharedUnitDiscount(bothFacility); !got.Equal(discount) {
		t.Errorf("expected discount %s, got %s", discount, got)
	}

	// Toggling the share flag off removes the discount exactly.
	noFlag := domain.AnswerMap{
		"care_type_a": "assisted_living",
		"care_type_b": "memory_care",
	}
	if got := cc.SharedUnitDiscount(noFlag); !got.IsZero() {
		t.Errorf("expected no discount without share flag, got %s", got)
	}

	// One person out of a facility removes it too.
	oneInHome := domain.AnswerMap{
		"care_type_a":    "assisted_living",
		"care_type_b":    "in_home",
		"share_one_unit": true,
	}
	if got := cc.SharedUnitDiscount(oneInHome); !got.IsZero() {
		t.Errorf("expected no discount with one person in-home, got %s", got)
	}
}
