package config

import (
	"fmt"
	"strconv"

	"github.com/fsnotify/fsnotify"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/seniorplan/carecalc/internal/domain"
)

// RatesLoader loads the rate configuration from a base file, optionally
// merged with an overlay file that adds or overrides rate entries. Loading
// validates the result and fails loudly on missing required tables; silently
// zero tables would make every subsequent estimate meaningless without any
// signal to the user.
type RatesLoader struct {
	Path        string
	OverlayPath string
	Logger      *zap.Logger
}

// NewRatesLoader creates a rates loader. overlayPath may be empty.
func NewRatesLoader(path, overlayPath string, logger *zap.Logger) *RatesLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RatesLoader{Path: path, OverlayPath: overlayPath, Logger: logger}
}

// Load reads, merges, and validates the rate configuration. With an empty
// Path the compiled-in defaults are returned.
func (rl *RatesLoader) Load() (*domain.RateConfiguration, error) {
	if rl.Path == "" {
		return domain.DefaultRateConfiguration(), nil
	}

	v := viper.New()
	v.SetConfigFile(rl.Path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rates file %s: %w", rl.Path, err)
	}
	if rl.OverlayPath != "" {
		v.SetConfigFile(rl.OverlayPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to merge overlay %s: %w", rl.OverlayPath, err)
		}
	}

	var raw rawRates
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode rates: %w", err)
	}

	rates, err := raw.toDomain()
	if err != nil {
		return nil, fmt.Errorf("invalid rates in %s: %w", rl.Path, err)
	}
	if err := ValidateRates(rates); err != nil {
		return nil, fmt.Errorf("rates validation failed for %s: %w", rl.Path, err)
	}

	rl.Logger.Info("loaded rate configuration",
		zap.String("path", rl.Path),
		zap.String("overlay", rl.OverlayPath),
		zap.Int("curve_samples", len(rates.InHomeCareRates)),
	)
	return rates, nil
}

// Watch re-loads the rates whenever the base file changes and hands each new
// immutable snapshot to onReload. A change that fails to load or validate is
// logged and skipped, keeping the previous snapshot in service.
func (rl *RatesLoader) Watch(onReload func(*domain.RateConfiguration)) {
	if rl.Path == "" {
		return
	}
	v := viper.New()
	v.SetConfigFile(rl.Path)
	if err := v.ReadInConfig(); err != nil {
		rl.Logger.Warn("rates watch disabled", zap.Error(err))
		return
	}
	v.OnConfigChange(func(fsnotify.Event) {
		rates, err := rl.Load()
		if err != nil {
			rl.Logger.Error("rates reload failed, keeping previous snapshot", zap.Error(err))
			return
		}
		rl.Logger.Info("rates reloaded", zap.String("path", rl.Path))
		onReload(rates)
	})
	v.WatchConfig()
}

// ValidateRates checks that the tables a meaningful estimate depends on are
// present and that the in-home curve is usable for interpolation.
func ValidateRates(rates *domain.RateConfiguration) error {
	if len(rates.RoomTypePrices) == 0 {
		return fmt.Errorf("room_type_prices table is required")
	}
	if len(rates.CareLevelAdders) == 0 {
		return fmt.Errorf("care_level_adders table is required")
	}
	if len(rates.MobilityAdders.Facility) == 0 || len(rates.MobilityAdders.InHome) == 0 {
		return fmt.Errorf("mobility_adders requires both facility and in_home tables")
	}
	if len(rates.ChronicAdders) == 0 {
		return fmt.Errorf("chronic_adders table is required")
	}
	if len(rates.InHomeCareRates) == 0 {
		return fmt.Errorf("in_home_care_rates requires at least one hour sample")
	}
	for h := range rates.InHomeCareRates {
		if h < 0 {
			return fmt.Errorf("in_home_care_rates hour sample %d must be non-negative", h)
		}
	}
	if len(rates.VACeilings) == 0 {
		return fmt.Errorf("va_ceilings table is required")
	}
	return nil
}

// rawRates mirrors the on-disk shape with plain floats; decimals are built
// once here so the engine never parses numbers again.
type rawRates struct {
	StateMultipliers map[string]float64 `mapstructure:"state_multipliers"`
	RoomTypePrices   map[string]float64 `mapstructure:"room_type_prices"`
	CareLevelAdders  map[string]float64 `mapstructure:"care_level_adders"`
	MobilityAdders   struct {
		Facility map[string]float64 `mapstructure:"facility"`
		InHome   map[string]float64 `mapstructure:"in_home"`
	} `mapstructure:"mobility_adders"`
	ChronicAdders   map[string]float64 `mapstructure:"chronic_adders"`
	InHomeCareRates map[string]float64 `mapstructure:"in_home_care_rates"`
	VACeilings      map[string]float64 `mapstructure:"va_ceilings"`
	Settings        struct {
		MemoryCareMultiplier   float64 `mapstructure:"memory_care_multiplier"`
		SecondOccupantDiscount float64 `mapstructure:"second_occupant_discount"`
		LTCMonthlyAdd          float64 `mapstructure:"ltc_monthly_add"`
		DisplayCapYearsFunded  float64 `mapstructure:"display_cap_years_funded"`
		DaysPerMonthDefault    int     `mapstructure:"days_per_month_default"`
	} `mapstructure:"settings"`
}

func (r *rawRates) toDomain() (*domain.RateConfiguration, error) {
	defaults := domain.DefaultRateConfiguration()

	curve := make(map[int]decimal.Decimal, len(r.InHomeCareRates))
	for k, rate := range r.InHomeCareRates {
		hours, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("in_home_care_rates key %q is not an hour count", k)
		}
		curve[hours] = decimal.NewFromFloat(rate)
	}

	ceilings := make(map[domain.VACategory]decimal.Decimal, len(r.VACeilings))
	for k, amount := range r.VACeilings {
		ceilings[domain.VACategory(k)] = decimal.NewFromFloat(amount)
	}

	rates := &domain.RateConfiguration{
		StateMultipliers: toDecimalMap(r.StateMultipliers),
		RoomTypePrices:   toDecimalMap(r.RoomTypePrices),
		CareLevelAdders:  toDecimalMap(r.CareLevelAdders),
		MobilityAdders: domain.MobilityAdders{
			Facility: toDecimalMap(r.MobilityAdders.Facility),
			InHome:   toDecimalMap(r.MobilityAdders.InHome),
		},
		ChronicAdders:   toDecimalMap(r.ChronicAdders),
		InHomeCareRates: curve,
		VACeilings:      ceilings,
		Settings: domain.RateSettings{
			MemoryCareMultiplier:   decimal.NewFromFloat(r.Settings.MemoryCareMultiplier),
			SecondOccupantDiscount: decimal.NewFromFloat(r.Settings.SecondOccupantDiscount),
			LTCMonthlyAdd:          decimal.NewFromFloat(r.Settings.LTCMonthlyAdd),
			DisplayCapYearsFunded:  decimal.NewFromFloat(r.Settings.DisplayCapYearsFunded),
			DaysPerMonthDefault:    r.Settings.DaysPerMonthDefault,
		},
	}

	// Unset scalars fall back to the compiled-in defaults so a sparse rates
	// file still prices sensibly.
	if len(rates.StateMultipliers) == 0 {
		rates.StateMultipliers = defaults.StateMultipliers
	}
	if rates.Settings.MemoryCareMultiplier.IsZero() {
		rates.Settings.MemoryCareMultiplier = defaults.Settings.MemoryCareMultiplier
	}
	if rates.Settings.DisplayCapYearsFunded.IsZero() {
		rates.Settings.DisplayCapYearsFunded = defaults.Settings.DisplayCapYearsFunded
	}
	if rates.Settings.DaysPerMonthDefault == 0 {
		rates.Settings.DaysPerMonthDefault = defaults.Settings.DaysPerMonthDefault
	}
	return rates, nil
}

func toDecimalMap(in map[string]float64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[k] = decimal.NewFromFloat(v)
	}
	return out
}
