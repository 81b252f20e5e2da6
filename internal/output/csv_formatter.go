package output

import (
	"bytes"
	"encoding/csv"

	"github.com/seniorplan/carecalc/internal/domain"
)

// CSVFormatter renders the estimate as a single-row CSV with a header.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.ResultRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"CarePersonA", "CarePersonB", "SharedUnitDiscount", "CareTotal",
		"HomeCarry", "OptionalCosts", "TotalMonthlyCost",
		"IncomeNonVA", "VAPersonA", "VAPersonB", "LTCAddOns", "EquityDraws", "HouseholdIncome",
		"MonthlyGap", "TotalLiquidAssets", "YearsFunded",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := []string{
		result.Cost.PersonA.StringFixed(2),
		result.Cost.PersonB.StringFixed(2),
		result.Cost.SharedUnitDiscount.StringFixed(2),
		result.Cost.Care.StringFixed(2),
		result.Cost.HomeCarry.StringFixed(2),
		result.Cost.Optional.StringFixed(2),
		result.TotalMonthlyCost.StringFixed(2),
		result.Income.NonVA.StringFixed(2),
		result.Income.VAPersonA.StringFixed(2),
		result.Income.VAPersonB.StringFixed(2),
		result.Income.LTCAddOns.StringFixed(2),
		result.Income.EquityDraws.StringFixed(2),
		result.HouseholdIncome.StringFixed(2),
		result.MonthlyGap.StringFixed(2),
		result.TotalLiquidAssets.StringFixed(2),
		result.YearsFunded.StringFixed(2),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
