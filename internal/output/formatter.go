package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/seniorplan/carecalc/internal/domain"
)

// Formatter defines a pluggable output formatter for a result record.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(result *domain.ResultRecord) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName fetches a registered formatter, nil if unknown.
func GetFormatterByName(name string) Formatter {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "table", "text":
		n = "console"
	}
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// FormatNames lists the registered formatter names.
func FormatNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}

// ConsoleFormatter renders the estimate as a human-readable summary table.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.ResultRecord) ([]byte, error) {
	var b strings.Builder

	b.WriteString("SENIOR CARE COST ESTIMATE\n")
	b.WriteString("=========================\n\n")

	b.WriteString("Monthly Costs\n")
	writeLine(&b, "Care (Person A)", result.Cost.PersonA)
	writeLine(&b, "Care (Person B)", result.Cost.PersonB)
	if result.Cost.SharedUnitDiscount.IsPositive() {
		writeLine(&b, "Shared unit discount", result.Cost.SharedUnitDiscount.Neg())
	}
	writeLine(&b, "Care total", result.Cost.Care)
	writeLine(&b, "Home carry", result.Cost.HomeCarry)
	writeLine(&b, "Optional costs", result.Cost.Optional)
	writeLine(&b, "Total monthly cost", result.TotalMonthlyCost)

	b.WriteString("\nMonthly Income\n")
	writeLine(&b, "Income (non-VA)", result.Income.NonVA)
	writeLine(&b, "VA benefit (Person A)", result.Income.VAPersonA)
	writeLine(&b, "VA benefit (Person B)", result.Income.VAPersonB)
	writeLine(&b, "LTC insurance add-ons", result.Income.LTCAddOns)
	writeLine(&b, "Home equity draws", result.Income.EquityDraws)
	writeLine(&b, "Household income", result.HouseholdIncome)

	b.WriteString("\nFunding\n")
	writeLine(&b, "Monthly gap", result.MonthlyGap)
	writeLine(&b, "Liquid assets", result.TotalLiquidAssets)
	fmt.Fprintf(&b, "  %-26s %s years\n", "Years funded", result.YearsFunded.StringFixed(2))

	return []byte(b.String()), nil
}

func writeLine(b *strings.Builder, label string, amount decimal.Decimal) {
	fmt.Fprintf(b, "  %-26s %s\n", label, Currency(amount.StringFixed(2)))
}

// Currency adds a dollar sign and thousands separators to a fixed-point
// amount string (e.g. "1234.56" -> "$1,234.56").
func Currency(fixed string) string {
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed
	decPart := "00"
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, decPart = fixed[:i], fixed[i+1:]
	}
	if len(intPart) > 3 {
		var sb strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				sb.WriteByte(',')
			}
			sb.WriteRune(digit)
		}
		intPart = sb.String()
	}
	out := "$" + intPart + "." + decPart
	if neg {
		out = "-" + out
	}
	return out
}
