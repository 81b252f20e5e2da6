package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AnswerMap is the flat key-value collection of questionnaire answers the
// form layer accumulates across steps. The engine only ever reads it; every
// key is optional and resolves to a sensible default when absent or
// unparseable. Values may arrive as numbers, booleans, or strings (including
// currency-formatted strings such as "$1,234.56").
type AnswerMap map[string]any

// Person identifies one of the two symmetric answer slots.
type Person string

const (
	PersonA Person = "a"
	PersonB Person = "b"
)

// Key returns the per-person answer key for a base field name,
// e.g. Key("care_type", PersonA) == "care_type_a".
func Key(base string, p Person) string {
	return base + "_" + string(p)
}

// CareSetting is the care arrangement chosen for one person.
type CareSetting string

const (
	CareSettingNone           CareSetting = ""
	CareSettingStayAtHome     CareSetting = "stay_at_home"
	CareSettingInHome         CareSetting = "in_home"
	CareSettingAssistedLiving CareSetting = "assisted_living"
	CareSettingMemoryCare     CareSetting = "memory_care"
)

// IsFacility reports whether the setting places the person in a residential
// facility (assisted living or memory care).
func (cs CareSetting) IsFacility() bool {
	return cs == CareSettingAssistedLiving || cs == CareSettingMemoryCare
}

// CareSetting returns the care setting answered for a person. Unknown values
// fall through unchanged; the cost calculator treats anything that is not a
// recognized paid-care setting as zero cost.
func (a AnswerMap) CareSetting(p Person) CareSetting {
	return CareSetting(a.GetString(Key("care_type", p)))
}

// GetString returns the answer as a trimmed string, or "" when absent.
func (a AnswerMap) GetString(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		return strings.TrimSpace(decimalFromAny(v, decimal.Zero).String())
	}
}

// GetBool returns the answer interpreted as a boolean. Accepted truthy forms
// are true, "yes", "y", "true", and "1" (case-insensitive); everything else,
// including a missing key, is false.
func (a AnswerMap) GetBool(key string) bool {
	v, ok := a[key]
	if !ok || v == nil {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case int:
		return b != 0
	case float64:
		return b != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "y", "true", "1":
			return true
		}
	}
	return false
}

// GetInt returns the answer as an integer, or def when absent or unparseable.
func (a AnswerMap) GetInt(key string, def int) int {
	v, ok := a[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return def
		}
		if parsed, err := strconv.Atoi(s); err == nil {
			return parsed
		}
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			return int(parsed)
		}
	}
	return def
}

// GetMoney returns the answer as a monetary amount, defaulting to zero when
// the key is absent or the value cannot be parsed. Currency-formatted strings
// are sanitized before parsing.
func (a AnswerMap) GetMoney(key string) decimal.Decimal {
	v, ok := a[key]
	if !ok || v == nil {
		return decimal.Zero
	}
	return decimalFromAny(v, decimal.Zero)
}

// SumMoney returns the sum of the monetary answers for the given keys.
// Missing keys contribute zero.
func (a AnswerMap) SumMoney(keys ...string) decimal.Decimal {
	total := decimal.Zero
	for _, k := range keys {
		total = total.Add(a.GetMoney(k))
	}
	return total
}

// SanitizeCurrency strips grouping separators, currency symbols, and
// surrounding whitespace from a currency-like string ("$1,234.56" becomes
// "1234.56"). Parenthesized amounts are treated as negative.
func SanitizeCurrency(s string) string {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.TrimSpace(s)
	if negative && s != "" && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// ParseMoney parses a currency-like string, falling back to def when the
// sanitized form still fails to parse. It never returns an error.
func ParseMoney(s string, def decimal.Decimal) decimal.Decimal {
	cleaned := SanitizeCurrency(s)
	if cleaned == "" {
		return def
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return def
	}
	return d
}

func decimalFromAny(v any, def decimal.Decimal) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		return ParseMoney(n, def)
	}
	return def
}
