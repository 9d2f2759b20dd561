// Package currencyutils provides the amount parsing and ARS formatting used by
// the command line and the reports.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyARS is the only currency the API deals in
const CurrencyARS = "ARS"

var symbols = regexp.MustCompile(`ARS|\$|\s`)

var hundred = decimal.NewFromInt(100)

// ParseAmount parses a string representation of an amount into a decimal value
// It handles "$ 1.234,56", "1.234,56", "1234,56", "1234.56" and "1,234.56".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts a local amount string into a form decimal.NewFromString accepts.
// A lone comma is a decimal separator; when both separators appear the last
// one is the decimal separator. Dots are thousands separators when they
// appear more than once.
func StandardizeAmount(amountStr string) string {
	amountStr = symbols.ReplaceAllString(amountStr, "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// 1.234,56
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// 1,234.56
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case hasComma:
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	case strings.Count(amountStr, ".") > 1:
		amountStr = strings.ReplaceAll(amountStr, ".", "")
	}

	return amountStr
}

// FormatARS renders an amount the way the es-AR locale shows pesos:
// "$ 1.234,56", "-$ 50,00".
func FormatARS(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("$ ")
	b.WriteString(groupThousands(intPart, "."))
	b.WriteString(",")
	b.WriteString(fracPart)
	return b.String()
}

// FormatPercent renders a percentage with one decimal place: "12.5%".
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}

// Percentage returns part/whole*100 rounded to one decimal place, or zero
// when whole is zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(1)
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
