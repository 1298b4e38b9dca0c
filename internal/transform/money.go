package transform

import (
	"regexp"
	"strconv"
)

var (
	moneyStripPattern = regexp.MustCompile(`[,$\s]`)

	// Optional sign, at least one digit, at most one decimal point.
	// No exponent, no grouping. A bare sign or lone "." does not match.
	moneyNumberPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)$`)
)

// CleanMoney strips grouping commas, dollar signs and whitespace, then
// renders numeric text with exactly two decimal places. Text that is not
// strictly numeric after stripping passes through unchanged, so malformed
// amounts survive into the output instead of failing the file.
func CleanMoney(s string) string {
	s = moneyStripPattern.ReplaceAllString(s, "")
	if !moneyNumberPattern.MatchString(s) {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// RelabelCurrency maps a currency code through the schema's relabel table.
// Matching is exact and case sensitive; unknown codes pass through.
func RelabelCurrency(s string, names map[string]string) string {
	if relabeled, ok := names[s]; ok {
		return relabeled
	}
	return s
}

// PriceBlock assembles the combined 单价/总价/币制 output field. The currency
// is always appended after a single space; the unit/total separator depends
// on the configured style.
func PriceBlock(unitPrice, totalPrice, currency string, opts Options) string {
	return unitPrice + opts.priceSeparator() + totalPrice + " " + currency
}
