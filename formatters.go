package culture

import (
	"math"
	"strconv"
	"strings"
)

// Pattern runes: 'n' is the number, '-' the negative sign, '$' the currency
// symbol and '%' the percent symbol.
var (
	negativeNumberPatterns   = []string{"(n)", "-n", "- n", "n-", "n -"}
	positiveCurrencyPatterns = []string{"$n", "n$", "$ n", "n $"}
	negativeCurrencyPatterns = []string{
		"($n)", "-$n", "$-n", "$n-", "(n$)", "-n$", "n-$", "n$-",
		"-n $", "-$ n", "n $-", "$ n-", "$ -n", "n- $", "($ n)", "(n $)",
	}
	positivePercentPatterns = []string{"n %", "n%", "%n", "% n"}
	negativePercentPatterns = []string{
		"-n %", "-n%", "-%n", "%-n", "%n-", "n-%", "n%-", "-% n",
		"n %-", "% n-", "% -n", "n- %",
	}
)

// FormatNumber formats value with the separators and grouping of n. A
// negative decimals uses the culture's default digit count.
func FormatNumber(n NumberData, value float64, decimals int) string {
	if decimals < 0 {
		decimals = n.DecimalDigits
	}
	if special, ok := n.special(value); ok {
		return special
	}
	body := n.digits(math.Abs(value), decimals, n.DecimalSeparator, n.GroupSeparator, n.GroupSizes)
	if value < 0 {
		return n.apply(pattern(negativeNumberPatterns, n.NegativeNumberFormat, 1), body, "")
	}
	return body
}

// FormatCurrency formats value with the culture's currency symbol and
// patterns.
func FormatCurrency(n NumberData, value float64) string {
	if special, ok := n.special(value); ok {
		return special
	}
	body := n.digits(math.Abs(value), n.CurrencyDecimalDigits, n.CurrencyDecimalSeparator, n.CurrencyGroupSeparator, n.CurrencyGroupSizes)
	if value < 0 {
		return n.apply(pattern(negativeCurrencyPatterns, n.NegativeCurrencyFormat, 0), body, n.CurrencySymbol)
	}
	return n.apply(pattern(positiveCurrencyPatterns, n.PositiveCurrencyFormat, 0), body, n.CurrencySymbol)
}

// FormatPercent formats value, a ratio, as a percentage.
func FormatPercent(n NumberData, value float64, decimals int) string {
	if decimals < 0 {
		decimals = n.DecimalDigits
	}
	if special, ok := n.special(value); ok {
		return special
	}
	body := n.digits(math.Abs(value*100), decimals, n.DecimalSeparator, n.GroupSeparator, n.GroupSizes)
	if value < 0 {
		return n.apply(pattern(negativePercentPatterns, n.NegativePercentFormat, 0), body, "")
	}
	return n.apply(pattern(positivePercentPatterns, n.PositivePercentFormat, 0), body, "")
}

func pattern(patterns []string, index, fallback int) string {
	if index < 0 || index >= len(patterns) {
		return patterns[fallback]
	}
	return patterns[index]
}

func (n NumberData) special(value float64) (string, bool) {
	switch {
	case math.IsNaN(value):
		return n.NaNSymbol, true
	case math.IsInf(value, 1):
		return n.PositiveInfinitySymbol, true
	case math.IsInf(value, -1):
		return n.NegativeInfinitySymbol, true
	}
	return "", false
}

func (n NumberData) apply(p, body, symbol string) string {
	var b strings.Builder
	for _, r := range p {
		switch r {
		case 'n':
			b.WriteString(body)
		case '-':
			b.WriteString(n.NegativeSign)
		case '$':
			b.WriteString(symbol)
		case '%':
			b.WriteString(n.PercentSymbol)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (n NumberData) digits(value float64, decimals int, decimalSep, groupSep string, sizes []int) string {
	raw := strconv.FormatFloat(value, 'f', decimals, 64)
	integer, fraction, _ := strings.Cut(raw, ".")

	out := groupDigits(integer, sizes, groupSep)
	if fraction != "" {
		out += decimalSep + fraction
	}
	return n.substituteDigits(out)
}

// groupDigits splits digits from the right. The last size repeats unless it
// is 0, which leaves the remaining digits ungrouped.
func groupDigits(digits string, sizes []int, sep string) string {
	if len(sizes) == 0 {
		return digits
	}

	var groups []string
	i, index, size := len(digits), 0, sizes[0]
	for {
		if size <= 0 || i <= size {
			groups = append(groups, digits[:i])
			break
		}
		groups = append(groups, digits[i-size:i])
		i -= size
		if index < len(sizes)-1 {
			index++
			size = sizes[index]
		}
	}

	for l, r := 0, len(groups)-1; l < r; l, r = l+1, r-1 {
		groups[l], groups[r] = groups[r], groups[l]
	}
	return strings.Join(groups, sep)
}

const digitSubstitutionNative = 2

func (n NumberData) substituteDigits(s string) string {
	if n.DigitSubstitution != digitSubstitutionNative || len(n.NativeDigits) != 10 {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(n.NativeDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
