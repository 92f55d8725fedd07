package commons

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var maxGroupedAmount = decimal.NewFromInt(math.MaxInt64)

// FormatAmount renders an amount rounded to cents with ru-RU digit
// grouping, e.g. "250 000" or "1 000,5". Whole parts beyond int64 are
// returned ungrouped.
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole := rounded.Truncate(0)
	if whole.GreaterThan(maxGroupedAmount) {
		return sign + strings.Replace(rounded.String(), ".", ",", 1)
	}

	printer := message.NewPrinter(language.Russian)
	out := sign + printer.Sprint(number.Decimal(whole.IntPart()))

	cents := rounded.Sub(whole).Shift(2).IntPart()
	if cents == 0 {
		return out
	}
	return out + "," + strings.TrimRight(fmt.Sprintf("%02d", cents), "0")
}
