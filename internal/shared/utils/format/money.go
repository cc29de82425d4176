package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are stored in the minor currency unit (kobo) as integers so
// financial arithmetic never touches floating point. Formatting divides
// by 100, rounding to nearest, and renders the major unit with no
// decimal places.

var printer = message.NewPrinter(language.English)

// currencySymbols maps ISO 4217 codes to their display symbols.
var currencySymbols = map[string]string{
	"NGN": "₦",
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
}

var symbol = currencySymbols["NGN"]

// SetCurrency selects the display currency. Unknown codes keep the code
// itself as prefix.
func SetCurrency(code string) {
	if s, ok := currencySymbols[code]; ok {
		symbol = s
		return
	}
	symbol = code + " "
}

// Money renders a minor-unit amount as a grouped major-unit currency
// string with zero decimal digits, e.g. 5000000 -> "₦50,000". Sub-unit
// remainders round to the nearest whole unit.
func Money(minorUnits int64) string {
	half := int64(50)
	if minorUnits < 0 {
		half = -50
	}
	return printer.Sprintf("%s%d", symbol, (minorUnits+half)/100)
}

// ToMinorUnits converts a major-unit amount to minor units, rounding to
// the nearest integer.
func ToMinorUnits(majorUnits float64) int64 {
	return int64(math.Round(majorUnits * 100))
}

// ToMajorUnits converts minor units back to the major unit.
func ToMajorUnits(minorUnits int64) float64 {
	return float64(minorUnits) / 100
}
