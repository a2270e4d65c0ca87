// Package earnings holds the aggregation rules for gig-platform exports.
// Everything here is a pure function of its inputs; callers inject the
// current date and conversion rate.
package earnings

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// NumberOrZero reads the longest decimal literal at the start of s,
// ignoring leading whitespace, and returns it. Anything after the literal
// is ignored ("12.5 USD" is 12.5). Empty input, input with no leading
// literal, and non-finite values all yield 0. Bad numeric data is never
// an error.
func NumberOrZero(s string) float64 {
	literal := leadingNumber.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if literal == "" {
		return 0
	}

	v, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(v, 0) || v == 0 {
		// v == 0 also folds -0 into 0
		return 0
	}
	return v
}

var currencyNoise = strings.NewReplacer("£", "", "$", "", ",", "")

// AmountOrZero strips currency symbols and thousands separators before
// applying NumberOrZero.
func AmountOrZero(s string) float64 {
	return NumberOrZero(currencyNoise.Replace(s))
}
