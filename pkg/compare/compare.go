// Package compare scores a back-office amount against the converter's value.
package compare

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Deviation is the outcome of comparing one row.
type Deviation struct {
	Percent float64
	Label   string
	Pass    bool
}

// Evaluate compares bo with conv. ok is false when either side is not a
// number or bo is zero; such rows carry no verdict.
//
// The percentage uses the smaller side as denominator: conv when bo is
// larger, bo when conv is larger.
func Evaluate(bo, conv string, threshold float64) (Deviation, bool) {
	b := ParseNumber(bo)
	c := ParseNumber(conv)
	if math.IsNaN(b) || math.IsNaN(c) || b == 0 {
		return Deviation{}, false
	}

	switch {
	case b > c:
		p := math.Abs((b - c) / c * 100)
		return Deviation{Percent: p, Label: "BO > Conv by " + FormatPercent(p) + "%", Pass: p <= threshold}, true
	case b < c:
		p := math.Abs((c - b) / b * 100)
		return Deviation{Percent: p, Label: "Conv > BO by " + FormatPercent(p) + "%", Pass: p <= threshold}, true
	}
	return Deviation{Percent: 0, Label: "Conv = BO", Pass: true}, true
}

// ParseNumber reads the longest leading decimal number of s after the first
// comma is turned into a dot. Leading whitespace is skipped. It returns NaN
// when s does not start with a number.
func ParseNumber(s string) float64 {
	s = strings.Replace(s, ",", ".", 1)
	s = strings.TrimLeftFunc(s, func(r rune) bool { return unicode.IsSpace(r) || r == '\ufeff' })

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}
	end := i

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// out of range: v is ±Inf or 0
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// FormatPercent renders p with two decimals, rounding exact halves up.
func FormatPercent(p float64) string {
	switch {
	case math.IsNaN(p):
		return "NaN"
	case math.IsInf(p, 1):
		return "Infinity"
	case math.IsInf(p, -1):
		return "-Infinity"
	}
	// exact halves at the second decimal are the odd multiples of 1/8
	if m := p * 8; m == math.Trunc(m) && math.Mod(m, 2) == 1 {
		p = math.Nextafter(p, math.Inf(1))
	}
	return fmt.Sprintf("%.2f", p)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
