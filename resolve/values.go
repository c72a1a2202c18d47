package resolve

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// significant is the precision of computed percentages.
const significant = 6

// formatNumber renders v with at most six significant digits and no
// trailing zeros.
//
//	50        → "50"
//	33.333333 → "33.3333"
//	8.333333  → "8.33333"
func formatNumber(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	decimals := significant - 1 - int(math.Floor(math.Log10(math.Abs(v))))
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// fraction turns "N/M" into a percentage.
//
//	1/2 → "50%"
//	1/3 → "33.3333%"
func fraction(num, den string) (string, bool) {
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return "", false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return "", false
	}
	return formatNumber(n/d*100) + "%", true
}

var numeric = regexp.MustCompile(`^([+-]?)(\d*\.?\d+)([a-zA-Z%]*)$`)

// negate flips the sign of a plain number or dimension and wraps anything
// else in calc().
//
//	"1rem"       → "-1rem"
//	"-0.25rem"   → "0.25rem"
//	"0px"        → "0px"
//	"var(--gap)" → "calc(var(--gap) * -1)"
func negate(value string) string {
	m := numeric.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return "calc(" + value + " * -1)"
	}
	if f, err := strconv.ParseFloat(m[2], 64); err == nil && f == 0 {
		return value
	}
	if m[1] == "-" {
		return m[2] + m[3]
	}
	return "-" + m[2] + m[3]
}

// alphaPercent reads an opacity modifier as a percentage. Values up to 1
// are fractions, anything larger is already a percentage.
//
//	"0.5" → "50%", "35%" → "35%", "35" → "35%"
func alphaPercent(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if p, ok := strings.CutSuffix(value, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil || f < 0 || f > 100 {
			return "", false
		}
		return formatNumber(f) + "%", true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 || f > 100 {
		return "", false
	}
	if f <= 1 {
		f *= 100
	}
	return formatNumber(f) + "%", true
}

// withAlpha mixes color with transparent.
func withAlpha(color, percent string) string {
	return "color-mix(in srgb, " + color + " " + percent + ", transparent)"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
