package token

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders f in its shortest round-trip decimal form: no
// trailing zeros, integers without a fraction, and exponent notation only
// below 1e-6 or from 1e21 up. NaN and the infinities are spelled out.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + exp[:1] + digits
}

// ParseNumber converts text classified as IntScalar or DecimalScalar.
// Digit strings beyond the float64 range fail with strconv.ErrRange.
func ParseNumber(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return f, nil
}
