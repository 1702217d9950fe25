package util

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func RoundToTwo(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}
	return decimal.NewFromFloat(n).Round(2).InexactFloat64()
}

// ParseDecimal reads numbers encoded as strings, including a trailing "%".
func ParseDecimal(raw string) (float64, bool) {
	clean := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	if clean == "" || clean == "None" || clean == "-" {
		return 0, false
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

func ParseInt(raw string) (int64, bool) {
	f, ok := ParseDecimal(raw)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// ChangePercent is the percentage move from prev to price, 0 when prev is unknown.
func ChangePercent(price, prev float64) float64 {
	if prev <= 0 {
		return 0
	}
	return RoundToTwo((price - prev) / prev * 100)
}
