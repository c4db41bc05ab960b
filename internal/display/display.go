// Package display formats simulation numbers for presentation.
package display

import (
	"math"
	"strconv"
)

// Number renders value with exactly decimals digits after the point.
// Halves round away from zero.
func Number(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	shift := math.Pow(10, float64(decimals))
	rounded := math.Round(value*shift) / shift
	return strconv.FormatFloat(rounded, 'f', decimals, 64)
}

// Parse reads back a string produced by Number.
func Parse(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
