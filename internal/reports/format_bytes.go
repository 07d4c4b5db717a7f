package reports

import (
	"math"
	"strconv"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders n in the largest 1024-based unit whose displayed value,
// after rounding to two decimals, stays below 1024. For example 1023 is
// "1023.00 B", 1024 is "1.00 KB" and 1048575 is "1.00 MB".
func FormatBytes(n int64) string {
	sign := ""
	value := float64(n)
	if value < 0 {
		sign = "-"
		value = -value
	}

	unit := 0
	for unit < len(byteUnits)-1 && roundCents(value) >= 1024 {
		value /= 1024
		unit++
	}

	return sign + strconv.FormatFloat(value, 'f', 2, 64) + " " + byteUnits[unit]
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
