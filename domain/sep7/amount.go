package sep7

import (
	"strconv"
	"strings"
)

// StroopsPerUnit is the number of stroops in one unit of any Stellar asset
const StroopsPerUnit = 10_000_000

// FormatAmount renders an amount given in stroops as the canonical decimal
// string used in the amount parameter: at most seven fractional digits, no
// trailing zeros, no exponent. FormatAmount(100000000) is "10".
func FormatAmount(stroops int64) string {
	neg := stroops < 0
	u := uint64(stroops)
	if neg {
		u = -u
	}

	whole := strconv.FormatUint(u/StroopsPerUnit, 10)
	frac := strconv.FormatUint(u%StroopsPerUnit, 10)
	frac = strings.Repeat("0", 7-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")

	s := whole
	if frac != "" {
		s += "." + frac
	}
	if neg {
		s = "-" + s
	}
	return s
}
