package strutil

import "strconv"

// FormatFloat renders f locale-independently: "." as the decimal point, no
// thousands separator, no exponent notation, and no trailing ".0" for whole
// values. This is the representation numeric cell values are written with
// regardless of the host locale.
func FormatFloat(f float64) string {
	if f >= -1e15 && f <= 1e15 && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatInt renders i in base 10.
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
