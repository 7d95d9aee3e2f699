// Package version compares dotted-numeric app version strings.
package version

import (
	"strconv"
	"strings"
)

// Compare returns -1, 0 or 1 ordering a relative to b. Versions are split
// on ".", each segment parsed as a non-negative integer (non-numeric
// segments count as 0), and the shorter sequence is padded with zeros, so
// "1.0" == "1.0.0" and "2.0" > "1.9.9".
func Compare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		av := segment(as, i)
		bv := segment(bs, i)
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v >= min under Compare ordering.
func AtLeast(v, min string) bool {
	return Compare(v, min) >= 0
}

func segment(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
