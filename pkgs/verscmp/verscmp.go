// Package verscmp compares version strings that are not necessarily
// semver, such as compiler versions like "12.2" or "13.2.Rel1".
package verscmp

// Compare compares two version strings and returns:
//
//	-1 if a < b
//	 0 if a == b
//	+1 if a > b
//
// Strings are split into alternating numeric and non-numeric segments.
// Numeric segments are compared by value (so "12.2" > "9.4"), other
// segments byte-wise. A version that is a prefix of another sorts first.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if isDigit(at(a, i)) && isDigit(at(b, j)) {
			ni, va := number(a, i)
			nj, vb := number(b, j)
			if c := cmpNumber(va, vb); c != 0 {
				return c
			}
			i, j = ni, nj
			continue
		}

		ca, cb := at(a, i), at(b, j)
		if ca == cb {
			if i < len(a) {
				i++
			}
			if j < len(b) {
				j++
			}
			continue
		}
		// Exhausted or diverging non-numeric portion. Digits sort after
		// end-of-string but before other characters, so "1.2" < "1.2.1"
		// and "1.2" < "1.2a".
		return cmpByte(ca, cb)
	}
	return 0
}

// number consumes a digit run starting at i and returns the index past it
// together with the run stripped of leading zeros.
func number(s string, i int) (next int, digits string) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits = s[start:i]
	for len(digits) > 1 && digits[0] == '0' {
		digits = digits[1:]
	}
	return i, digits
}

func cmpNumber(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpByte(a, b byte) int {
	oa, ob := order(a), order(b)
	switch {
	case oa < ob:
		return -1
	case oa > ob:
		return 1
	}
	return 0
}

// order ranks a byte for comparison: end-of-string first, then digits,
// then everything else by byte value.
func order(c byte) int {
	switch {
	case c == 0:
		return 0
	case isDigit(c):
		return 1
	default:
		return 2 + int(c)
	}
}

// at returns s[i], or 0 past the end.
func at(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
