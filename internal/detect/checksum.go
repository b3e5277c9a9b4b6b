package detect

import "strings"

// Verhoeff tables, used by the 12-digit national ID scheme.
var (
	verhoeffD = [10][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
		{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
		{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
		{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
		{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
		{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
		{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
		{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}
	verhoeffP = [8][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
		{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
		{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
		{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
		{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
		{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
		{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
	}
)

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidAadhaar checks the Verhoeff checksum over the 12 digits. The first
// digit must be 2-9 per the issuing scheme.
func ValidAadhaar(s string) bool {
	d := digitsOnly(s)
	if len(d) != 12 || d[0] < '2' {
		return false
	}
	c := 0
	for i := 0; i < len(d); i++ {
		digit := int(d[len(d)-1-i] - '0')
		c = verhoeffD[c][verhoeffP[i%8][digit]]
	}
	return c == 0
}

// ValidLuhn checks the Luhn checksum over 13-19 digits.
func ValidLuhn(s string) bool {
	d := digitsOnly(s)
	if len(d) < 13 || len(d) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(d) - 1; i >= 0; i-- {
		n := int(d[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum%10 == 0
}

// ValidPAN confirms the structural grammar beyond the regex: the fourth
// letter encodes the holder type and comes from a fixed set.
func ValidPAN(s string) bool {
	if len(s) != 10 {
		return false
	}
	return strings.ContainsRune("PCHABGJLFT", rune(s[3]))
}

// ValidIFSC confirms the branch-code grammar: the fifth character is a
// reserved zero and the branch part is non-empty alphanumeric.
func ValidIFSC(s string) bool {
	if len(s) != 11 || s[4] != '0' {
		return false
	}
	for _, r := range s[5:] {
		if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
