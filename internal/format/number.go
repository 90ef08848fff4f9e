package format

import "strings"

// FormatNumberString inserts thousands separators into a decimal integer
// string, preserving a leading minus sign. Non-numeric input is returned as is.
//
// Example: "7540113804746346429" -> "7,540,113,804,746,346,429".
func FormatNumberString(s string) string {
	sign := ""
	digits := s
	if strings.HasPrefix(s, "-") {
		sign, digits = "-", s[1:]
	}
	if len(digits) <= 3 || strings.IndexFunc(digits, notDigit) >= 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(digits)/3)
	b.WriteString(sign)
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}
