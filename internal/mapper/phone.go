package mapper

import "strings"

// NormalizePhone reduces a dialed number to its E.164-like storage form,
// "+1" followed by the 10-digit national number. Formatting characters
// and a leading country "1" are dropped. The same normalized string is
// used for both lookup and write so the two always agree.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number := digits.String()
	if len(number) == 11 && number[0] == '1' {
		number = number[1:]
	}
	if number == "" {
		return ""
	}
	return "+1" + number
}
