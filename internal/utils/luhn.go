package utils

// IsValidLuhn checks a card number with the Luhn algorithm. Spaces and
// dashes used to group digits are ignored; any other non-digit fails.
func IsValidLuhn(s string) bool {
	var sum, digits int
	double := false

	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c == ' ' || c == '-' {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}

		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		digits++
		double = !double
	}

	return digits > 0 && sum%10 == 0
}
