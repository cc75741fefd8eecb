package user

import "regexp"

// unformattedPhoneRe matches a bare international number: a leading plus
// followed only by digits, at least ten of them.
var unformattedPhoneRe = regexp.MustCompile(`^\+\d{10,}$`)

// FormatPhone projects a stored phone value into the canonical display form
// "+CC AA NNNN(N)-NNNN". Only bare digit strings with a leading plus and at
// least ten digits are reshaped; anything else (already formatted values,
// short numbers, arbitrary text, the empty string) is returned unchanged,
// which makes the function idempotent. This is a read-time projection: the
// stored value is never rewritten.
func FormatPhone(raw string) string {
	if !unformattedPhoneRe.MatchString(raw) {
		return raw
	}
	digits := raw[1:]
	country := digits[:2]
	area := digits[2:4]
	middle := digits[4 : len(digits)-4]
	last := digits[len(digits)-4:]
	return "+" + country + " " + area + " " + middle + "-" + last
}
