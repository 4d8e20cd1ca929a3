package selector

import "strings"

// Country-calling codes recognized when extracting a phone pattern. The
// longest match wins so that e.g. 359 is not read as a 3 followed by digits.
var (
	oneDigitCodes   = map[string]bool{"1": true, "7": true}
	twoDigitCodes   = map[string]bool{"44": true, "49": true, "33": true, "34": true, "39": true, "41": true, "43": true, "45": true, "46": true, "47": true, "48": true}
	threeDigitCodes = map[string]bool{"359": true, "371": true, "372": true, "373": true, "374": true, "375": true, "376": true, "377": true, "378": true}
)

// ExtractPattern returns the 4-digit fragment following a phone number's
// country-calling code. Bulk submissions sharing a prefix look machine
// generated, so filler selection diversifies on this fragment.
// Returns false when the number has fewer than 5 usable digits.
func ExtractPattern(phone string) (string, bool) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()
	if len(cleaned) < 5 {
		return "", false
	}

	skip := 0
	switch {
	case len(cleaned) >= 3 && threeDigitCodes[cleaned[:3]]:
		skip = 3
	case len(cleaned) >= 2 && twoDigitCodes[cleaned[:2]]:
		skip = 2
	case oneDigitCodes[cleaned[:1]]:
		skip = 1
	}

	if len(cleaned)-skip < 4 {
		return "", false
	}
	return cleaned[skip : skip+4], true
}
