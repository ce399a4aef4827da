package extract

import (
	"strconv"
	"strings"
)

// DefaultUnit is used when no unit hint appears anywhere in a product's text.
const DefaultUnit = "개"

// ParsePrice strips every non-digit rune and parses what remains as a
// base-10 integer. "45,000원" -> 45000, "1,200,000" -> 1200000. Returns 0
// when the text contains no digits. All observed sources render prices as
// digits with thousands separators followed by a currency marker, so no
// locale handling beyond digit-stripping is needed.
func ParsePrice(text string) int {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	price, err := strconv.Atoi(digits.String())
	if err != nil {
		// Overflow on absurdly long digit runs; treat as unparseable.
		return 0
	}
	return price
}

// unitPatterns are tested in order: specific indicators first so that a
// generic one never shadows them. Area before length ("㎡" text often
// carries a bare "m" too), packaging terms before the bare count marker.
var unitPatterns = []struct {
	indicators []string
	unit       string
}{
	{[]string{"㎡", "m²", "제곱미터", "헤베"}, "㎡"},
	{[]string{"평당", "평형", "/평"}, "평"},
	{[]string{"박스", "BOX", "box", "Box"}, "박스"},
	{[]string{"세트", "SET", "set"}, "세트"},
	{[]string{"롤", "ROLL", "roll"}, "롤"},
	{[]string{"팩", "PACK"}, "팩"},
	{[]string{"kg", "KG", "킬로"}, "kg"},
	{[]string{"리터", "ℓ"}, "L"},
	{[]string{"m당", "M당", "미터", "메타"}, "m"},
	{[]string{"장당", "/장", "장)"}, "장"},
	{[]string{"개입", "EA", "ea", "개당"}, "개"},
}

// ExtractUnit infers a measurement unit from free text, typically a product
// name. Fallback for listings without an explicit unit label.
func ExtractUnit(text string) string {
	for _, p := range unitPatterns {
		for _, indicator := range p.indicators {
			if strings.Contains(text, indicator) {
				return p.unit
			}
		}
	}
	return DefaultUnit
}
