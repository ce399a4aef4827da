package extract

import (
	"regexp"
	"strings"
)

// Window returns a bounded slice of markup around [start,end), radius bytes
// to each side. Keeps label searches local to one product block so a
// neighbouring product's brand or size never bleeds in.
func Window(markup string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(markup) {
		hi = len(markup)
	}
	return markup[lo:hi]
}

// Precompiled for the label set the enrichers use; read-only after init so
// concurrent crawls can share it.
var labelValueRes = map[string]*regexp.Regexp{
	"단위":  compileLabelRe("단위"),
	"규격":  compileLabelRe("규격"),
	"사이즈": compileLabelRe("사이즈"),
	"브랜드": compileLabelRe("브랜드"),
}

func compileLabelRe(label string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(label) + `\s*[:：]\s*(?:</[a-z]+>\s*<[a-z][^>]*>\s*)?([^\s<>,]{1,40})`)
}

func labelValueRe(label string) *regexp.Regexp {
	if re, ok := labelValueRes[label]; ok {
		return re
	}
	return compileLabelRe(label)
}

// LabelValue pulls the value following a "라벨: 값" style marker inside a
// bounded window of markup. Tolerates the value sitting in a sibling tag.
// Captures a single token; vendor labels put spaces only between fields.
// Returns "" when the label is absent.
func LabelValue(window, label string) string {
	m := labelValueRe(label).FindStringSubmatch(window)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// FindBrand returns the first known brand name appearing in the text.
func FindBrand(text string, vocab []string) string {
	for _, brand := range vocab {
		if strings.Contains(text, brand) {
			return brand
		}
	}
	return ""
}

// EnrichFromWindow fills a candidate's unit, size and brand from a bounded
// markup window around its identifier, best-effort. Explicit labels win;
// the unit falls back to inference from the name later in the pipeline.
func EnrichFromWindow(cand *Candidate, window string, brands []string) {
	if cand.Unit == "" {
		cand.Unit = LabelValue(window, "단위")
	}
	if cand.Size == "" {
		if size := LabelValue(window, "규격"); size != "" {
			cand.Size = size
		} else {
			cand.Size = LabelValue(window, "사이즈")
		}
	}
	if cand.Brand == "" {
		if brand := LabelValue(window, "브랜드"); brand != "" {
			cand.Brand = brand
		} else {
			cand.Brand = FindBrand(window, brands)
		}
	}
}
