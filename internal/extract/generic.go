package extract

import (
	"regexp"
	"strings"
)

// genericPairRe pairs any readable label text (the inner text of some tag)
// with a currency-suffixed number within the following 200 bytes.
var genericPairRe = regexp.MustCompile(`(?s)>\s*([^<>\s][^<>]{2,78}?[^<>\s])\s*<.{0,200}?([0-9][0-9,]{2,11})\s*원`)

var digitsOnlyRe = regexp.MustCompile(`^[\d\s.,%~\-/]+$`)

// GenericStrategy is the last-resort heuristic shared by every source: it
// pairs visible text with a nearby "12,345원" price. Navigation labels and
// promotional banners match it too, so callers pass a minimum price floor
// to suppress false positives. The floor is a per-source tunable.
func GenericStrategy(minPrice int) Strategy {
	return Strategy{
		Name:     "generic",
		MinPrice: minPrice,
		Run: func(markup string, cc Context) []Candidate {
			var cands []Candidate
			for _, idx := range genericPairRe.FindAllStringSubmatchIndex(markup, -1) {
				name := strings.TrimSpace(markup[idx[2]:idx[3]])
				if digitsOnlyRe.MatchString(name) {
					continue // bare numbers: counters, dates, dimensions
				}

				cand := Candidate{
					Name:  name,
					Price: ParsePrice(markup[idx[4]:idx[5]]),
				}
				EnrichFromWindow(&cand, Window(markup, idx[0], idx[1], 300), cc.Brands)
				cands = append(cands, cand)
			}
			return cands
		},
	}
}
