package extract

import (
	"strconv"
	"strings"

	"materialhub/crawler/internal/domain"

	log "github.com/sirupsen/logrus"
)

// MaxNameLength bounds extracted product names; anything longer is cut.
const MaxNameLength = 100

// Context carries everything a strategy may need beyond the markup itself.
// Category and SubCategory come from the source's taxonomy entry for the
// fetched category id, never from the page.
type Context struct {
	Source      string
	Category    string
	SubCategory string
	BaseURL     string
	Brands      []string // known brand vocabulary for enrichment
}

// Candidate is one raw product found by a single strategy, before
// validation, truncation and deduplication.
type Candidate struct {
	Name     string
	Price    int
	Unit     string
	Size     string
	Brand    string
	ImageURL string
	URL      string
}

// Strategy is one pattern-matching heuristic applied to a page's markup.
// Strategies are tried in order until one yields a surviving candidate.
type Strategy struct {
	Name     string
	MinPrice int // candidates priced below this are dropped; 0 means any positive price
	Run      func(markup string, cc Context) []Candidate
}

// Pipeline runs an ordered fallback chain of strategies over one page.
type Pipeline struct {
	strategies []Strategy
}

func NewPipeline(strategies ...Strategy) *Pipeline {
	return &Pipeline{strategies: strategies}
}

// Extract returns the duplicate-free products recovered from one page's
// markup. Strategies run in order; the chain stops after the first strategy
// whose candidates survive validation. Candidates with a non-positive price
// or an empty truncated name are discarded silently, and repeated
// (name, price) pairs are suppressed. An empty result is not an error:
// downstream it is indistinguishable from a category with no listings.
func (p *Pipeline) Extract(markup string, cc Context) []domain.Product {
	seen := make(map[string]struct{})
	var products []domain.Product

	for _, st := range p.strategies {
		for _, cand := range st.Run(markup, cc) {
			name := TruncateName(cand.Name)
			if name == "" {
				continue
			}
			if cand.Price <= 0 || cand.Price < st.MinPrice {
				continue
			}

			key := dedupeKey(name, cand.Price)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			products = append(products, p.build(name, cand, cc))
		}

		if len(products) > 0 {
			log.Debugf("%s: strategy %q matched %d products", cc.Source, st.Name, len(products))
			break
		}
	}

	return products
}

func (p *Pipeline) build(name string, cand Candidate, cc Context) domain.Product {
	unit := cand.Unit
	if unit == "" {
		unit = ExtractUnit(name)
	}

	brand := cand.Brand
	if brand == "" {
		brand = FindBrand(name, cc.Brands)
	}

	return domain.Product{
		Name:        name,
		Price:       cand.Price,
		Unit:        unit,
		Size:        cand.Size,
		Brand:       brand,
		ImageURL:    AbsoluteURL(cc.BaseURL, cand.ImageURL),
		OriginalURL: AbsoluteURL(cc.BaseURL, cand.URL),
		Category:    cc.Category,
		SubCategory: cc.SubCategory,
		Source:      cc.Source,
	}
}

// Dedupe drops repeated (name, price) pairs across already-built product
// lists, preserving first-seen order. Used by paginated sources after
// concatenating per-page results.
func Dedupe(products []domain.Product) []domain.Product {
	seen := make(map[string]struct{}, len(products))
	out := products[:0]
	for _, p := range products {
		key := dedupeKey(p.Name, p.Price)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

func dedupeKey(name string, price int) string {
	return name + "\x00" + strconv.Itoa(price)
}

// TruncateName trims and collapses whitespace, then cuts to MaxNameLength runes.
func TruncateName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		runes = runes[:MaxNameLength]
	}
	return strings.TrimSpace(string(runes))
}

// AbsoluteURL resolves a page-relative href against the source's base URL.
func AbsoluteURL(baseURL, href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return strings.TrimSuffix(baseURL, "/") + href
}
