// Package hangel crawls 한겔건재. The site serves old table markup with no
// stable classes, so both site-specific strategies are regex windows
// rather than selector walks.
package hangel

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"materialhub/crawler/internal/client"
	"materialhub/crawler/internal/domain"
	"materialhub/crawler/internal/extract"
	"materialhub/crawler/internal/source"
	"materialhub/crawler/internal/taxonomy"

	log "github.com/sirupsen/logrus"
)

var brandVocab = []string{
	"한화",
	"금강하이텍",
	"벽산",
	"KCC",
	"세진",
}

func DefaultConfig() source.Config {
	return source.Config{
		Name:    "hangel",
		BaseURL: "http://www.hangel.co.kr",
		Delay:   1000 * time.Millisecond,
		Headers: map[string]string{
			"Referer": "http://www.hangel.co.kr/",
		},
	}
}

type Adapter struct {
	cfg      source.Config
	fetcher  *client.Fetcher
	tax      taxonomy.Taxonomy
	pipeline *extract.Pipeline
}

func New(cfg source.Config) *Adapter {
	return &Adapter{
		cfg:     cfg,
		fetcher: client.New(cfg),
		tax:     newTaxonomy(),
		pipeline: extract.NewPipeline(
			itemClassStrategy(),
			labelPairStrategy(),
			extract.GenericStrategy(2000),
		),
	}
}

func (a *Adapter) Config() source.Config { return a.cfg }

func (a *Adapter) Categories() map[string]domain.Category { return a.tax.Categories() }

func (a *Adapter) ParentCategories() map[string][]string { return a.tax.ParentCategories() }

func (a *Adapter) ExpandCategories(ids []string) []string { return a.tax.Expand(ids) }

func (a *Adapter) CrawlCategory(ctx context.Context, id string) ([]domain.Product, error) {
	cat, ok := a.tax.Category(id)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", id)
	}

	url := a.cfg.BaseURL + cat.URLPath
	if cat.URLPath == "" {
		url = fmt.Sprintf("%s/product/list.html?cate_no=%s", a.cfg.BaseURL, cat.ID)
	}

	html, err := a.fetcher.GetHTML(ctx, url)
	if err != nil {
		log.Warnf("hangel: fetch failed for category %s (%s): %v", id, cat.Name, err)
		return nil, nil
	}

	return a.pipeline.Extract(html, extract.Context{
		Source:      a.cfg.Name,
		Category:    cat.TopCategory(),
		SubCategory: cat.SubCategory(),
		BaseURL:     a.cfg.BaseURL,
		Brands:      brandVocab,
	}), nil
}

// itemClassRe is the current template: item_name and item_price spans in
// one bounded block.
var itemClassRe = regexp.MustCompile(`(?s)class="item_name"[^>]*>([^<]+)<.{0,250}?class="item_price"[^>]*>([^<]*?[0-9][0-9,]{2,11})`)

func itemClassStrategy() extract.Strategy {
	return extract.Strategy{
		Name: "item_class",
		Run: func(markup string, cc extract.Context) []extract.Candidate {
			var cands []extract.Candidate
			for _, idx := range itemClassRe.FindAllStringSubmatchIndex(markup, -1) {
				cand := extract.Candidate{
					Name:  strings.TrimSpace(markup[idx[2]:idx[3]]),
					Price: extract.ParsePrice(markup[idx[4]:idx[5]]),
				}
				extract.EnrichFromWindow(&cand, extract.Window(markup, idx[0], idx[1], 400), cc.Brands)
				cands = append(cands, cand)
			}
			return cands
		},
	}
}

// labelPairRe is the legacy template still served on some categories:
// plain "상품명 : ..." and "판매가 : ...원" labels.
var labelPairRe = regexp.MustCompile(`(?s)상품명\s*[:：]\s*([^<\n]{2,80})<.{0,350}?판매가\s*[:：]\s*([0-9][0-9,]{2,11})\s*원`)

func labelPairStrategy() extract.Strategy {
	return extract.Strategy{
		Name: "label_pair",
		Run: func(markup string, cc extract.Context) []extract.Candidate {
			var cands []extract.Candidate
			for _, idx := range labelPairRe.FindAllStringSubmatchIndex(markup, -1) {
				cand := extract.Candidate{
					Name:  strings.TrimSpace(markup[idx[2]:idx[3]]),
					Price: extract.ParsePrice(markup[idx[4]:idx[5]]),
				}
				extract.EnrichFromWindow(&cand, extract.Window(markup, idx[0], idx[1], 400), cc.Brands)
				cands = append(cands, cand)
			}
			return cands
		},
	}
}
