// Package ianmall crawls 이안몰. Paginated listings with a "현재 / 전체"
// page indicator; products anchor on goods_view.php goodsNo ids.
package ianmall

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"materialhub/crawler/internal/client"
	"materialhub/crawler/internal/domain"
	"materialhub/crawler/internal/extract"
	"materialhub/crawler/internal/source"
	"materialhub/crawler/internal/taxonomy"

	log "github.com/sirupsen/logrus"
)

var brandVocab = []string{
	"이누스",
	"대림바스",
	"아메리칸스탠다드",
	"로얄앤컴퍼니",
	"새턴바스",
}

func DefaultConfig() source.Config {
	return source.Config{
		Name:    "ianmall",
		BaseURL: "https://www.ianmall.co.kr",
		Delay:   700 * time.Millisecond,
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
			goodsListStrategy(),
			goodsNoStrategy(),
			extract.GenericStrategy(1000),
		),
	}
}

func (a *Adapter) Config() source.Config { return a.cfg }

func (a *Adapter) Categories() map[string]domain.Category { return a.tax.Categories() }

func (a *Adapter) ParentCategories() map[string][]string { return a.tax.ParentCategories() }

func (a *Adapter) ExpandCategories(ids []string) []string { return a.tax.Expand(ids) }

// pageIndicatorRe reads the "1 / 7" pager summary. Anchored on the pager's
// class so a "600/600" tile size in a product name never counts as pages.
var pageIndicatorRe = regexp.MustCompile(`class="paging_num"[^>]*>\s*(\d+)\s*/\s*(\d+)`)

func (a *Adapter) CrawlCategory(ctx context.Context, id string) ([]domain.Product, error) {
	cat, ok := a.tax.Category(id)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", id)
	}

	cc := extract.Context{
		Source:      a.cfg.Name,
		Category:    cat.TopCategory(),
		SubCategory: cat.SubCategory(),
		BaseURL:     a.cfg.BaseURL,
		Brands:      brandVocab,
	}

	html, err := a.fetcher.GetHTML(ctx, a.pageURL(cat, 1))
	if err != nil {
		log.Warnf("ianmall: fetch failed for category %s: %v", id, err)
		return nil, nil
	}

	products := a.pipeline.Extract(html, cc)

	for page := 2; page <= totalPages(html); page++ {
		pageHTML, err := a.fetcher.GetHTML(ctx, a.pageURL(cat, page))
		if err != nil {
			log.Warnf("ianmall: fetch failed for category %s page %d: %v", id, page, err)
			continue
		}
		products = append(products, a.pipeline.Extract(pageHTML, cc)...)
	}

	return extract.Dedupe(products), nil
}

func (a *Adapter) pageURL(cat domain.Category, page int) string {
	return fmt.Sprintf("%s/goods/goods_list.php?cateCd=%s&page=%d", a.cfg.BaseURL, cat.ID, page)
}

// totalPages returns the pager's total, or 1 when the indicator is absent
// (short categories render without a pager).
func totalPages(html string) int {
	m := pageIndicatorRe.FindStringSubmatch(html)
	if m == nil {
		return 1
	}
	total, err := strconv.Atoi(m[2])
	if err != nil || total < 1 {
		return 1
	}
	return total
}
