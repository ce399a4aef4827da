// Package zzro crawls the 짜로몰 wholesale materials shop. Categories are
// slugs and listing pages are server-side paginated; the maximum page
// number is read off the first page's pager links.
package zzro

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
	"노루페인트",
	"삼화페인트",
	"던에드워드",
	"KCC",
	"벤자민무어",
	"제비표",
}

func DefaultConfig() source.Config {
	return source.Config{
		Name:    "zzro",
		BaseURL: "https://www.zzromall.com",
		Delay:   800 * time.Millisecond,
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
			goodsTableStrategy(),
			itemIDStrategy(),
			extract.GenericStrategy(1000),
		),
	}
}

func (a *Adapter) Config() source.Config { return a.cfg }

func (a *Adapter) Categories() map[string]domain.Category { return a.tax.Categories() }

func (a *Adapter) ParentCategories() map[string][]string { return a.tax.ParentCategories() }

func (a *Adapter) ExpandCategories(ids []string) []string { return a.tax.Expand(ids) }

// pagerRe finds page numbers in the pager's hrefs; the largest one is the
// category's page count.
var pagerRe = regexp.MustCompile(`[?&]page=(\d+)`)

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
		log.Warnf("zzro: fetch failed for category %s: %v", id, err)
		return nil, nil
	}

	products := a.pipeline.Extract(html, cc)

	// Remaining pages, each behind the same request delay. A broken page
	// costs only its own listings.
	for page := 2; page <= maxPage(html); page++ {
		pageHTML, err := a.fetcher.GetHTML(ctx, a.pageURL(cat, page))
		if err != nil {
			log.Warnf("zzro: fetch failed for category %s page %d: %v", id, page, err)
			continue
		}
		products = append(products, a.pipeline.Extract(pageHTML, cc)...)
	}

	return extract.Dedupe(products), nil
}

func (a *Adapter) pageURL(cat domain.Category, page int) string {
	path := cat.URLPath
	if path == "" {
		path = "/shop/list.php?ca=" + cat.ID
	}
	return fmt.Sprintf("%s%s&page=%d", a.cfg.BaseURL, path, page)
}

func maxPage(html string) int {
	maxSeen := 1
	for _, m := range pagerRe.FindAllStringSubmatch(html, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > maxSeen {
			maxSeen = n
		}
	}
	return maxSeen
}
