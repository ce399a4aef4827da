// Package ohouse crawls the 오하우스 interior-materials mall. Listing pages
// carry one li.prod_item block per product; an alternate template (served
// on some category pages) uses data-goods blocks instead, handled by the
// secondary strategy.
package ohouse

import (
	"context"
	"fmt"
	"time"

	"materialhub/crawler/internal/client"
	"materialhub/crawler/internal/domain"
	"materialhub/crawler/internal/extract"
	"materialhub/crawler/internal/source"
	"materialhub/crawler/internal/taxonomy"

	log "github.com/sirupsen/logrus"
)

var brandVocab = []string{
	"동화자연마루",
	"구정마루",
	"이건마루",
	"한솔홈데코",
	"LX하우시스",
	"현대L&C",
	"KCC글라스",
	"재영",
}

func DefaultConfig() source.Config {
	return source.Config{
		Name:    "ohouse",
		BaseURL: "https://mall.ohouse.co.kr",
		Delay:   500 * time.Millisecond,
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
			prodItemStrategy(),
			goodsBlockStrategy(),
			extract.GenericStrategy(1000),
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

	html, err := a.fetcher.GetHTML(ctx, a.categoryURL(cat))
	if err != nil {
		log.Warnf("ohouse: fetch failed for category %s (%s): %v", id, cat.Name, err)
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

func (a *Adapter) categoryURL(cat domain.Category) string {
	if cat.URLPath != "" {
		return a.cfg.BaseURL + cat.URLPath
	}
	return fmt.Sprintf("%s/store/category.asp?cat=%s", a.cfg.BaseURL, cat.ID)
}
