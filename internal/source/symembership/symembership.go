// Package symembership crawls the SY멤버십 dealer mall.
package symembership

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

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

var brandVocab = []string{
	"삼역",
	"영림",
	"예림",
	"우딘",
	"금호석화",
}

func DefaultConfig() source.Config {
	return source.Config{
		Name:    "symembership",
		BaseURL: "https://www.symembership.co.kr",
		Delay:   600 * time.Millisecond,
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
			memberGoodsStrategy(),
			viewLinkStrategy(),
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

	url := fmt.Sprintf("%s/mall/category.php?code=%s", a.cfg.BaseURL, cat.ID)
	html, err := a.fetcher.GetHTML(ctx, url)
	if err != nil {
		log.Warnf("symembership: fetch failed for category %s (%s): %v", id, cat.Name, err)
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

func memberGoodsStrategy() extract.Strategy {
	return extract.Strategy{
		Name: "member_goods",
		Run: func(markup string, cc extract.Context) []extract.Candidate {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
			if err != nil {
				return nil
			}

			var cands []extract.Candidate
			doc.Find("div.member_goods").Each(func(i int, item *goquery.Selection) {
				cand := extract.Candidate{
					Name:  strings.TrimSpace(item.Find("p.name").First().Text()),
					Price: extract.ParsePrice(item.Find("p.price").First().Text()),
				}
				if href, ok := item.Find("a").First().Attr("href"); ok {
					cand.URL = href
				}
				if src, ok := item.Find("img").First().Attr("src"); ok {
					cand.ImageURL = src
				}
				extract.EnrichFromWindow(&cand, item.Text(), cc.Brands)
				cands = append(cands, cand)
			})
			return cands
		},
	}
}

// viewLinkRe handles the older template where products are bare view.php
// links followed by a price within the same block.
var viewLinkRe = regexp.MustCompile(`(?s)view\.php\?no=(\d+)[^>]*>([^<>]{2,80})<.{0,200}?([0-9][0-9,]{2,11})\s*원`)

func viewLinkStrategy() extract.Strategy {
	return extract.Strategy{
		Name: "view_link",
		Run: func(markup string, cc extract.Context) []extract.Candidate {
			var cands []extract.Candidate
			for _, idx := range viewLinkRe.FindAllStringSubmatchIndex(markup, -1) {
				cand := extract.Candidate{
					Name:  strings.TrimSpace(markup[idx[4]:idx[5]]),
					Price: extract.ParsePrice(markup[idx[6]:idx[7]]),
					URL:   "/mall/view.php?no=" + markup[idx[2]:idx[3]],
				}
				extract.EnrichFromWindow(&cand, extract.Window(markup, idx[0], idx[1], 300), cc.Brands)
				cands = append(cands, cand)
			}
			return cands
		},
	}
}
