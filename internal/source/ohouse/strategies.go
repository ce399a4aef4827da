package ohouse

import (
	"regexp"
	"strings"

	"materialhub/crawler/internal/extract"

	"github.com/PuerkitoBio/goquery"
)

// prodItemStrategy handles the standard listing template: one li.prod_item
// per product with a name link and a sibling price element.
func prodItemStrategy() extract.Strategy {
	return extract.Strategy{
		Name: "prod_item",
		Run: func(markup string, cc extract.Context) []extract.Candidate {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
			if err != nil {
				return nil
			}

			var cands []extract.Candidate
			doc.Find("li.prod_item").Each(func(i int, item *goquery.Selection) {
				cand := extract.Candidate{
					Name:  strings.TrimSpace(item.Find("a.prod_name").First().Text()),
					Price: extract.ParsePrice(item.Find("span.prod_price").First().Text()),
				}
				if href, ok := item.Find("a.prod_name").First().Attr("href"); ok {
					cand.URL = href
				}
				if src, ok := item.Find("img.prod_thumb").First().Attr("src"); ok {
					cand.ImageURL = src
				}

				// The item block's own text is the bounded window here.
				extract.EnrichFromWindow(&cand, item.Text(), cc.Brands)
				cands = append(cands, cand)
			})
			return cands
		},
	}
}

// goodsBlockRe matches the alternate template: a numeric product id in a
// data-goods attribute, with the name label and price inside the same
// bounded stretch of markup. The bounds keep one product's fields from
// pairing with a neighbour's.
var goodsBlockRe = regexp.MustCompile(`(?s)data-goods="(\d+)".{0,400}?class="tit"[^>]*>([^<]+)<.{0,250}?([0-9][0-9,]{2,11})\s*원`)

func goodsBlockStrategy() extract.Strategy {
	return extract.Strategy{
		Name: "goods_block",
		Run: func(markup string, cc extract.Context) []extract.Candidate {
			var cands []extract.Candidate
			for _, idx := range goodsBlockRe.FindAllStringSubmatchIndex(markup, -1) {
				cand := extract.Candidate{
					Name:  strings.TrimSpace(markup[idx[4]:idx[5]]),
					Price: extract.ParsePrice(markup[idx[6]:idx[7]]),
					URL:   "/goods/" + markup[idx[2]:idx[3]],
				}
				extract.EnrichFromWindow(&cand, extract.Window(markup, idx[0], idx[1], 300), cc.Brands)
				cands = append(cands, cand)
			}
			return cands
		},
	}
}
