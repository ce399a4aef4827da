package ianmall

import (
	"regexp"
	"strings"

	"materialhub/crawler/internal/extract"

	"github.com/PuerkitoBio/goquery"
)

func goodsListStrategy() extract.Strategy {
	return extract.Strategy{
		Name: "goods_list",
		Run: func(markup string, cc extract.Context) []extract.Candidate {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
			if err != nil {
				return nil
			}

			var cands []extract.Candidate
			doc.Find("div.goods_list_item").Each(func(i int, item *goquery.Selection) {
				cand := extract.Candidate{
					Name:  strings.TrimSpace(item.Find("strong.goods_name").First().Text()),
					Price: extract.ParsePrice(item.Find("em.goods_price").First().Text()),
				}
				if href, ok := item.Find("a[href*='goods_view.php']").First().Attr("href"); ok {
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

// goodsNoRe anchors on the goodsNo id and correlates the name and price
// within the same bounded block of markup.
var goodsNoRe = regexp.MustCompile(`(?s)goodsNo=(\d+)[^>]*>([^<>]{2,80})</a>.{0,250}?([0-9][0-9,]{2,11})\s*원`)

func goodsNoStrategy() extract.Strategy {
	return extract.Strategy{
		Name: "goods_no",
		Run: func(markup string, cc extract.Context) []extract.Candidate {
			var cands []extract.Candidate
			for _, idx := range goodsNoRe.FindAllStringSubmatchIndex(markup, -1) {
				cand := extract.Candidate{
					Name:  strings.TrimSpace(markup[idx[4]:idx[5]]),
					Price: extract.ParsePrice(markup[idx[6]:idx[7]]),
					URL:   "/goods/goods_view.php?goodsNo=" + markup[idx[2]:idx[3]],
				}
				extract.EnrichFromWindow(&cand, extract.Window(markup, idx[0], idx[1], 300), cc.Brands)
				cands = append(cands, cand)
			}
			return cands
		},
	}
}
