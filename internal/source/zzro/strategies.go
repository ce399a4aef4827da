package zzro

import (
	"regexp"
	"strings"

	"materialhub/crawler/internal/extract"

	"github.com/PuerkitoBio/goquery"
)

// goodsTableStrategy reads the standard listing table: one row per product
// with name, price and brand cells.
func goodsTableStrategy() extract.Strategy {
	return extract.Strategy{
		Name: "goods_table",
		Run: func(markup string, cc extract.Context) []extract.Candidate {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
			if err != nil {
				return nil
			}

			var cands []extract.Candidate
			doc.Find("table.goods_list tr").Each(func(i int, row *goquery.Selection) {
				nameLink := row.Find("td.gd_name a").First()
				name := strings.TrimSpace(nameLink.Text())
				if name == "" {
					return // header or spacer row
				}

				cand := extract.Candidate{
					Name:  name,
					Price: extract.ParsePrice(row.Find("td.gd_price").First().Text()),
					Brand: strings.TrimSpace(row.Find("td.gd_brand").First().Text()),
					Size:  strings.TrimSpace(row.Find("td.gd_size").First().Text()),
				}
				if href, ok := nameLink.Attr("href"); ok {
					cand.URL = href
				}
				if src, ok := row.Find("img").First().Attr("src"); ok {
					cand.ImageURL = src
				}
				extract.EnrichFromWindow(&cand, row.Text(), cc.Brands)
				cands = append(cands, cand)
			})
			return cands
		},
	}
}

// itemIDRe anchors on the shop's it_id parameter and pairs it with the
// name and price found within the same bounded stretch of markup.
var itemIDRe = regexp.MustCompile(`(?s)it_id=([0-9A-Za-z_]+)"[^>]*>([^<>]{2,80})</a>.{0,250}?([0-9][0-9,]{2,11})\s*원`)

func itemIDStrategy() extract.Strategy {
	return extract.Strategy{
		Name: "item_id",
		Run: func(markup string, cc extract.Context) []extract.Candidate {
			var cands []extract.Candidate
			for _, idx := range itemIDRe.FindAllStringSubmatchIndex(markup, -1) {
				cand := extract.Candidate{
					Name:  strings.TrimSpace(markup[idx[4]:idx[5]]),
					Price: extract.ParsePrice(markup[idx[6]:idx[7]]),
					URL:   "/shop/item.php?it_id=" + markup[idx[2]:idx[3]],
				}
				extract.EnrichFromWindow(&cand, extract.Window(markup, idx[0], idx[1], 300), cc.Brands)
				cands = append(cands, cand)
			}
			return cands
		},
	}
}
