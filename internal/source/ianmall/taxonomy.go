package ianmall

import (
	"materialhub/crawler/internal/domain"
	"materialhub/crawler/internal/taxonomy"
)

func newTaxonomy() taxonomy.Taxonomy {
	return taxonomy.New(
		[]domain.Category{
			{ID: "001", Name: "양변기", Group: "욕실"},
			{ID: "002", Name: "세면기", Group: "욕실"},
			{ID: "003", Name: "수전", Group: "욕실"},
			{ID: "004", Name: "욕실악세사리", Group: "욕실"},
			{ID: "010", Name: "주방수전", Group: "주방"},
			{ID: "011", Name: "싱크볼", Group: "주방"},
			{ID: "020", Name: "조명"},
		},
		map[string][]string{
			"욕실": {"001", "002", "003", "004"},
			"주방": {"010", "011"},
		},
		map[string]string{
			"000": "욕실",
		},
	)
}
