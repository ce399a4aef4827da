package symembership

import (
	"materialhub/crawler/internal/domain"
	"materialhub/crawler/internal/taxonomy"
)

func newTaxonomy() taxonomy.Taxonomy {
	return taxonomy.New(
		[]domain.Category{
			{ID: "D01", Name: "ABS도어", Group: "도어"},
			{ID: "D02", Name: "멤브레인도어", Group: "도어"},
			{ID: "D03", Name: "중문", Group: "도어"},
			{ID: "W01", Name: "창호"},
			{ID: "H01", Name: "도어하드웨어"},
		},
		map[string][]string{
			"도어": {"D01", "D02", "D03"},
		},
		map[string]string{
			"D00": "도어",
		},
	)
}
