package hangel

import (
	"materialhub/crawler/internal/domain"
	"materialhub/crawler/internal/taxonomy"
)

func newTaxonomy() taxonomy.Taxonomy {
	return taxonomy.New(
		[]domain.Category{
			{ID: "11", Name: "석고보드", Group: "보드", URLPath: "/product/gypsum.html"},
			{ID: "12", Name: "합판", Group: "보드", URLPath: "/product/plywood.html"},
			{ID: "13", Name: "MDF", Group: "보드"},
			{ID: "21", Name: "단열재", URLPath: "/product/insulation.html"},
			{ID: "22", Name: "방수재"},
			{ID: "31", Name: "목재", URLPath: "/product/timber.html"},
		},
		map[string][]string{
			"보드": {"11", "12", "13"},
		},
		map[string]string{
			"10": "보드",
		},
	)
}
