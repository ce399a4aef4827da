package zzro

import (
	"materialhub/crawler/internal/domain"
	"materialhub/crawler/internal/taxonomy"
)

func newTaxonomy() taxonomy.Taxonomy {
	return taxonomy.New(
		[]domain.Category{
			{ID: "flooring", Name: "바닥재", Group: "마감재"},
			{ID: "wallpaper", Name: "벽지", Group: "마감재"},
			{ID: "tile", Name: "타일", Group: "마감재"},
			{ID: "paint", Name: "페인트", Group: "도장"},
			{ID: "lacquer", Name: "락카/스프레이", Group: "도장"},
			{ID: "film", Name: "인테리어필름"},
			{ID: "molding", Name: "몰딩", URLPath: "/shop/list.php?ca=molding_pvc"},
		},
		map[string][]string{
			"마감재": {"flooring", "wallpaper", "tile"},
			"도장":  {"paint", "lacquer"},
		},
		map[string]string{
			"finish-all": "마감재",
		},
	)
}
