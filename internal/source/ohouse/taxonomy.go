package ohouse

import (
	"materialhub/crawler/internal/domain"
	"materialhub/crawler/internal/taxonomy"
)

// Category ids mirror the mall's numeric cat parameters. 89 is the mall's
// own "마루 전체" page and expands to the 마루 leaves.
func newTaxonomy() taxonomy.Taxonomy {
	return taxonomy.New(
		[]domain.Category{
			{ID: "89", Name: "마루 전체", Group: "마루"},
			{ID: "90", Name: "강마루", Group: "마루"},
			{ID: "91", Name: "강화마루", Group: "마루"},
			{ID: "92", Name: "원목마루", Group: "마루"},
			{ID: "93", Name: "데코타일"},
			{ID: "94", Name: "장판"},
			{ID: "100", Name: "실크벽지", Group: "벽지"},
			{ID: "101", Name: "합지벽지", Group: "벽지"},
			{ID: "102", Name: "뮤럴벽지", Group: "벽지"},
			{ID: "106", Name: "몰딩"},
			{ID: "110", Name: "욕실타일", Group: "타일"},
			{ID: "111", Name: "주방타일", Group: "타일"},
		},
		map[string][]string{
			"마루": {"90", "91", "92"},
			"벽지": {"100", "101", "102"},
			"타일": {"110", "111"},
		},
		map[string]string{
			"89": "마루",
		},
	)
}
