package extract

import (
	"testing"

	"materialhub/crawler/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedStrategy(name string, minPrice int, cands ...Candidate) Strategy {
	return Strategy{
		Name:     name,
		MinPrice: minPrice,
		Run: func(markup string, cc Context) []Candidate {
			return cands
		},
	}
}

func TestPipelineExtract(t *testing.T) {
	cc := Context{Source: "ohouse", Category: "마루", SubCategory: "강마루", BaseURL: "https://mall.example.co.kr"}

	t.Run("first strategy with surviving candidates wins", func(t *testing.T) {
		p := NewPipeline(
			fixedStrategy("primary", 0, Candidate{Name: "강마루 12mm", Price: 45000}),
			fixedStrategy("secondary", 0, Candidate{Name: "다른상품", Price: 9999}),
		)

		products := p.Extract("<html></html>", cc)
		require.Len(t, products, 1)
		assert.Equal(t, "강마루 12mm", products[0].Name)
		assert.Equal(t, 45000, products[0].Price)
	})

	t.Run("falls through when earlier strategies yield nothing valid", func(t *testing.T) {
		p := NewPipeline(
			fixedStrategy("primary", 0),
			fixedStrategy("secondary", 0, Candidate{Name: "무효", Price: 0}),
			fixedStrategy("generic", 0, Candidate{Name: "합지벽지", Price: 3500}),
		)

		products := p.Extract("x", cc)
		require.Len(t, products, 1)
		assert.Equal(t, "합지벽지", products[0].Name)
	})

	t.Run("non-positive prices are discarded silently", func(t *testing.T) {
		p := NewPipeline(fixedStrategy("s", 0,
			Candidate{Name: "a상품", Price: -100},
			Candidate{Name: "b상품", Price: 0},
		))
		assert.Empty(t, p.Extract("x", cc))
	})

	t.Run("all emitted products satisfy price greater than zero", func(t *testing.T) {
		p := NewPipeline(fixedStrategy("s", 0,
			Candidate{Name: "a상품", Price: 0},
			Candidate{Name: "b상품", Price: 1},
			Candidate{Name: "c상품", Price: 70000},
		))
		for _, prod := range p.Extract("x", cc) {
			assert.Greater(t, prod.Price, 0)
		}
	})

	t.Run("strategy min price floor applies", func(t *testing.T) {
		p := NewPipeline(fixedStrategy("generic", 1000,
			Candidate{Name: "배송비", Price: 500},
			Candidate{Name: "진짜상품", Price: 1500},
		))
		products := p.Extract("x", cc)
		require.Len(t, products, 1)
		assert.Equal(t, "진짜상품", products[0].Name)
	})

	t.Run("duplicate name and price pairs collapse to one", func(t *testing.T) {
		p := NewPipeline(fixedStrategy("s", 0,
			Candidate{Name: "강마루 12mm", Price: 45000, URL: "/goods/1"},
			Candidate{Name: "강마루 12mm", Price: 45000, URL: "/goods/2"},
			Candidate{Name: "강마루 12mm", Price: 46000},
		))
		products := p.Extract("x", cc)
		assert.Len(t, products, 2)
	})

	t.Run("empty names after truncation are discarded", func(t *testing.T) {
		p := NewPipeline(fixedStrategy("s", 0, Candidate{Name: "   ", Price: 1000}))
		assert.Empty(t, p.Extract("x", cc))
	})

	t.Run("category comes from the taxonomy context not the page", func(t *testing.T) {
		p := NewPipeline(fixedStrategy("s", 0, Candidate{Name: "강마루 12mm", Price: 45000}))
		products := p.Extract("x", cc)
		require.Len(t, products, 1)
		assert.Equal(t, "마루", products[0].Category)
		assert.Equal(t, "강마루", products[0].SubCategory)
		assert.Equal(t, "ohouse", products[0].Source)
	})

	t.Run("unit falls back to inference from the name", func(t *testing.T) {
		p := NewPipeline(fixedStrategy("s", 0,
			Candidate{Name: "타일 1박스", Price: 30000},
			Candidate{Name: "강마루 12mm", Price: 45000, Unit: "장"},
		))
		products := p.Extract("x", cc)
		require.Len(t, products, 2)
		assert.Equal(t, "박스", products[0].Unit)
		assert.Equal(t, "장", products[1].Unit)
	})

	t.Run("relative urls resolve against the base", func(t *testing.T) {
		p := NewPipeline(fixedStrategy("s", 0,
			Candidate{Name: "강마루 12mm", Price: 45000, URL: "/goods/1", ImageURL: "//cdn.example.com/1.jpg"},
		))
		products := p.Extract("x", cc)
		require.Len(t, products, 1)
		assert.Equal(t, "https://mall.example.co.kr/goods/1", products[0].OriginalURL)
		assert.Equal(t, "https://cdn.example.com/1.jpg", products[0].ImageURL)
	})
}

func TestDedupe(t *testing.T) {
	products := []domain.Product{
		{Name: "강마루 12mm", Price: 45000},
		{Name: "장판 1.8T", Price: 12000},
		{Name: "강마루 12mm", Price: 45000},
	}

	deduped := Dedupe(products)
	require.Len(t, deduped, 2)
	assert.Equal(t, "강마루 12mm", deduped[0].Name)
	assert.Equal(t, "장판 1.8T", deduped[1].Name)
}

func TestGenericStrategy(t *testing.T) {
	markup := `<html><body>
	<nav><a href="/login">로그인</a><a href="/cart">장바구니</a></nav>
	<div class="banner"><span>오늘의 특가 이벤트</span><b>500원</b></div>
	<div class="item"><a href="/p/1">방문용 손잡이 세트</a><span class="cost">12,500원</span></div>
	</body></html>`

	st := GenericStrategy(1000)
	p := NewPipeline(st)
	products := p.Extract(markup, Context{Source: "test", Category: "하드웨어", BaseURL: "https://example.com"})

	require.Len(t, products, 1)
	assert.Equal(t, "방문용 손잡이 세트", products[0].Name)
	assert.Equal(t, 12500, products[0].Price)
	assert.Equal(t, "세트", products[0].Unit)
}

func TestLabelValue(t *testing.T) {
	assert.Equal(t, "장", LabelValue(`<span>단위: 장 규격: 1200x192</span>`, "단위"))
	assert.Equal(t, "1200x192", LabelValue(`<span>단위: 장 규격: 1200x192</span>`, "규격"))
	assert.Equal(t, "동화자연마루", LabelValue(`브랜드 : 동화자연마루`, "브랜드"))
	assert.Equal(t, "롤", LabelValue(`<dt>단위</dt>없음 단위:롤`, "단위"))
	assert.Equal(t, "", LabelValue(`가격: 45,000원`, "단위"))
}

func TestFindBrand(t *testing.T) {
	vocab := []string{"동화자연마루", "구정마루", "KCC"}
	assert.Equal(t, "구정마루", FindBrand("구정마루 강마루 브라운", vocab))
	assert.Equal(t, "", FindBrand("노브랜드 장판", vocab))
	assert.Equal(t, "", FindBrand("아무거나", nil))
}
