package ohouse_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"materialhub/crawler/internal/source"
	"materialhub/crawler/internal/source/ohouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *ohouse.Adapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return ohouse.New(source.Config{Name: "ohouse", BaseURL: srv.URL})
}

func serveHTML(html string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}

const primaryListing = `<html><body><ul class="prod_list">
<li class="prod_item"><a class="prod_name" href="/goods/1">강마루 12mm</a><span class="prod_price">45,000원</span><span class="prod_info">단위: 장</span></li>
<li class="prod_item"><a class="prod_name" href="/goods/2">동화자연마루 강마루 프리미엄</a><span class="prod_price">52,000원</span><img class="prod_thumb" src="/img/2.jpg"></li>
<li class="prod_item"><a class="prod_name" href="/goods/3">강마루 12mm</a><span class="prod_price">45,000원</span></li>
<li class="prod_item"><a class="prod_name" href="/goods/4">품절 상품</a><span class="prod_price">가격문의</span></li>
</ul></body></html>`

func TestCrawlCategoryPrimary(t *testing.T) {
	a := newTestAdapter(t, serveHTML(primaryListing))

	products, err := a.CrawlCategory(context.Background(), "90")
	require.NoError(t, err)
	require.Len(t, products, 2) // duplicate and priceless listings dropped

	first := products[0]
	assert.Equal(t, "강마루 12mm", first.Name)
	assert.Equal(t, 45000, first.Price)
	assert.Equal(t, "장", first.Unit) // explicit 단위 label beats name inference
	assert.Equal(t, "마루", first.Category)
	assert.Equal(t, "강마루", first.SubCategory)
	assert.Equal(t, "ohouse", first.Source)
	assert.Contains(t, first.OriginalURL, "/goods/1")

	second := products[1]
	assert.Equal(t, "동화자연마루", second.Brand)
	assert.Contains(t, second.ImageURL, "/img/2.jpg")
}

func TestCrawlCategorySecondaryFallback(t *testing.T) {
	// Alternate template: no prod_item markup at all.
	a := newTestAdapter(t, serveHTML(`<html><body>
<div class="goods_unit" data-goods="10021"><p class="tit">합지벽지 소폭</p><p class="price">3,500원</p></div>
<div class="goods_unit" data-goods="10022"><p class="tit">실크벽지 광폭 규격: 106cm</p><p class="price">12,000원</p></div>
</body></html>`))

	products, err := a.CrawlCategory(context.Background(), "101")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "합지벽지 소폭", products[0].Name)
	assert.Equal(t, 3500, products[0].Price)
	assert.Contains(t, products[0].OriginalURL, "/goods/10021")
	assert.Equal(t, "106cm", products[1].Size)
}

func TestCrawlCategoryGenericFallback(t *testing.T) {
	a := newTestAdapter(t, serveHTML(`<html><body>
<div><a href="/p/9">방염 인테리어필름 1롤</a> <em>35,000원</em></div>
<div><span>무료배송 이벤트</span> <em>500원</em></div>
</body></html>`))

	products, err := a.CrawlCategory(context.Background(), "93")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "방염 인테리어필름 1롤", products[0].Name)
	assert.Equal(t, 35000, products[0].Price)
	assert.Equal(t, "롤", products[0].Unit)
	assert.Equal(t, "데코타일", products[0].Category)
}

func TestCrawlCategoryFetchFailure(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusInternalServerError)
	})

	products, err := a.CrawlCategory(context.Background(), "90")
	assert.NoError(t, err) // recovered locally, not an error
	assert.Empty(t, products)
}

func TestCrawlCategoryUnknownID(t *testing.T) {
	a := newTestAdapter(t, serveHTML("<html></html>"))

	_, err := a.CrawlCategory(context.Background(), "does-not-exist")
	assert.Error(t, err)
}

func TestExpandCategories(t *testing.T) {
	a := newTestAdapter(t, serveHTML("<html></html>"))

	t.Run("concrete leaves pass through", func(t *testing.T) {
		assert.Equal(t, []string{"93", "106"}, a.ExpandCategories([]string{"93", "106"}))
	})

	t.Run("the mall's 전체 page expands to the group", func(t *testing.T) {
		assert.Equal(t, []string{"90", "91", "92"}, a.ExpandCategories([]string{"89"}))
	})

	t.Run("group label works too", func(t *testing.T) {
		assert.Equal(t, []string{"100", "101", "102"}, a.ExpandCategories([]string{"벽지"}))
	})
}

func TestTaxonomyIntrospection(t *testing.T) {
	a := newTestAdapter(t, serveHTML("<html></html>"))

	categories := a.Categories()
	assert.Contains(t, categories, "93")
	assert.Equal(t, "데코타일", categories["93"].Name)

	parents := a.ParentCategories()
	assert.Contains(t, parents, "마루")
	assert.Contains(t, parents, "타일")
}
