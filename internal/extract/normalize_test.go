package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"comma separated with currency marker", "45,000원", 45000},
		{"plain digits", "12000", 12000},
		{"millions", "1,200,000원", 1200000},
		{"surrounding text", "판매가 : 5,500원 (VAT포함)", 5500},
		{"no digits", "가격문의", 0},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"digits split by markup leftovers", "45 , 000", 45000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePrice(tt.text))
		})
	}
}

func TestExtractUnit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"area marker", "데코타일 450x450 (1박스/㎡)", "㎡"},
		{"area wins over bare meter text", "장판 모노륨 ㎡당 가격", "㎡"},
		{"pyeong", "강화마루 평당 시공비 포함", "평"},
		{"box", "타일 1박스 11장", "박스"},
		{"roll", "인테리어필름 1롤", "롤"},
		{"set", "도어 손잡이 세트", "세트"},
		{"weight", "접착제 20kg", "kg"},
		{"length", "몰딩 2.4m당", "m"},
		{"sheet", "석고보드 장당", "장"},
		{"count pack", "흡음재 10개입", "개"},
		{"no indicator falls back to default", "강마루 12mm", DefaultUnit},
		{"empty", "", DefaultUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractUnit(tt.text))
		})
	}
}

func TestTruncateName(t *testing.T) {
	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "강마루 12mm", TruncateName("  강마루 \n\t 12mm  "))
	})

	t.Run("cuts to the length bound in runes", func(t *testing.T) {
		long := ""
		for i := 0; i < MaxNameLength+20; i++ {
			long += "가"
		}
		got := TruncateName(long)
		assert.Len(t, []rune(got), MaxNameLength)
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", TruncateName("   "))
	})
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://mall.example.co.kr"

	assert.Equal(t, "https://mall.example.co.kr/goods/1", AbsoluteURL(base, "/goods/1"))
	assert.Equal(t, "https://cdn.example.com/a.jpg", AbsoluteURL(base, "https://cdn.example.com/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/a.jpg", AbsoluteURL(base, "//cdn.example.com/a.jpg"))
	assert.Equal(t, "https://mall.example.co.kr/goods/2", AbsoluteURL(base+"/", "goods/2"))
	assert.Equal(t, "", AbsoluteURL(base, ""))
}
