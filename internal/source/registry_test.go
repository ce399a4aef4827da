package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&Entry{ID: "ohouse", Name: "오하우스", Description: "마감재몰"})
	r.Register(&Entry{ID: "zzro", Name: "짜로몰"})

	t.Run("lookup by id", func(t *testing.T) {
		e, ok := r.Get("ohouse")
		require.True(t, ok)
		assert.Equal(t, "오하우스", e.Name)

		_, ok = r.Get("nope")
		assert.False(t, ok)
	})

	t.Run("all preserves registration order", func(t *testing.T) {
		all := r.All()
		require.Len(t, all, 2)
		assert.Equal(t, "ohouse", all[0].ID)
		assert.Equal(t, "zzro", all[1].ID)
		assert.Equal(t, []string{"ohouse", "zzro"}, r.IDs())
	})

	t.Run("re-registering replaces without duplicating", func(t *testing.T) {
		r.Register(&Entry{ID: "zzro", Name: "짜로몰 v2"})
		assert.Len(t, r.All(), 2)
		e, _ := r.Get("zzro")
		assert.Equal(t, "짜로몰 v2", e.Name)
	})
}
