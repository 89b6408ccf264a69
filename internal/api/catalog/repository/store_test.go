package catalogRepository

import (
	"testing"

	"ShopMate/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: "P1", Name: "Samsung Galaxy S23", Category: "Smartphone", Price: 74999, Rating: 4.6},
		{ID: "P2", Name: "Samsung Galaxy M14", Category: "Smartphone", Price: 13999, Rating: 4.2},
		{ID: "P3", Name: "Apple iPhone 15", Category: "Smartphone", Price: 70000, Rating: 4.7},
		{ID: "P4", Name: "Apple iPhone 13", Category: "Smartphone", Price: 52999, Rating: 4.5},
		{ID: "P5", Name: "Nike Air Max 270", Category: "Fashion", Price: 12999, Rating: 4.6},
		{ID: "P6", Name: "Nike Revolution 6", Category: "Fashion", Price: 3999, Rating: 4.3},
		{ID: "P7", Name: "Samsung Crystal 4K TV", Category: "Television", Price: 42999, Rating: 4.5},
		{ID: "P8", Name: "Oneplus Nord CE 3", Category: "Smartphone", Price: 91000, Rating: 4.6},
	}
}

func testRepo(t *testing.T) Repository {
	t.Helper()
	log := logrus.New()
	return New(testProducts(), log)
}

func TestStore_Filter(t *testing.T) {
	repo := testRepo(t)

	t.Run("category only, ranked by rating then price", func(t *testing.T) {
		got := repo.Filter(Filter{Category: "Smartphone"})
		require.Len(t, got, 5)
		assert.Equal(t, "P3", got[0].ID)
		// P1 and P8 share rating 4.6, the cheaper one leads.
		assert.Equal(t, "P1", got[1].ID)
		assert.Equal(t, "P8", got[2].ID)
		assert.Equal(t, "P4", got[3].ID)
		assert.Equal(t, "P2", got[4].ID)
	})

	t.Run("brand matches product name case-insensitively", func(t *testing.T) {
		got := repo.Filter(Filter{Brand: "samsung"})
		require.Len(t, got, 3)
		for _, p := range got {
			assert.Contains(t, p.Name, "Samsung")
		}
	})

	t.Run("price ceiling is inclusive", func(t *testing.T) {
		got := repo.Filter(Filter{Category: "Fashion", PriceCeiling: 12999, HasPriceCeiling: true})
		require.Len(t, got, 2)
		got = repo.Filter(Filter{Category: "Fashion", PriceCeiling: 12998, HasPriceCeiling: true})
		require.Len(t, got, 1)
		assert.Equal(t, "P6", got[0].ID)
	})

	t.Run("all predicates combined", func(t *testing.T) {
		got := repo.Filter(Filter{Brand: "samsung", Category: "Smartphone", PriceCeiling: 30000, HasPriceCeiling: true})
		require.Len(t, got, 1)
		assert.Equal(t, "P2", got[0].ID)
	})

	t.Run("empty filter returns whole catalog ranked", func(t *testing.T) {
		got := repo.Filter(Filter{})
		require.Len(t, got, repo.Len())
		assert.Equal(t, "P3", got[0].ID)
	})

	t.Run("no match is empty, not an error", func(t *testing.T) {
		got := repo.Filter(Filter{Brand: "doesnotexist"})
		assert.Empty(t, got)
	})

	t.Run("repeated calls are idempotent", func(t *testing.T) {
		first := repo.Filter(Filter{Category: "Smartphone"})
		second := repo.Filter(Filter{Category: "Smartphone"})
		assert.Equal(t, first, second)
	})
}

func TestStore_SearchName(t *testing.T) {
	repo := testRepo(t)

	t.Run("catalog order is preserved", func(t *testing.T) {
		got := repo.SearchName("samsung")
		require.Len(t, got, 3)
		assert.Equal(t, "P1", got[0].ID)
		assert.Equal(t, "P2", got[1].ID)
		assert.Equal(t, "P7", got[2].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, repo.SearchName("zzz"))
	})
}

func TestStore_FindSimilar(t *testing.T) {
	repo := testRepo(t)

	t.Run("band is thirty percent around the anchor", func(t *testing.T) {
		base, similar, ok := repo.FindSimilar("iphone 15")
		require.True(t, ok)
		assert.Equal(t, "P3", base.ID)

		// Anchor price 70000 gives a band of [49000, 91000]. P1, P4 and P8
		// fall inside it; P2 is too cheap and the anchor itself is excluded.
		ids := make([]string, 0, len(similar))
		for _, p := range similar {
			assert.NotEqual(t, base.ID, p.ID)
			assert.Equal(t, "Smartphone", p.Category)
			assert.GreaterOrEqual(t, p.Price, 49000)
			assert.LessOrEqual(t, p.Price, 91000)
			ids = append(ids, p.ID)
		}
		assert.ElementsMatch(t, []string{"P1", "P4", "P8"}, ids)
	})

	t.Run("same category only", func(t *testing.T) {
		base, similar, ok := repo.FindSimilar("crystal 4k")
		require.True(t, ok)
		assert.Equal(t, "P7", base.ID)
		for _, p := range similar {
			assert.Equal(t, "Television", p.Category)
		}
	})

	t.Run("unknown anchor", func(t *testing.T) {
		_, _, ok := repo.FindSimilar("doesnotexist123")
		assert.False(t, ok)
	})

	t.Run("anchor with no neighbors", func(t *testing.T) {
		base, similar, ok := repo.FindSimilar("air max")
		require.True(t, ok)
		assert.Equal(t, "P5", base.ID)
		// Band [9099, 16898] holds no other Fashion product.
		assert.Empty(t, similar)
	})
}

func TestStore_GetByID(t *testing.T) {
	repo := testRepo(t)

	p, ok := repo.GetByID("P4")
	require.True(t, ok)
	assert.Equal(t, "Apple iPhone 13", p.Name)

	_, ok = repo.GetByID("P999")
	assert.False(t, ok)
}
