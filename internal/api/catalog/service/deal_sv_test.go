package catalogService

import (
	"math/rand"
	"sync"
	"testing"

	catalogRepository "ShopMate/internal/api/catalog/repository"
	"ShopMate/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, products []entity.Product) ICatalogService {
	t.Helper()
	log := logrus.New()
	repo := catalogRepository.New(products, log)
	return NewCatalogServiceWithRand(log, repo, rand.New(rand.NewSource(42)))
}

func TestDealOfDay_DrawsFromHighRatingPool(t *testing.T) {
	products := []entity.Product{
		{ID: "D1", Name: "Cheap Star", Category: "Grocery", Price: 100, Rating: 4.9},
		{ID: "D2", Name: "Mid Star", Category: "Grocery", Price: 500, Rating: 4.5},
		{ID: "D3", Name: "Low Rated", Category: "Grocery", Price: 50, Rating: 3.0},
		{ID: "D4", Name: "Pricey Star", Category: "Grocery", Price: 900, Rating: 4.7},
	}
	svc := newTestService(t, products)

	// Only products rated 4.5 and up are eligible; the low-rated one must
	// never be drawn no matter how cheap it is.
	for i := 0; i < 50; i++ {
		deal, ok := svc.DealOfDay()
		require.True(t, ok)
		assert.Contains(t, []string{"D1", "D2", "D4"}, deal.ID)
	}
}

func TestDealOfDay_PoolIsCappedAtTen(t *testing.T) {
	var products []entity.Product
	for i := 0; i < 20; i++ {
		products = append(products, entity.Product{
			ID:       string(rune('A' + i)),
			Name:     "Star Product",
			Category: "Grocery",
			Price:    100 * (i + 1),
			Rating:   4.8,
		})
	}
	svc := newTestService(t, products)

	// All twenty qualify by rating, but the pool keeps the ten cheapest.
	// 'A' is the cheapest and 'J' the tenth, so draws stay within A..J.
	for i := 0; i < 100; i++ {
		deal, ok := svc.DealOfDay()
		require.True(t, ok)
		assert.LessOrEqual(t, deal.Price, 1000)
	}
}

func TestDealOfDay_FallsBackToWholeCatalog(t *testing.T) {
	products := []entity.Product{
		{ID: "L1", Name: "Okay Product", Category: "Grocery", Price: 100, Rating: 3.1},
		{ID: "L2", Name: "Better Product", Category: "Grocery", Price: 200, Rating: 3.9},
	}
	svc := newTestService(t, products)

	// Nothing clears the rating bar, so the deal comes from the catalog at
	// large rather than reporting no deal.
	for i := 0; i < 20; i++ {
		deal, ok := svc.DealOfDay()
		require.True(t, ok)
		assert.Contains(t, []string{"L1", "L2"}, deal.ID)
	}
}

func TestDealOfDay_ConcurrentDraws(t *testing.T) {
	products := []entity.Product{
		{ID: "C1", Name: "Cheap Star", Category: "Grocery", Price: 100, Rating: 4.9},
		{ID: "C2", Name: "Mid Star", Category: "Grocery", Price: 500, Rating: 4.6},
		{ID: "C3", Name: "Pricey Star", Category: "Grocery", Price: 900, Rating: 4.7},
	}
	svc := newTestService(t, products)

	// Draws come from every request goroutine at once; run with -race.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				deal, ok := svc.DealOfDay()
				assert.True(t, ok)
				assert.Contains(t, []string{"C1", "C2", "C3"}, deal.ID)
			}
		}()
	}
	wg.Wait()
}

func TestDealOfDay_EmptyCatalog(t *testing.T) {
	svc := newTestService(t, nil)

	_, ok := svc.DealOfDay()
	assert.False(t, ok)
}

func TestTopRated(t *testing.T) {
	products := []entity.Product{
		{ID: "T1", Name: "One", Category: "Grocery", Price: 100, Rating: 4.0},
		{ID: "T2", Name: "Two", Category: "Grocery", Price: 100, Rating: 4.9},
		{ID: "T3", Name: "Three", Category: "Grocery", Price: 100, Rating: 4.5},
	}
	svc := newTestService(t, products)

	got := svc.TopRated(2)
	require.Len(t, got, 2)
	assert.Equal(t, "T2", got[0].ID)
	assert.Equal(t, "T3", got[1].ID)

	got = svc.TopRated(10)
	assert.Len(t, got, 3)
}
