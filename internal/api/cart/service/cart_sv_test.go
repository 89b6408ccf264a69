package cartService

import (
	"math/rand"
	"testing"

	"ShopMate/internal/api/cart"
	cartRepository "ShopMate/internal/api/cart/repository"
	catalogRepository "ShopMate/internal/api/catalog/repository"
	catalogService "ShopMate/internal/api/catalog/service"
	"ShopMate/internal/entity"
	"ShopMate/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeItems struct {
	items []entity.CartItem
}

func (f *fakeItems) AddItem(_ context.Context, item entity.CartItem) error {
	for _, it := range f.items {
		if it.UserID == item.UserID && it.ProductID == item.ProductID {
			return cart.ErrItemAlreadyInCart
		}
	}
	f.items = append(f.items, item)
	return nil
}

func (f *fakeItems) GetItemsByUser(_ context.Context, userID string) ([]entity.CartItem, error) {
	var out []entity.CartItem
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItems) GetItemByUserAndProduct(_ context.Context, userID, productID string) (entity.CartItem, error) {
	for _, it := range f.items {
		if it.UserID == userID && it.ProductID == productID {
			return it, nil
		}
	}
	return entity.CartItem{}, cart.ErrCartItemNotFound
}

func (f *fakeItems) DeleteItem(_ context.Context, userID, itemID string) (int64, error) {
	for i, it := range f.items {
		if it.UserID == userID && it.ID == itemID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeItems) ClearByUser(_ context.Context, userID string) error {
	var kept []entity.CartItem
	for _, it := range f.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

type fakeCartRepo struct {
	items *fakeItems
}

func (f *fakeCartRepo) NewClient(_ bool) (cartRepository.Client, error) {
	return cartRepository.Client{
		Items:    f.items,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestCartService(t *testing.T) (ICartService, *fakeItems) {
	t.Helper()
	log := logrus.New()

	products := []entity.Product{
		{ID: "P1", Name: "Samsung Galaxy M14", Category: "Smartphone", Price: 13999, Rating: 4.2},
		{ID: "P2", Name: "Nike Revolution 6", Category: "Fashion", Price: 3999, Rating: 4.3},
	}
	catalogRepo := catalogRepository.New(products, log)
	cs := catalogService.NewCatalogServiceWithRand(log, catalogRepo, rand.New(rand.NewSource(1)))

	items := &fakeItems{}
	svc := NewCartService(log, &fakeCartRepo{items: items}, cs, utils.New())
	return svc, items
}

func TestCartService_AddItem(t *testing.T) {
	svc, items := newTestCartService(t)
	ctx := context.Background()

	t.Run("adds a catalog product", func(t *testing.T) {
		err := svc.AddItem(ctx, "u1", cart.AddCartItemRequest{ProductID: "P1"})
		require.NoError(t, err)
		require.Len(t, items.items, 1)
		assert.Equal(t, "P1", items.items[0].ProductID)
		assert.NotEmpty(t, items.items[0].ID)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		err := svc.AddItem(ctx, "u1", cart.AddCartItemRequest{ProductID: "P999"})
		assert.ErrorIs(t, err, cart.ErrProductNotFound)
	})

	t.Run("rejects duplicate", func(t *testing.T) {
		err := svc.AddItem(ctx, "u1", cart.AddCartItemRequest{ProductID: "P1"})
		assert.ErrorIs(t, err, cart.ErrItemAlreadyInCart)
	})
}

func TestCartService_GetCart(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "u1", cart.AddCartItemRequest{ProductID: "P1"}))
	require.NoError(t, svc.AddItem(ctx, "u1", cart.AddCartItemRequest{ProductID: "P2"}))
	require.NoError(t, svc.AddItem(ctx, "u2", cart.AddCartItemRequest{ProductID: "P2"}))

	res, err := svc.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 13999+3999, res.Total)
	assert.Equal(t, "Samsung Galaxy M14", res.Items[0].ProductName)

	res, err = svc.GetCart(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.Total)
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, items := newTestCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "u1", cart.AddCartItemRequest{ProductID: "P1"}))
	itemID := items.items[0].ID

	t.Run("unknown item", func(t *testing.T) {
		err := svc.RemoveItem(ctx, "u1", "nope")
		assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
	})

	t.Run("other user cannot remove it", func(t *testing.T) {
		err := svc.RemoveItem(ctx, "u2", itemID)
		assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
	})

	t.Run("owner removes it", func(t *testing.T) {
		require.NoError(t, svc.RemoveItem(ctx, "u1", itemID))
		assert.Empty(t, items.items)
	})
}

func TestCartService_ClearCart(t *testing.T) {
	svc, items := newTestCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "u1", cart.AddCartItemRequest{ProductID: "P1"}))
	require.NoError(t, svc.AddItem(ctx, "u2", cart.AddCartItemRequest{ProductID: "P2"}))

	require.NoError(t, svc.ClearCart(ctx, "u1"))

	require.Len(t, items.items, 1)
	assert.Equal(t, "u2", items.items[0].UserID)

	// Clearing an already empty cart is not an error.
	require.NoError(t, svc.ClearCart(ctx, "u1"))
}
