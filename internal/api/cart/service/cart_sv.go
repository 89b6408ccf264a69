package cartService

import (
	"errors"
	"time"

	"ShopMate/internal/api/cart"
	"ShopMate/internal/entity"
	contextPkg "ShopMate/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *cartService) AddItem(ctx context.Context, userID string, req cart.AddCartItemRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, ok := s.catalogService.GetByID(req.ProductID); !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"product_id": req.ProductID,
		}).Warn("Attempt to add unknown product to cart")
		return cart.ErrProductNotFound
	}

	repo, err := s.cartRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Items.GetItemByUserAndProduct(ctx, userID, req.ProductID); err == nil {
		return cart.ErrItemAlreadyInCart
	} else if !errors.Is(err, cart.ErrCartItemNotFound) {
		return err
	}

	itemID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	item := entity.CartItem{
		ID:        itemID,
		UserID:    userID,
		ProductID: req.ProductID,
		CreatedAt: time.Now(),
	}

	if err := repo.Items.AddItem(ctx, item); err != nil {
		if errors.Is(err, cart.ErrItemAlreadyInCart) {
			return err
		}
		return cart.ErrAddCartItem
	}

	return nil
}

func (s *cartService) GetCart(ctx context.Context, userID string) (*cart.CartResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.cartRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	items, err := repo.Items.GetItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := &cart.CartResponse{Items: make([]cart.CartItemResponse, 0, len(items))}
	for _, item := range items {
		product, ok := s.catalogService.GetByID(item.ProductID)
		if !ok {
			// Dataset changed between runs; keep the row but without pricing.
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"product_id": item.ProductID,
			}).Warn("Cart item references product missing from catalog")
		}

		res.Items = append(res.Items, cart.CartItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Category:    product.Category,
			Price:       product.Price,
			AddedAt:     item.CreatedAt,
		})
		res.Total += product.Price
	}

	return res, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.cartRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	affected, err := repo.Items.DeleteItem(ctx, userID, itemID)
	if err != nil {
		return cart.ErrRemoveCartItem
	}
	if affected == 0 {
		return cart.ErrCartItemNotFound
	}

	return nil
}

func (s *cartService) ClearCart(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.cartRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Items.ClearByUser(ctx, userID); err != nil {
		return cart.ErrClearCart
	}

	return nil
}
