package cartService

import (
	"context"

	cartRepository "ShopMate/internal/api/cart/repository"
	"ShopMate/internal/api/cart"
	catalogService "ShopMate/internal/api/catalog/service"
	"ShopMate/pkg/utils"

	"github.com/sirupsen/logrus"
)

type ICartService interface {
	AddItem(ctx context.Context, userID string, req cart.AddCartItemRequest) error
	GetCart(ctx context.Context, userID string) (*cart.CartResponse, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
	ClearCart(ctx context.Context, userID string) error
}

type cartService struct {
	log            *logrus.Logger
	cartRepo       cartRepository.Repository
	catalogService catalogService.ICatalogService
	utils          utils.IUtils
}

func NewCartService(
	log *logrus.Logger,
	cartRepo cartRepository.Repository,
	cs catalogService.ICatalogService,
	utils utils.IUtils,
) ICartService {
	return &cartService{
		log:            log,
		cartRepo:       cartRepo,
		catalogService: cs,
		utils:          utils,
	}
}
