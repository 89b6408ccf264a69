package cartHandler

import (
	cartService "ShopMate/internal/api/cart/service"
	"ShopMate/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	cartService cartService.ICartService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs cartService.ICartService,
) *CartHandler {
	return &CartHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		cartService: cs,
	}
}

func (h *CartHandler) Start(srv fiber.Router) {
	cart := srv.Group("/cart")

	cart.Post("/items", h.middleware.NewTokenMiddleware, h.AddItem)
	cart.Get("", h.middleware.NewTokenMiddleware, h.GetCart)
	cart.Delete("/items/:id", h.middleware.NewTokenMiddleware, h.RemoveItem)
	cart.Delete("", h.middleware.NewTokenMiddleware, h.ClearCart)
}
