package catalogHandler

import (
	catalogService "ShopMate/internal/api/catalog/service"
	"ShopMate/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs catalogService.ICatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		catalogService: cs,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	catalog := srv.Group("/catalog")

	// Read-only, no auth required
	catalog.Get("/products", h.FilterProducts)
	catalog.Get("/products/similar", h.SimilarProducts)
	catalog.Get("/deal-of-the-day", h.DealOfDay)
}
