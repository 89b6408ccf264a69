package catalogHandler

import (
	"ShopMate/internal/api/catalog"
	catalogRepository "ShopMate/internal/api/catalog/repository"
	"ShopMate/pkg/handlerUtil"
	"ShopMate/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *CatalogHandler) FilterProducts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req catalog.FilterProductsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"brand":      req.Brand,
		"category":   req.Category,
		"max_price":  req.MaxPrice,
	}).Debug("Processing catalog filter request")

	results := h.catalogService.Filter(catalogRepository.Filter{
		Brand:           req.Brand,
		Category:        req.Category,
		PriceCeiling:    req.MaxPrice,
		HasPriceCeiling: req.MaxPrice > 0,
	})

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, catalog.ProductListResponse{
		Products: results,
		Total:    len(results),
	})
}

func (h *CatalogHandler) SimilarProducts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	query := ctx.Query("q")
	if query == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			fiber.NewError(fiber.StatusBadRequest, "query parameter q is required"), ctx.Path())
	}

	base, similar, found := h.catalogService.FindSimilar(query)
	if !found {
		return errHandler.Handle(ctx, requestID, catalog.ErrProductNotFound, ctx.Path(), "similar_products")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, catalog.SimilarProductsResponse{
		Base:    base,
		Similar: similar,
	})
}

func (h *CatalogHandler) DealOfDay(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	deal, ok := h.catalogService.DealOfDay()
	if !ok {
		return errHandler.Handle(ctx, requestID, catalog.ErrEmptyCatalog, ctx.Path(), "deal_of_day")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, catalog.DealOfDayResponse{Deal: deal})
}
