package catalog

import "ShopMate/internal/entity"

type FilterProductsRequest struct {
	Brand    string `query:"brand" validate:"omitempty,max=64"`
	Category string `query:"category" validate:"omitempty,max=64"`
	MaxPrice int    `query:"max_price" validate:"omitempty,min=0"`
}

type ProductListResponse struct {
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
}

type SimilarProductsResponse struct {
	Base    entity.Product   `json:"base"`
	Similar []entity.Product `json:"similar"`
}

type DealOfDayResponse struct {
	Deal entity.Product `json:"deal"`
}
