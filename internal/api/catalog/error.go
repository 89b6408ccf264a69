package catalog

import (
	"ShopMate/pkg/response"
	"net/http"
)

var (
	ErrProductNotFound = response.NewError(http.StatusNotFound, "product not found")
	ErrEmptyCatalog    = response.NewError(http.StatusServiceUnavailable, "catalog is empty")
)
