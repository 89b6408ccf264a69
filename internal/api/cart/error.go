package cart

import (
	"ShopMate/pkg/response"
	"net/http"
)

var (
	ErrProductNotFound   = response.NewError(http.StatusNotFound, "product not found in catalog")
	ErrItemAlreadyInCart = response.NewError(http.StatusConflict, "product already in cart")
	ErrCartItemNotFound  = response.NewError(http.StatusNotFound, "cart item not found")
	ErrAddCartItem       = response.NewError(http.StatusInternalServerError, "failed to add item to cart")
	ErrRemoveCartItem    = response.NewError(http.StatusInternalServerError, "failed to remove item from cart")
	ErrClearCart         = response.NewError(http.StatusInternalServerError, "failed to clear cart")
)
