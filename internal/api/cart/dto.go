package cart

import "time"

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
}

type CartItemResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	AddedAt     time.Time `json:"added_at"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int                `json:"total"`
}
