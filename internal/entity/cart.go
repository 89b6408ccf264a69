package entity

import "time"

type CartItem struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ProductID string    `db:"product_id"`
	CreatedAt time.Time `db:"created_at"`
}
