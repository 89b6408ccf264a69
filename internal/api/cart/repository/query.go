package cartRepository

const (
	queryAddCartItem = `
		INSERT INTO cart_items (
			id,
			user_id,
			product_id,
			created_at
		) VALUES (
			:id,
			:user_id,
			:product_id,
			:created_at
		)
	`

	queryGetCartItemsByUser = `
		SELECT
			id,
			user_id,
			product_id,
			created_at
		FROM cart_items
		WHERE user_id = :user_id
		ORDER BY created_at ASC
	`

	queryGetCartItemByUserAndProduct = `
		SELECT
			id,
			user_id,
			product_id,
			created_at
		FROM cart_items
		WHERE user_id = :user_id AND product_id = :product_id
	`

	queryDeleteCartItem = `
		DELETE FROM cart_items
		WHERE id = :id AND user_id = :user_id
	`

	queryClearCartByUser = `
		DELETE FROM cart_items
		WHERE user_id = :user_id
	`
)
