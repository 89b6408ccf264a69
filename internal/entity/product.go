package entity

// Product is one catalog row. The catalog is loaded once at startup and never
// mutated afterwards; brand is not a separate column, it lives inside Name and
// is detected at query time.
type Product struct {
	ID       string  `json:"product_id" db:"product_id"`
	Name     string  `json:"product_name" db:"product_name"`
	Category string  `json:"category" db:"category"`
	Price    int     `json:"price" db:"price"`
	Rating   float64 `json:"rating" db:"rating"`
}
