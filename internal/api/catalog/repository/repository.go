package catalogRepository

import (
	"ShopMate/internal/entity"

	"github.com/sirupsen/logrus"
)

// Filter is the predicate set for a catalog query. Zero-valued fields are
// "not supplied": an all-zero Filter returns the whole catalog in rank order.
type Filter struct {
	Brand           string
	Category        string
	PriceCeiling    int
	HasPriceCeiling bool
}

type Repository interface {
	All() []entity.Product
	Len() int
	GetByID(id string) (entity.Product, bool)
	Filter(f Filter) []entity.Product
	SearchName(query string) []entity.Product
	FindSimilar(query string) (entity.Product, []entity.Product, bool)
}

func New(products []entity.Product, log *logrus.Logger) Repository {
	return newStore(products, log)
}
