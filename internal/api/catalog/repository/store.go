package catalogRepository

import (
	"sort"
	"strings"

	"ShopMate/internal/entity"

	"github.com/sirupsen/logrus"
)

// store is the read-only in-memory catalog view. Rows are loaded once and
// never mutated, so every method is safe for concurrent readers.
type store struct {
	products   []entity.Product
	namesLower []string
	log        *logrus.Logger
}

func newStore(products []entity.Product, log *logrus.Logger) *store {
	namesLower := make([]string, len(products))
	for i, p := range products {
		namesLower[i] = strings.ToLower(p.Name)
	}

	return &store{
		products:   products,
		namesLower: namesLower,
		log:        log,
	}
}

func (s *store) All() []entity.Product {
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *store) Len() int {
	return len(s.products)
}

func (s *store) GetByID(id string) (entity.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Filter returns every product matching all supplied predicates, ranked by
// rating descending with price ascending as the tie-break. An empty result is
// a valid outcome, never an error.
func (s *store) Filter(f Filter) []entity.Product {
	var out []entity.Product

	for i, p := range s.products {
		if f.Brand != "" && !strings.Contains(s.namesLower[i], strings.ToLower(f.Brand)) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.HasPriceCeiling && p.Price > f.PriceCeiling {
			continue
		}
		out = append(out, p)
	}

	SortByRank(out)
	return out
}

// SearchName returns every product whose name contains the query, in catalog
// order. Unlike Filter this does not re-rank: the first stored match leads.
func (s *store) SearchName(query string) []entity.Product {
	query = strings.ToLower(query)

	var out []entity.Product
	for i, p := range s.products {
		if strings.Contains(s.namesLower[i], query) {
			out = append(out, p)
		}
	}
	return out
}

// FindSimilar anchors on the first product whose name contains the query,
// then collects every other product of the same category priced within a
// symmetric ±30% band around the anchor. The bool reports whether an anchor
// was found at all; a found anchor with no neighbors is a distinct outcome.
func (s *store) FindSimilar(query string) (entity.Product, []entity.Product, bool) {
	query = strings.ToLower(query)

	baseIdx := -1
	for i := range s.products {
		if strings.Contains(s.namesLower[i], query) {
			baseIdx = i
			break
		}
	}
	if baseIdx == -1 {
		return entity.Product{}, nil, false
	}

	base := s.products[baseIdx]
	low := int(float64(base.Price) * 0.7)
	high := int(float64(base.Price) * 1.3)

	var similar []entity.Product
	for _, p := range s.products {
		if p.ID == base.ID {
			continue
		}
		if p.Category != base.Category {
			continue
		}
		if p.Price < low || p.Price > high {
			continue
		}
		similar = append(similar, p)
	}

	SortByRank(similar)
	return base, similar, true
}

// SortByRank orders products by rating descending, then price ascending.
func SortByRank(products []entity.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Rating != products[j].Rating {
			return products[i].Rating > products[j].Rating
		}
		return products[i].Price < products[j].Price
	})
}
