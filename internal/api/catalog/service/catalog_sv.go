package catalogService

import (
	catalogRepository "ShopMate/internal/api/catalog/repository"
	"ShopMate/internal/entity"

	"github.com/sirupsen/logrus"
)

func (s *catalogService) Filter(f catalogRepository.Filter) []entity.Product {
	results := s.catalogRepo.Filter(f)

	s.log.WithFields(logrus.Fields{
		"brand":       f.Brand,
		"category":    f.Category,
		"has_ceiling": f.HasPriceCeiling,
		"matches":     len(results),
	}).Debug("Catalog filter executed")

	return results
}

func (s *catalogService) GetByID(id string) (entity.Product, bool) {
	return s.catalogRepo.GetByID(id)
}

func (s *catalogService) SearchName(query string) []entity.Product {
	return s.catalogRepo.SearchName(query)
}

func (s *catalogService) FindSimilar(query string) (entity.Product, []entity.Product, bool) {
	base, similar, found := s.catalogRepo.FindSimilar(query)

	s.log.WithFields(logrus.Fields{
		"query":      query,
		"base_found": found,
		"neighbors":  len(similar),
	}).Debug("Similar product lookup executed")

	return base, similar, found
}

// TopRated returns the first n products of the unfiltered catalog in rank
// order. It is the graceful fallback when a filter matches nothing.
func (s *catalogService) TopRated(n int) []entity.Product {
	results := s.catalogRepo.Filter(catalogRepository.Filter{})
	if len(results) > n {
		results = results[:n]
	}
	return results
}
