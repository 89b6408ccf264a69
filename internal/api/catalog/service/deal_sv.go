package catalogService

import (
	"sort"

	catalogRepository "ShopMate/internal/api/catalog/repository"
	"ShopMate/internal/entity"
)

const (
	dealRatingThreshold = 4.5
	dealPoolSize        = 10
)

// DealOfDay draws one product uniformly at random from the top slice of the
// high-rating, low-price pool. The pool is recomputed per call and the draw is
// intentionally non-deterministic: repeated calls may surface different deals.
// Returns false only when the catalog itself is empty.
func (s *catalogService) DealOfDay() (entity.Product, bool) {
	if s.catalogRepo.Len() == 0 {
		return entity.Product{}, false
	}

	var candidates []entity.Product
	for _, p := range s.catalogRepo.All() {
		if p.Rating >= dealRatingThreshold {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Price < candidates[j].Price
		})
	} else {
		candidates = s.catalogRepo.All()
		catalogRepository.SortByRank(candidates)
	}

	if len(candidates) > dealPoolSize {
		candidates = candidates[:dealPoolSize]
	}

	s.rngMu.Lock()
	pick := candidates[s.rng.Intn(len(candidates))]
	s.rngMu.Unlock()

	return pick, true
}
