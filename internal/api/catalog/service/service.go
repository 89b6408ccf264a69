package catalogService

import (
	"math/rand"
	"sync"
	"time"

	catalogRepository "ShopMate/internal/api/catalog/repository"
	"ShopMate/internal/entity"

	"github.com/sirupsen/logrus"
)

type ICatalogService interface {
	Filter(f catalogRepository.Filter) []entity.Product
	GetByID(id string) (entity.Product, bool)
	SearchName(query string) []entity.Product
	FindSimilar(query string) (entity.Product, []entity.Product, bool)
	TopRated(n int) []entity.Product
	DealOfDay() (entity.Product, bool)
}

type catalogService struct {
	log         *logrus.Logger
	catalogRepo catalogRepository.Repository

	// rngMu serializes draws; rand.Rand is not safe for concurrent use and
	// DealOfDay is reachable from concurrent requests.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewCatalogService(log *logrus.Logger, catalogRepo catalogRepository.Repository) ICatalogService {
	return NewCatalogServiceWithRand(log, catalogRepo, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewCatalogServiceWithRand injects the random source behind DealOfDay so
// tests can pin the draw.
func NewCatalogServiceWithRand(log *logrus.Logger, catalogRepo catalogRepository.Repository, rng *rand.Rand) ICatalogService {
	return &catalogService{
		log:         log,
		catalogRepo: catalogRepo,
		rng:         rng,
	}
}
