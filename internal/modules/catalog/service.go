package catalog

import (
	"context"
	"log/slog"
)

// Source fetches products from the backend.
type Source interface {
	FetchProducts(ctx context.Context) ([]Product, error)
	FetchProduct(ctx context.Context, id int64) (Product, error)
}

type Service struct {
	src   Source
	cache Cache
	log   *slog.Logger
}

func NewService(src Source, cache Cache, log *slog.Logger) *Service {
	if cache == nil {
		cache = NewMemoryCache(0)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{src: src, cache: cache, log: log}
}

// Products returns the catalog snapshot, from cache when fresh.
// Cache failures degrade to a direct fetch.
func (s *Service) Products(ctx context.Context) ([]Product, error) {
	products, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn("catalog_cache_get_failed", "err", err)
	}
	if ok {
		return products, nil
	}

	products, err = s.src.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, products); err != nil {
		s.log.Warn("catalog_cache_set_failed", "err", err)
	}
	return products, nil
}

// Product fetches one product by id, bypassing the snapshot cache.
func (s *Service) Product(ctx context.Context, id int64) (Product, error) {
	return s.src.FetchProduct(ctx, id)
}

func (s *Service) Search(ctx context.Context, f Filters) ([]Product, error) {
	all, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(all, f), nil
}

func (s *Service) Refresh(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}
