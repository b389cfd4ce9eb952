package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"learning-portal/models"

	"github.com/redis/go-redis/v9"
)

const lookupCacheTTL = time.Hour

// ReferenceService serves the static lookup tables through an optional
// redis read-through cache. A nil client means every call hits the store.
type ReferenceService struct {
	store ReferenceStore
	cache *redis.Client
}

func NewReferenceService(store ReferenceStore, cache *redis.Client) *ReferenceService {
	return &ReferenceService{
		store: store,
		cache: cache,
	}
}

func (s *ReferenceService) Genders(ctx context.Context) ([]models.Lookup, error) {
	return cached(ctx, s.cache, "lookup:genders", func() ([]models.Lookup, error) {
		return s.store.ListGenders(ctx)
	})
}

func (s *ReferenceService) Countries(ctx context.Context) ([]models.Lookup, error) {
	return cached(ctx, s.cache, "lookup:countries", func() ([]models.Lookup, error) {
		return s.store.ListCountries(ctx)
	})
}

func (s *ReferenceService) CurrentStatuses(ctx context.Context) ([]models.Lookup, error) {
	return cached(ctx, s.cache, "lookup:current_statuses", func() ([]models.Lookup, error) {
		return s.store.ListCurrentStatuses(ctx)
	})
}

func (s *ReferenceService) Degrees(ctx context.Context) ([]models.Lookup, error) {
	return cached(ctx, s.cache, "lookup:degrees", func() ([]models.Lookup, error) {
		return s.store.ListDegrees(ctx)
	})
}

func (s *ReferenceService) Designations(ctx context.Context) ([]models.Lookup, error) {
	return cached(ctx, s.cache, "lookup:designations", func() ([]models.Lookup, error) {
		return s.store.ListDesignations(ctx)
	})
}

func (s *ReferenceService) States(ctx context.Context, countryID int) ([]models.State, error) {
	key := fmt.Sprintf("lookup:states:%d", countryID)
	return cached(ctx, s.cache, key, func() ([]models.State, error) {
		return s.store.ListStates(ctx, countryID)
	})
}

func (s *ReferenceService) Sidebar(ctx context.Context) ([]models.AppModule, error) {
	return cached(ctx, s.cache, "sidebar:modules", func() ([]models.AppModule, error) {
		return s.store.ListAppModules(ctx)
	})
}

// cached tries the redis key first and falls back to load, storing the
// result on the way out. Cache errors are not surfaced; the database
// answer always wins.
func cached[T any](ctx context.Context, cache *redis.Client, key string, load func() (T, error)) (T, error) {
	if cache != nil {
		if raw, err := cache.Get(ctx, key).Result(); err == nil {
			var value T
			if err := json.Unmarshal([]byte(raw), &value); err == nil {
				return value, nil
			}
		}
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if cache != nil {
		if raw, err := json.Marshal(value); err == nil {
			cache.Set(ctx, key, raw, lookupCacheTTL)
		}
	}
	return value, nil
}
