package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"guaranihost/dto"
)

const lastFiltersTTL = 30 * time.Minute

// FiltersStore recuerda los últimos filtros de cada pantalla por sesión
type FiltersStore interface {
	SaveLastFilters(ctx context.Context, sessionID, screen string, filters dto.ListFilters) error
	GetLastFilters(ctx context.Context, sessionID, screen string) (*dto.ListFilters, error)
	ClearLastFilters(ctx context.Context, sessionID, screen string) error
}

// RedisFiltersStore guarda los filtros en Redis
type RedisFiltersStore struct {
	rdb redis.Cmdable
}

func NewRedisFiltersStore(rdb redis.Cmdable) *RedisFiltersStore {
	return &RedisFiltersStore{rdb: rdb}
}

func filtersKey(sessionID, screen string) string {
	return "last_filters:" + screen + ":" + sessionID
}

func (s *RedisFiltersStore) SaveLastFilters(ctx context.Context, sessionID, screen string, filters dto.ListFilters) error {
	return SetToRedis(ctx, s.rdb, filtersKey(sessionID, screen), filters, lastFiltersTTL)
}

// GetLastFilters devuelve nil, nil si la sesión no tiene filtros guardados
func (s *RedisFiltersStore) GetLastFilters(ctx context.Context, sessionID, screen string) (*dto.ListFilters, error) {
	var filters dto.ListFilters
	found, err := GetFromRedis(ctx, s.rdb, filtersKey(sessionID, screen), &filters)
	if err != nil || !found {
		return nil, err
	}
	return &filters, nil
}

func (s *RedisFiltersStore) ClearLastFilters(ctx context.Context, sessionID, screen string) error {
	return DeleteFromRedis(ctx, s.rdb, filtersKey(sessionID, screen))
}

// MergeFilters completa los filtros nuevos con los guardados
func MergeFilters(old, new dto.ListFilters) dto.ListFilters {
	new.Search = orString(new.Search, old.Search)
	new.City = orString(new.City, old.City)
	new.Location = orString(new.Location, old.Location)
	new.Status = orString(new.Status, old.Status)
	new.Sort = orString(new.Sort, old.Sort)

	// si el usuario cambia un extremo y el rango queda invertido, se descarta el otro
	if new.MinPrice != nil && old.MaxPrice != nil && *new.MinPrice > *old.MaxPrice {
		new.MaxPrice = orFloatPointer(new.MaxPrice, nil)
	} else {
		new.MaxPrice = orFloatPointer(new.MaxPrice, old.MaxPrice)
	}

	if new.MaxPrice != nil && old.MinPrice != nil && *new.MaxPrice < *old.MinPrice {
		new.MinPrice = orFloatPointer(new.MinPrice, nil)
	} else {
		new.MinPrice = orFloatPointer(new.MinPrice, old.MinPrice)
	}
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
