package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/karlseguin/ccache/v3"
	"github.com/redis/go-redis/v9"

	"guaranihost/dto"
	"guaranihost/models"
	"guaranihost/services/logger"
)

const (
	localCacheTTL = 2 * time.Minute
	cachePrefix   = "guaranihost:"
)

// ListCache caché de dos niveles para listados públicos: ccache en memoria
// y Redis compartido entre instancias. Redis es opcional.
type ListCache struct {
	local  *ccache.Cache[[]byte]
	rdb    redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

// NewListCache crea la caché; rdb puede ser nil
func NewListCache(rdb redis.Cmdable, ttl time.Duration, log logger.Logger) *ListCache {
	if log == nil {
		log = logger.Nop{}
	}
	return &ListCache{
		local:  ccache.New(ccache.Configure[[]byte]().MaxSize(1000)),
		rdb:    rdb,
		ttl:    ttl,
		logger: log,
	}
}

// Get busca primero en memoria y después en Redis
func (c *ListCache) Get(ctx context.Context, key string, target interface{}) bool {
	if item := c.local.Get(key); item != nil && !item.Expired() {
		if err := json.Unmarshal(item.Value(), target); err == nil {
			c.logger.Debug("cache HIT (local): key=%s", key)
			return true
		}
	}
	if c.rdb == nil {
		return false
	}

	data, err := c.rdb.Get(ctx, cachePrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache GET redis key=%s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		c.logger.Warn("cache decode key=%s: %v", key, err)
		return false
	}
	c.local.Set(key, data, c.localTTL())
	c.logger.Debug("cache HIT (redis): key=%s", key)
	return true
}

// Set guarda en ambos niveles
func (c *ListCache) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode key=%s: %v", key, err)
		return
	}
	c.local.Set(key, data, c.localTTL())
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, cachePrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache SET redis key=%s: %v", key, err)
	}
}

// Delete borra key de ambos niveles
func (c *ListCache) Delete(ctx context.Context, key string) {
	c.local.Delete(key)
	if c.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, c.rdb, cachePrefix+key); err != nil {
		c.logger.Warn("cache DELETE redis key=%s: %v", key, err)
	}
}

func (c *ListCache) localTTL() time.Duration {
	if c.ttl > 0 && c.ttl < localCacheTTL {
		return c.ttl
	}
	return localCacheTTL
}

// QueryKey arma una clave estable a partir de los parámetros de una consulta
func QueryKey(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return prefix
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
		b.WriteByte('&')
	}
	sum := md5.Sum([]byte(b.String()))
	return prefix + ":" + hex.EncodeToString(sum[:])
}

const (
	keyFeaturedProperties = "properties:featured"
	keyFeaturedTours      = "tours:featured"
	keyTours              = "tours"
	keyTour               = "tour"
)

// CachedAPI cachea los listados públicos (destacados y tours). Los datos
// del usuario (sus propiedades, reservas, sesión) nunca se cachean.
type CachedAPI struct {
	API
	cache *ListCache
}

func NewCachedAPI(api API, cache *ListCache) *CachedAPI {
	return &CachedAPI{API: api, cache: cache}
}

func (a *CachedAPI) ListFeaturedProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	if a.cache.Get(ctx, keyFeaturedProperties, &out) {
		return out, nil
	}
	out, err := a.API.ListFeaturedProperties(ctx)
	if err != nil {
		return nil, err
	}
	a.cache.Set(ctx, keyFeaturedProperties, out)
	return out, nil
}

func (a *CachedAPI) ListFeaturedTours(ctx context.Context) ([]models.Tour, error) {
	var out []models.Tour
	if a.cache.Get(ctx, keyFeaturedTours, &out) {
		return out, nil
	}
	out, err := a.API.ListFeaturedTours(ctx)
	if err != nil {
		return nil, err
	}
	a.cache.Set(ctx, keyFeaturedTours, out)
	return out, nil
}

func (a *CachedAPI) ListTours(ctx context.Context, query map[string]string) (*dto.TourList, error) {
	key := QueryKey(keyTours, query)
	var out dto.TourList
	if a.cache.Get(ctx, key, &out) {
		return &out, nil
	}
	list, err := a.API.ListTours(ctx, query)
	if err != nil {
		return nil, err
	}
	a.cache.Set(ctx, key, list)
	return list, nil
}

func (a *CachedAPI) GetTourByID(ctx context.Context, id string) (*models.Tour, error) {
	key := keyTour + ":" + id
	var out models.Tour
	if a.cache.Get(ctx, key, &out) {
		return &out, nil
	}
	tour, err := a.API.GetTourByID(ctx, id)
	if err != nil || tour == nil {
		return tour, err
	}
	a.cache.Set(ctx, key, tour)
	return tour, nil
}

// las escrituras de propiedades pueden cambiar los destacados
func (a *CachedAPI) CreateProperty(ctx context.Context, payload dto.PropertyPayload) (*models.Property, error) {
	p, err := a.API.CreateProperty(ctx, payload)
	if err == nil {
		a.cache.Delete(ctx, keyFeaturedProperties)
	}
	return p, err
}

func (a *CachedAPI) UpdateProperty(ctx context.Context, id string, payload dto.PropertyPayload) (*models.Property, error) {
	p, err := a.API.UpdateProperty(ctx, id, payload)
	if err == nil {
		a.cache.Delete(ctx, keyFeaturedProperties)
	}
	return p, err
}

func (a *CachedAPI) DeleteProperty(ctx context.Context, id string) error {
	err := a.API.DeleteProperty(ctx, id)
	if err == nil {
		a.cache.Delete(ctx, keyFeaturedProperties)
	}
	return err
}

// Refresh vuelve a pedir los destacados y reemplaza la caché
func (a *CachedAPI) Refresh(ctx context.Context) error {
	props, err := a.API.ListFeaturedProperties(ctx)
	if err != nil {
		return err
	}
	a.cache.Set(ctx, keyFeaturedProperties, props)

	tours, err := a.API.ListFeaturedTours(ctx)
	if err != nil {
		return err
	}
	a.cache.Set(ctx, keyFeaturedTours, tours)
	return nil
}
