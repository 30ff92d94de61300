package services

import (
	"context"

	"github.com/redis/go-redis/v9"

	"guaranihost/models"
)

// FavoriteStore favoritos del usuario. Siempre recibe la sesión explícita.
type FavoriteStore interface {
	List(ctx context.Context, session models.Session, kind models.ResourceKind) ([]string, error)
	Toggle(ctx context.Context, session models.Session, kind models.ResourceKind, id string) (bool, error)
}

// RedisFavorites guarda cada tipo de favorito en un set de Redis
type RedisFavorites struct {
	rdb redis.Cmdable
}

func NewRedisFavorites(rdb redis.Cmdable) *RedisFavorites {
	return &RedisFavorites{rdb: rdb}
}

func favoritesKey(userID string, kind models.ResourceKind) string {
	return "favorites:" + userID + ":" + string(kind)
}

func (f *RedisFavorites) List(ctx context.Context, session models.Session, kind models.ResourceKind) ([]string, error) {
	if !session.Authenticated() {
		return []string{}, nil
	}
	ids, err := f.rdb.SMembers(ctx, favoritesKey(session.UserID, kind)).Result()
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Toggle marca o desmarca id y devuelve el estado final
func (f *RedisFavorites) Toggle(ctx context.Context, session models.Session, kind models.ResourceKind, id string) (bool, error) {
	if !session.Authenticated() {
		return false, errNoSession()
	}
	key := favoritesKey(session.UserID, kind)
	isMember, err := f.rdb.SIsMember(ctx, key, id).Result()
	if err != nil {
		return false, err
	}
	if isMember {
		return false, f.rdb.SRem(ctx, key, id).Err()
	}
	return true, f.rdb.SAdd(ctx, key, id).Err()
}
