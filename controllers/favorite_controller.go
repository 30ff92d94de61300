package controllers

import (
	"github.com/gin-gonic/gin"

	"guaranihost/dto"
	apperrors "guaranihost/errors"
	"guaranihost/middleware"
	"guaranihost/models"
	"guaranihost/response"
	"guaranihost/services"
)

type FavoriteController struct {
	Favorites services.FavoriteStore
}

func NewFavoriteController(favorites services.FavoriteStore) FavoriteController {
	return FavoriteController{Favorites: favorites}
}

func (f FavoriteController) available(c *gin.Context) bool {
	if f.Favorites == nil {
		handleError(c, apperrors.NewAppError(apperrors.ErrCodeNotConfigured, "Los favoritos no están disponibles", nil), nil)
		return false
	}
	return true
}

func (f FavoriteController) GetFavorites(c *gin.Context) {
	if !f.available(c) {
		return
	}
	ctx := c.Request.Context()
	session := middleware.CurrentSession(c)

	props, err := f.Favorites.List(ctx, session, models.ResourceProperty)
	if err != nil {
		handleError(c, err, nil)
		return
	}
	tours, err := f.Favorites.List(ctx, session, models.ResourceTour)
	if err != nil {
		handleError(c, err, nil)
		return
	}
	response.Success(c, dto.FavoritesView{Properties: props, Tours: tours})
}

// ToggleFavorite marca o desmarca una propiedad o un tour
func (f FavoriteController) ToggleFavorite(c *gin.Context) {
	kind := models.ResourceKind(c.Param("kind"))
	if kind != models.ResourceProperty && kind != models.ResourceTour {
		response.BadRequest(c, "Tipo de favorito inválido")
		return
	}
	if !f.available(c) {
		return
	}
	id := c.Param("id")
	fav, err := f.Favorites.Toggle(c.Request.Context(), middleware.CurrentSession(c), kind, id)
	if err != nil {
		handleError(c, err, nil)
		return
	}
	response.Success(c, dto.FavoriteToggle{Kind: kind, ID: id, Favorite: fav})
}
