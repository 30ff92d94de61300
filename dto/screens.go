package dto

import "guaranihost/models"

// HomeView es la pantalla de inicio
type HomeView struct {
	FeaturedProperties []PropertyView `json:"featuredProperties"`
	FeaturedTours      []TourView     `json:"featuredTours"`
}

// StagedImageView una imagen del buffer de la sesión
type StagedImageView struct {
	Index      int    `json:"index"`
	PreviewURL string `json:"previewUrl"`
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	Primary    bool   `json:"primary"`
}

// StagingView estado del buffer de imágenes de la sesión
type StagingView struct {
	Images []StagedImageView `json:"images"`
	Count  int               `json:"count"`
	Max    int               `json:"max"`
}

// NewStagingView arma la vista del buffer
func NewStagingView(items []models.StagedImage, max int) StagingView {
	images := make([]StagedImageView, len(items))
	for i, it := range items {
		images[i] = StagedImageView{
			Index:      i,
			PreviewURL: it.PreviewURL,
			Name:       it.File.Name,
			Size:       it.File.Size,
			Primary:    i == 0,
		}
	}
	return StagingView{Images: images, Count: len(items), Max: max}
}

// FavoritesView ids marcados como favoritos por el usuario
type FavoritesView struct {
	Properties []string `json:"properties"`
	Tours      []string `json:"tours"`
}

// FavoriteToggle resultado de marcar o desmarcar un favorito
type FavoriteToggle struct {
	Kind     models.ResourceKind `json:"kind"`
	ID       string              `json:"id"`
	Favorite bool                `json:"favorite"`
}
