package controllers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"guaranihost/dto"
	"guaranihost/models"
	"guaranihost/response"
	"guaranihost/services"
)

type HomeController struct {
	Properties services.PropertyAPI
	Tours      services.TourAPI
}

func NewHomeController(props services.PropertyAPI, tours services.TourAPI) HomeController {
	return HomeController{Properties: props, Tours: tours}
}

// GetHome godoc
// @Summary Propiedades y tours destacados
// @Tags home
// @Produce json
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /home [get]
func (h HomeController) GetHome(c *gin.Context) {
	var (
		props []models.Property
		tours []models.Tour
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		props, err = h.Properties.ListFeaturedProperties(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		tours, err = h.Tours.ListFeaturedTours(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		handleError(c, err, dto.HomeView{FeaturedProperties: []dto.PropertyView{}, FeaturedTours: []dto.TourView{}})
		return
	}
	response.Success(c, dto.HomeView{
		FeaturedProperties: dto.NewPropertyViews(props),
		FeaturedTours:      dto.NewTourViews(tours),
	})
}
