package controllers

import (
	"github.com/gin-gonic/gin"

	"guaranihost/dto"
	"guaranihost/filters"
	"guaranihost/middleware"
	"guaranihost/models"
	"guaranihost/response"
	"guaranihost/services"
	"guaranihost/services/logger"
)

type TourController struct {
	Tours     services.TourAPI
	Bookings  *services.BookingFacade
	Filters   services.FiltersStore
	Favorites services.FavoriteStore
	Logger    logger.Logger
}

func NewTourController(tours services.TourAPI, bookings *services.BookingFacade, store services.FiltersStore, favorites services.FavoriteStore, log logger.Logger) TourController {
	if log == nil {
		log = logger.Nop{}
	}
	return TourController{
		Tours:     tours,
		Bookings:  bookings,
		Filters:   store,
		Favorites: favorites,
		Logger:    log,
	}
}

// GetTours godoc
// @Summary Búsqueda de tours con filtros y orden
// @Tags tours
// @Produce json
// @Param search query string false "búsqueda por título, descripción o ubicación"
// @Param location query string false "ubicación"
// @Param status query string false "estado"
// @Param minPrice query number false "precio mínimo"
// @Param maxPrice query number false "precio máximo"
// @Param sort query string false "price_asc, price_desc, newest o rating"
// @Success 200 {object} response.Response
// @Router /tours [get]
func (t TourController) GetTours(c *gin.Context) {
	var q dto.TourListQuery
	if !bindQuery(c, &q) {
		return
	}
	f := rememberFilters(c, t.Filters, t.Logger, screenTours, q.ListFilters, q.Reset)
	view := dto.TourListView{Tours: []dto.TourView{}, Filters: f, Locations: []string{}}

	list, err := t.Tours.ListTours(c.Request.Context(), nil)
	if err != nil {
		handleError(c, err, view)
		return
	}

	all := list.Tours
	tours := filters.Apply(all, f.Spec(filters.TourSearchFields), filters.TourFields)
	view.Locations = filters.Distinct(all, func(t models.Tour) string { return t.Location })
	if len(tours) == 0 && f.Search != "" {
		candidates := append([]string{}, view.Locations...)
		for _, tour := range all {
			candidates = append(candidates, tour.Title)
		}
		view.Suggestion = filters.Suggest(f.Search, candidates)
	}
	view.Tours = dto.NewTourViews(tours)
	t.markFavorites(c, view.Tours)
	response.Success(c, view)
}

func (t TourController) markFavorites(c *gin.Context, views []dto.TourView) {
	session := middleware.CurrentSession(c)
	if t.Favorites == nil || !session.Authenticated() || len(views) == 0 {
		return
	}
	ids, err := t.Favorites.List(c.Request.Context(), session, models.ResourceTour)
	if err != nil {
		t.Logger.Warn("favoritos de %s: %v", session.UserID, err)
		return
	}
	fav := make(map[string]bool, len(ids))
	for _, id := range ids {
		fav[id] = true
	}
	for i := range views {
		views[i].Favorite = fav[views[i].ID]
	}
}

// tour busca el tour de la URL; responde 404 si no existe
func (t TourController) tour(c *gin.Context) (*models.Tour, bool) {
	tour, err := t.Tours.GetTourByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, nil)
		return nil, false
	}
	if tour == nil {
		response.NotFound(c)
		return nil, false
	}
	return tour, true
}

func (t TourController) GetTour(c *gin.Context) {
	tour, ok := t.tour(c)
	if !ok {
		return
	}
	view := dto.NewTourView(*tour)
	views := []dto.TourView{view}
	t.markFavorites(c, views)
	response.Success(c, dto.TourDetailView{
		Tour:     views[0],
		Bookable: tour.Status == models.TourAvailable,
	})
}

// QuoteTour calcula el total y si la reserva es posible, sin enviarla
func (t TourController) QuoteTour(c *gin.Context) {
	var req dto.TourQuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, ok := t.tour(c)
	if !ok {
		return
	}
	response.Success(c, services.NewTourBooking(*tour, req).Quote())
}

// BookTour godoc
// @Summary Reserva un tour para una fecha
// @Tags tours
// @Accept json
// @Produce json
// @Param id path string true "id del tour"
// @Param body body dto.TourQuoteRequest true "fecha y huéspedes"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /tours/{id}/bookings [post]
func (t TourController) BookTour(c *gin.Context) {
	var req dto.TourQuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := services.ValidateTourDate(req.Date); err != nil {
		handleError(c, err, nil)
		return
	}
	tour, ok := t.tour(c)
	if !ok {
		return
	}
	booking, err := t.Bookings.CreateBooking(c.Request.Context(), middleware.CurrentSession(c), services.NewTourBooking(*tour, req))
	if err != nil {
		handleError(c, err, nil)
		return
	}
	response.Created(c, "Reserva creada", dto.NewBookingView(*booking))
}
