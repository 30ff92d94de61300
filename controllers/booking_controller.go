package controllers

import (
	"github.com/gin-gonic/gin"

	"guaranihost/dto"
	"guaranihost/filters"
	"guaranihost/middleware"
	"guaranihost/response"
	"guaranihost/services"
)

type BookingController struct {
	Bookings *services.BookingFacade
}

func NewBookingController(bookings *services.BookingFacade) BookingController {
	return BookingController{Bookings: bookings}
}

func (b BookingController) list(c *gin.Context, q dto.BookingListQuery) ([]dto.BookingView, error) {
	bookings, err := b.Bookings.ListBookings(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		return []dto.BookingView{}, err
	}
	equals := map[string]string{}
	if q.Status != "" {
		equals["status"] = q.Status
	}
	if q.Kind != "" {
		equals["kind"] = q.Kind
	}
	spec := filters.Spec{
		Search:       q.Search,
		SearchFields: filters.BookingSearchFields,
		Equals:       equals,
		Sort:         filters.ParseSortKey(q.Sort),
	}
	return dto.NewBookingViews(filters.Apply(bookings, spec, filters.BookingFields)), nil
}

// GetBookings godoc
// @Summary Mis reservas de propiedades y tours
// @Tags bookings
// @Produce json
// @Param status query string false "pending, confirmed, cancelled o completed"
// @Param kind query string false "property o tour"
// @Param search query string false "nombre del recurso"
// @Param sort query string false "price_asc, price_desc o newest"
// @Success 200 {object} response.Response
// @Router /bookings [get]
func (b BookingController) GetBookings(c *gin.Context) {
	var q dto.BookingListQuery
	if !bindQuery(c, &q) {
		return
	}
	views, err := b.list(c, q)
	if err != nil {
		handleError(c, err, views)
		return
	}
	response.Success(c, views)
}

// UpdateBooking edita una reserva pendiente o confirmada y devuelve la
// lista actualizada
func (b BookingController) UpdateBooking(c *gin.Context) {
	var req dto.BookingUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := b.Bookings.UpdateBooking(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), req); err != nil {
		handleError(c, err, nil)
		return
	}
	b.respondWithList(c, "Reserva actualizada")
}

func (b BookingController) CancelBooking(c *gin.Context) {
	if err := b.Bookings.CancelBooking(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		handleError(c, err, nil)
		return
	}
	b.respondWithList(c, "Reserva cancelada")
}

func (b BookingController) respondWithList(c *gin.Context, mess string) {
	views, err := b.list(c, dto.BookingListQuery{})
	if err != nil {
		handleError(c, err, views)
		return
	}
	response.SuccessWithMessage(c, mess, views)
}
