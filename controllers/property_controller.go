package controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"guaranihost/dto"
	"guaranihost/filters"
	"guaranihost/middleware"
	"guaranihost/models"
	"guaranihost/response"
	"guaranihost/services"
	"guaranihost/services/logger"
)

const defaultPageSize = 10

type PropertyController struct {
	Properties *services.PropertyService
	API        services.PropertyAPI
	Bookings   *services.BookingFacade
	Filters    services.FiltersStore
	Logger     logger.Logger
}

func NewPropertyController(props *services.PropertyService, api services.PropertyAPI, bookings *services.BookingFacade, store services.FiltersStore, log logger.Logger) PropertyController {
	if log == nil {
		log = logger.Nop{}
	}
	return PropertyController{
		Properties: props,
		API:        api,
		Bookings:   bookings,
		Filters:    store,
		Logger:     log,
	}
}

// filtered devuelve las propiedades del anfitrión que pasan los filtros
// junto con la lista completa
func (p PropertyController) filtered(c *gin.Context, f dto.ListFilters) ([]models.Property, []models.Property, error) {
	all, err := p.Properties.List(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		return nil, nil, err
	}
	return filters.Apply(all, f.Spec(filters.PropertySearchFields), filters.PropertyFields), all, nil
}

func (p PropertyController) listView(c *gin.Context, f dto.ListFilters, page, limit int) (dto.PropertyListView, int, error) {
	props, all, err := p.filtered(c, f)
	if err != nil {
		return dto.PropertyListView{Properties: []dto.PropertyView{}, Filters: f, Cities: []string{}}, 0, err
	}

	cities := filters.Distinct(all, func(p models.Property) string { return p.City })
	view := dto.PropertyListView{Filters: f, Cities: cities}
	if len(props) == 0 && f.Search != "" {
		candidates := append([]string{}, cities...)
		for _, prop := range all {
			candidates = append(candidates, prop.Title)
		}
		view.Suggestion = filters.Suggest(f.Search, candidates)
	}

	pageItems, total := filters.Paginate(props, page, limit)
	view.Properties = dto.NewPropertyViews(pageItems)
	return view, total, nil
}

// GetProperties godoc
// @Summary Mis propiedades con filtros, orden y paginación
// @Tags properties
// @Produce json
// @Param search query string false "búsqueda por título, descripción o ciudad"
// @Param city query string false "ciudad"
// @Param status query string false "estado"
// @Param minPrice query number false "precio mínimo por noche"
// @Param maxPrice query number false "precio máximo por noche"
// @Param sort query string false "price_asc, price_desc, newest o rating"
// @Param page query int false "página (desde 0)"
// @Param limit query int false "tamaño de página"
// @Success 200 {object} response.Response
// @Router /properties [get]
func (p PropertyController) GetProperties(c *gin.Context) {
	var q dto.PropertyListQuery
	if !bindQuery(c, &q) {
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultPageSize
	}
	f := rememberFilters(c, p.Filters, p.Logger, screenProperties, q.ListFilters, q.Reset)

	view, total, err := p.listView(c, f, q.Page, q.Limit)
	if err != nil {
		handleError(c, err, view)
		return
	}
	response.SuccessWithPagination(c, view, q.Page, q.Limit, total)
}

// ExportCSV descarga las propiedades filtradas como CSV
func (p PropertyController) ExportCSV(c *gin.Context) {
	props, ok := p.exportRows(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := services.WritePropertiesCSV(&buf, props); err != nil {
		p.Logger.Error("exportar csv: %v", err)
		response.ServerError(c)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="propiedades-%s.csv"`, time.Now().Format("2006-01-02")))
	c.Data(200, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportHTML documento para imprimir o guardar como PDF desde el navegador
func (p PropertyController) ExportHTML(c *gin.Context) {
	props, ok := p.exportRows(c)
	if !ok {
		return
	}
	out, err := services.RenderPropertiesHTML(props, time.Now())
	if err != nil {
		p.Logger.Error("exportar html: %v", err)
		response.ServerError(c)
		return
	}
	c.Data(200, "text/html; charset=utf-8", out)
}

func (p PropertyController) exportRows(c *gin.Context) ([]models.Property, bool) {
	var q dto.PropertyListQuery
	if !bindQuery(c, &q) {
		return nil, false
	}
	f := rememberFilters(c, p.Filters, p.Logger, screenProperties, q.ListFilters, q.Reset)
	props, _, err := p.filtered(c, f)
	if err != nil {
		handleError(c, err, nil)
		return nil, false
	}
	return props, true
}

// CreateProperty godoc
// @Summary Publica una propiedad con las imágenes preparadas en la sesión
// @Tags properties
// @Accept json
// @Produce json
// @Param body body dto.PropertyFormRequest true "formulario"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /properties [post]
func (p PropertyController) CreateProperty(c *gin.Context) {
	var form dto.PropertyFormRequest
	if !bindJSON(c, &form) {
		return
	}
	if _, err := p.Properties.Create(c.Request.Context(), middleware.CurrentSession(c), form); err != nil {
		handleError(c, err, nil)
		return
	}
	p.respondWithList(c, "Propiedad creada", true)
}

func (p PropertyController) UpdateProperty(c *gin.Context) {
	var form dto.PropertyFormRequest
	if !bindJSON(c, &form) {
		return
	}
	if _, err := p.Properties.Update(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), form); err != nil {
		handleError(c, err, nil)
		return
	}
	p.respondWithList(c, "Propiedad actualizada", false)
}

func (p PropertyController) DeleteProperty(c *gin.Context) {
	if err := p.Properties.Delete(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		handleError(c, err, nil)
		return
	}
	p.respondWithList(c, "Propiedad eliminada", false)
}

// respondWithList vuelve a pedir la lista después de una escritura
func (p PropertyController) respondWithList(c *gin.Context, mess string, created bool) {
	f := rememberFilters(c, p.Filters, p.Logger, screenProperties, dto.ListFilters{}, false)
	view, _, err := p.listView(c, f, 0, 0)
	if err != nil {
		// la escritura ya se hizo; la pantalla recarga la lista después
		p.Logger.Warn("recargar propiedades: %v", err)
	}
	if created {
		response.Created(c, mess, view)
		return
	}
	response.SuccessWithMessage(c, mess, view)
}

// BookProperty reserva una propiedad para las fechas indicadas
func (p PropertyController) BookProperty(c *gin.Context) {
	var req dto.PropertyBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := p.Bookings.CheckStay(req.CheckIn, req.CheckOut); err != nil {
		handleError(c, err, nil)
		return
	}
	session := middleware.CurrentSession(c)
	ctx := services.WithToken(c.Request.Context(), session.Token)

	prop, err := p.API.GetProperty(ctx, c.Param("id"))
	if err != nil {
		handleError(c, err, nil)
		return
	}
	booking, err := p.Bookings.CreateBooking(c.Request.Context(), session, services.NewPropertyBooking(*prop, req))
	if err != nil {
		handleError(c, err, nil)
		return
	}
	response.Created(c, "Reserva creada", dto.NewBookingView(*booking))
}
