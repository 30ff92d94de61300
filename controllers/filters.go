package controllers

import (
	"github.com/gin-gonic/gin"

	"guaranihost/dto"
	"guaranihost/middleware"
	"guaranihost/services"
	"guaranihost/services/logger"
)

const (
	screenProperties = "properties"
	screenTours      = "tours"
)

// rememberFilters completa los filtros con los últimos usados en la
// pantalla y guarda el resultado. reset descarta lo guardado.
func rememberFilters(c *gin.Context, store services.FiltersStore, log logger.Logger, screen string, current dto.ListFilters, reset bool) dto.ListFilters {
	if store == nil {
		return current
	}
	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	if reset {
		if err := store.ClearLastFilters(ctx, sessionID, screen); err != nil {
			log.Warn("borrar filtros %s de %s: %v", screen, sessionID, err)
		}
	} else {
		old, err := store.GetLastFilters(ctx, sessionID, screen)
		if err != nil {
			log.Warn("leer filtros %s de %s: %v", screen, sessionID, err)
		}
		if old != nil {
			current = services.MergeFilters(*old, current)
		}
	}

	if !current.Empty() {
		if err := store.SaveLastFilters(ctx, sessionID, screen, current); err != nil {
			log.Warn("guardar filtros %s de %s: %v", screen, sessionID, err)
		}
	}
	return current
}
