package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"guaranihost/middleware"
	"guaranihost/response"
	"guaranihost/services/logger"
	"guaranihost/services/notification"
)

// NotificationController abre la conexión websocket por la que llegan los
// avisos (reserva creada, propiedad guardada, ...) de una sesión
type NotificationController struct {
	melody *melody.Melody
	logger logger.Logger
}

func NewNotificationController(m *melody.Melody, log logger.Logger) *NotificationController {
	if log == nil {
		log = logger.Nop{}
	}
	return &NotificationController{melody: m, logger: log}
}

// Connect registra la conexión con el id de sesión para que
// notification.MelodyService le envíe solo sus avisos. Con ?token= el id
// queda atado al usuario y coincide con el de sus peticiones REST.
func (ctrl *NotificationController) Connect(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		response.BadRequest(c, "Falta el id de sesión")
		return
	}
	err := ctrl.melody.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		notification.SessionKey: sessionID,
	})
	if err != nil {
		ctrl.logger.Warn("websocket de la sesión %s: %v", sessionID, err)
	}
}
