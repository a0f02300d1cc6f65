package handler

import (
	"net/http"

	"github.com/JoelHidalgo58/myapp-inv2/internal/dto"
	"github.com/JoelHidalgo58/myapp-inv2/internal/state"

	"github.com/gin-gonic/gin"
)

type AlertasHandler struct{ ctrl *state.Controller }

func NewAlertasHandler(ctrl *state.Controller) *AlertasHandler {
	return &AlertasHandler{ctrl: ctrl}
}

// Listar derives the current low-stock alerts from the catalog. Nothing is
// stored; call again and you get a fresh set.
func (h *AlertasHandler) Listar(c *gin.Context) {
	alertas := h.ctrl.Alertas()
	data := make([]dto.AlertaResponse, 0, len(alertas))
	for _, a := range alertas {
		data = append(data, alertaToResponse(a))
	}
	c.JSON(http.StatusOK, data)
}
