package handler

import (
	"net/http"

	"github.com/JoelHidalgo58/myapp-inv2/internal/dto"
	"github.com/JoelHidalgo58/myapp-inv2/internal/state"

	"github.com/gin-gonic/gin"
)

type HistorialHandler struct{ ctrl *state.Controller }

func NewHistorialHandler(ctrl *state.Controller) *HistorialHandler {
	return &HistorialHandler{ctrl: ctrl}
}

// Listar returns the audit trail in insertion order, optionally filtered by
// action type (?tipo=VENTA).
func (h *HistorialHandler) Listar(c *gin.Context) {
	tipo := c.Query("tipo")
	historial := h.ctrl.Historial()
	data := make([]dto.AccionHistorialResponse, 0, len(historial))
	for _, a := range historial {
		if tipo != "" && string(a.Tipo) != tipo {
			continue
		}
		data = append(data, accionToResponse(a))
	}
	c.JSON(http.StatusOK, dto.HistorialListResponse{Data: data, Total: len(data)})
}
