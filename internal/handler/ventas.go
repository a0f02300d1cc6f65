package handler

import (
	"net/http"

	"github.com/JoelHidalgo58/myapp-inv2/internal/apierror"
	"github.com/JoelHidalgo58/myapp-inv2/internal/dto"
	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/state"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ ctrl *state.Controller }

func NewVentasHandler(ctrl *state.Controller) *VentasHandler {
	return &VentasHandler{ctrl: ctrl}
}

// Registrar records a multi-line sale for one client. The client must be a
// customer-tier account; staff accounts cannot be buyers. Stock is checked
// per line and the whole sale is rejected if any line cannot be served.
func (h *VentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	cliente, ok := h.buscarCliente(req.ClienteUsername)
	if !ok {
		c.JSON(http.StatusBadRequest, apierror.New("cliente no encontrado"))
		return
	}
	if !model.EsCliente(cliente.Rol) {
		c.JSON(http.StatusBadRequest, apierror.New("el usuario seleccionado no es un cliente"))
		return
	}

	lineas := make([]state.LineaVenta, 0, len(req.Items))
	for _, item := range req.Items {
		lineas = append(lineas, state.LineaVenta{
			ProductoNombre: item.ProductoNombre,
			Cantidad:       item.Cantidad,
		})
	}

	ventas, err := h.ctrl.RegistrarVenta(lineas, cliente)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	data := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		data = append(data, ventaToResponse(v))
	}
	c.JSON(http.StatusCreated, dto.VentaListResponse{Data: data, Total: len(data)})
}

func (h *VentasHandler) Listar(c *gin.Context) {
	ventas := h.ctrl.Ventas()
	data := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		data = append(data, ventaToResponse(v))
	}
	c.JSON(http.StatusOK, dto.VentaListResponse{Data: data, Total: len(data)})
}

func (h *VentasHandler) buscarCliente(username string) (model.Usuario, bool) {
	for _, u := range h.ctrl.Usuarios() {
		if u.Username == username {
			return u, true
		}
	}
	return model.Usuario{}, false
}
