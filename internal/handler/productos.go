package handler

import (
	"net/http"

	"github.com/JoelHidalgo58/myapp-inv2/internal/apierror"
	"github.com/JoelHidalgo58/myapp-inv2/internal/dto"
	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/state"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ ctrl *state.Controller }

func NewProductosHandler(ctrl *state.Controller) *ProductosHandler {
	return &ProductosHandler{ctrl: ctrl}
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	productos := h.ctrl.Productos()
	data := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		data = append(data, productoToResponse(p))
	}
	c.JSON(http.StatusOK, dto.ProductoListResponse{Data: data, Total: len(data)})
}

// Crear adds a product. If one with the same name already exists the
// quantities are merged and the existing entry is returned with 200 instead
// of 201.
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	p, err := model.NuevoProducto("", req.Nombre, req.Cantidad, req.Precio, req.Categoria)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	antes := len(h.ctrl.Productos())
	resultado, err := h.ctrl.AgregarProducto(p)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	status := http.StatusCreated
	if len(h.ctrl.Productos()) == antes {
		status = http.StatusOK // merged into an existing entry
	}
	c.JSON(status, productoToResponse(resultado))
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	nombre := c.Param("nombre")
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	p, err := model.NuevoProducto("", req.Nombre, req.Cantidad, req.Precio, req.Categoria)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	resultado, err := h.ctrl.EditarProducto(nombre, p)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, productoToResponse(resultado))
}

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	nombre := c.Param("nombre")
	if err := h.ctrl.EliminarProducto(nombre); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
