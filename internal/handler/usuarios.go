package handler

import (
	"net/http"

	"github.com/JoelHidalgo58/myapp-inv2/internal/apierror"
	"github.com/JoelHidalgo58/myapp-inv2/internal/dto"
	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/state"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ ctrl *state.Controller }

func NewUsuariosHandler(ctrl *state.Controller) *UsuariosHandler {
	return &UsuariosHandler{ctrl: ctrl}
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	usuarios := h.ctrl.Usuarios()
	data := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		data = append(data, usuarioToResponse(u))
	}
	c.JSON(http.StatusOK, data)
}

// ListarClientes returns only customer-tier accounts, for the sale form.
func (h *UsuariosHandler) ListarClientes(c *gin.Context) {
	data := make([]dto.UsuarioResponse, 0)
	for _, u := range h.ctrl.Usuarios() {
		if model.EsCliente(u.Rol) {
			data = append(data, usuarioToResponse(u))
		}
	}
	c.JSON(http.StatusOK, data)
}

func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}

	u, err := model.NuevoUsuario(req.Nombre, req.Username, req.Password, req.Rol)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	for _, existente := range h.ctrl.Usuarios() {
		if existente.Username == u.Username {
			c.JSON(http.StatusConflict, apierror.New("el nombre de usuario ya existe"))
			return
		}
	}
	if err := h.ctrl.ActualizarUsuario(u); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, usuarioToResponse(u))
}

func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	username := c.Param("username")
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}

	existe := false
	for _, u := range h.ctrl.Usuarios() {
		if u.Username == username {
			existe = true
			break
		}
	}
	if !existe {
		c.JSON(http.StatusNotFound, apierror.New("usuario '"+username+"' no encontrado"))
		return
	}

	u, err := model.NuevoUsuario(req.Nombre, username, req.Password, req.Rol)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := h.ctrl.ActualizarUsuario(u); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, usuarioToResponse(u))
}

func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	username := c.Param("username")
	if err := h.ctrl.EliminarUsuario(username); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
