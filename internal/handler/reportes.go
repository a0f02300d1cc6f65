package handler

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/JoelHidalgo58/myapp-inv2/internal/apierror"
	"github.com/JoelHidalgo58/myapp-inv2/internal/dto"
	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/report"
	"github.com/JoelHidalgo58/myapp-inv2/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const fechaConsulta = "2006-01-02"

type ReportesHandler struct {
	ctrl        *state.Controller
	storagePath string
	log         zerolog.Logger
}

func NewReportesHandler(ctrl *state.Controller, storagePath string, log zerolog.Logger) *ReportesHandler {
	return &ReportesHandler{ctrl: ctrl, storagePath: storagePath, log: log}
}

// Ventas generates the sales PDF, optionally restricted to a date range
// (?desde=YYYY-MM-DD&hasta=YYYY-MM-DD, both inclusive).
func (h *ReportesHandler) Ventas(c *gin.Context) {
	ventas := h.ctrl.Ventas()

	if desde := c.Query("desde"); desde != "" {
		d, err := time.ParseInLocation(fechaConsulta, desde, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("parametro 'desde' invalido, formato esperado YYYY-MM-DD"))
			return
		}
		ventas = filtrarVentas(ventas, func(v model.Venta) bool { return !v.Fecha.Before(d) })
	}
	if hasta := c.Query("hasta"); hasta != "" {
		d, err := time.ParseInLocation(fechaConsulta, hasta, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("parametro 'hasta' invalido, formato esperado YYYY-MM-DD"))
			return
		}
		fin := d.AddDate(0, 0, 1)
		ventas = filtrarVentas(ventas, func(v model.Venta) bool { return v.Fecha.Before(fin) })
	}

	ruta, err := report.GenerarReporteVentas(ventas, h.storagePath)
	if err != nil {
		h.log.Error().Err(err).Msg("reporte de ventas fallido")
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el reporte"))
		return
	}
	c.FileAttachment(ruta, filepath.Base(ruta))
}

func (h *ReportesHandler) Inventario(c *gin.Context) {
	ruta, err := report.GenerarReporteInventario(h.ctrl.Productos(), h.storagePath)
	if err != nil {
		h.log.Error().Err(err).Msg("reporte de inventario fallido")
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el reporte"))
		return
	}
	c.FileAttachment(ruta, filepath.Base(ruta))
}

func (h *ReportesHandler) Clientes(c *gin.Context) {
	ruta, err := report.GenerarReporteClientes(h.ctrl.Usuarios(), h.storagePath)
	if err != nil {
		h.log.Error().Err(err).Msg("reporte de clientes fallido")
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el reporte"))
		return
	}
	c.FileAttachment(ruta, filepath.Base(ruta))
}

// Factura builds an invoice for one client's purchases on one calendar day.
func (h *ReportesHandler) Factura(c *gin.Context) {
	var req dto.GenerarFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	dia, err := time.ParseInLocation(fechaConsulta, req.Fecha, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fecha invalida, formato esperado YYYY-MM-DD"))
		return
	}
	fin := dia.AddDate(0, 0, 1)

	var cliente model.Usuario
	encontrado := false
	for _, u := range h.ctrl.Usuarios() {
		if u.Username == req.ClienteUsername {
			cliente, encontrado = u, true
			break
		}
	}
	if !encontrado {
		c.JSON(http.StatusNotFound, apierror.New("cliente no encontrado"))
		return
	}

	ventas := filtrarVentas(h.ctrl.Ventas(), func(v model.Venta) bool {
		return v.Cliente.Username == req.ClienteUsername &&
			!v.Fecha.Before(dia) && v.Fecha.Before(fin)
	})
	if len(ventas) == 0 {
		c.JSON(http.StatusNotFound, apierror.New("el cliente no tiene compras en esa fecha"))
		return
	}

	ruta, err := report.GenerarFactura(cliente, ventas, req.Fecha, h.storagePath)
	if err != nil {
		h.log.Error().Err(err).Msg("factura fallida")
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el reporte"))
		return
	}
	c.FileAttachment(ruta, filepath.Base(ruta))
}

func filtrarVentas(ventas []model.Venta, keep func(model.Venta) bool) []model.Venta {
	out := make([]model.Venta, 0, len(ventas))
	for _, v := range ventas {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
