package model

import (
	"fmt"
	"time"
)

type TipoAlerta string

const (
	AlertaStockBajo    TipoAlerta = "STOCK_BAJO"
	AlertaVencimiento  TipoAlerta = "VENCIMIENTO"
	AlertaErrorSistema TipoAlerta = "ERROR_SISTEMA"
)

type PrioridadAlerta string

const (
	PrioridadAlta  PrioridadAlerta = "ALTA"
	PrioridadMedia PrioridadAlerta = "MEDIA"
	PrioridadBaja  PrioridadAlerta = "BAJA"
)

// Stock thresholds for low-stock alerting.
const (
	UmbralStockBajo    = 10
	UmbralStockCritico = 5
)

// Alerta is derived and transient: recomputed from the product collection on
// every read, never persisted, never diffed against a previous set.
type Alerta struct {
	Tipo      TipoAlerta
	Mensaje   string
	Fecha     time.Time
	Prioridad PrioridadAlerta
	Producto  *Producto
}

// GenerarAlertasInventario derives low-stock alerts from the current catalog:
// one alert per product with 0 < cantidad < 10, ALTA priority under 5 units,
// MEDIA otherwise. Sold-out products (cantidad == 0) are NOT reported here;
// they go through the controller's out-of-stock notification path instead.
func GenerarAlertasInventario(productos []Producto) []Alerta {
	ahora := time.Now()
	var alertas []Alerta
	for i := range productos {
		p := productos[i]
		if p.Cantidad == 0 || p.Cantidad >= UmbralStockBajo {
			continue
		}
		prioridad := PrioridadMedia
		if p.Cantidad < UmbralStockCritico {
			prioridad = PrioridadAlta
		}
		alertas = append(alertas, Alerta{
			Tipo:      AlertaStockBajo,
			Mensaje:   fmt.Sprintf("El producto '%s' tiene stock bajo (%d unidades)", p.Nombre, p.Cantidad),
			Fecha:     ahora,
			Prioridad: prioridad,
			Producto:  &p,
		})
	}
	return alertas
}
