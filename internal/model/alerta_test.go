package model

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productosConStock(t *testing.T, cantidades ...int) []Producto {
	t.Helper()
	productos := make([]Producto, 0, len(cantidades))
	for i, c := range cantidades {
		p, err := NuevoProducto("", fmt.Sprintf("Producto %d", i+1), c, decimal.NewFromInt(1), "")
		require.NoError(t, err)
		productos = append(productos, p)
	}
	return productos
}

func TestGenerarAlertasInventarioUmbrales(t *testing.T) {
	alertas := GenerarAlertasInventario(productosConStock(t, 9, 4, 10, 0, 50))

	require.Len(t, alertas, 2, "only 0 < cantidad < 10 alerts; sold-out and healthy stock are skipped")

	assert.Equal(t, AlertaStockBajo, alertas[0].Tipo)
	assert.Equal(t, PrioridadMedia, alertas[0].Prioridad, "9 units is low but not critical")
	assert.Equal(t, "El producto 'Producto 1' tiene stock bajo (9 unidades)", alertas[0].Mensaje)

	assert.Equal(t, PrioridadAlta, alertas[1].Prioridad, "4 units is under the critical threshold")
	require.NotNil(t, alertas[1].Producto)
	assert.Equal(t, "Producto 2", alertas[1].Producto.Nombre)
}

func TestGenerarAlertasInventarioVacio(t *testing.T) {
	assert.Empty(t, GenerarAlertasInventario(nil))
	assert.Empty(t, GenerarAlertasInventario(productosConStock(t, 10, 100)))
}

func TestParseTipoAccion(t *testing.T) {
	tipo, err := ParseTipoAccion("VENTA")
	require.NoError(t, err)
	assert.Equal(t, AccionVenta, tipo)

	_, err = ParseTipoAccion("COMPRA")
	assert.Error(t, err)
}
