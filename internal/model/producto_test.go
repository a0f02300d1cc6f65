package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuevoProducto(t *testing.T) {
	p, err := NuevoProducto("0001", "Mouse", 10, decimal.NewFromFloat(5.50), "Periféricos")
	require.NoError(t, err)
	assert.Equal(t, "0001", p.ID)
	assert.Equal(t, 10, p.Cantidad)
	assert.Equal(t, "Periféricos", p.Categoria)
}

func TestNuevoProductoCategoriaPorDefecto(t *testing.T) {
	p, err := NuevoProducto("", "Mouse", 1, decimal.NewFromInt(5), "")
	require.NoError(t, err)
	assert.Equal(t, CategoriaDefault, p.Categoria)

	p, err = NuevoProducto("", "Mouse", 1, decimal.NewFromInt(5), "   ")
	require.NoError(t, err)
	assert.Equal(t, CategoriaDefault, p.Categoria)
}

func TestNuevoProductoIDVacioEsLegal(t *testing.T) {
	p, err := NuevoProducto("", "Mouse", 1, decimal.NewFromInt(5), "")
	require.NoError(t, err)
	assert.Empty(t, p.ID)
}

func TestNuevoProductoRechazaInvalidos(t *testing.T) {
	cinco := decimal.NewFromInt(5)
	_, err := NuevoProducto("12", "Mouse", 1, cinco, "")
	assert.Error(t, err, "id must be 4 digits when present")
	_, err = NuevoProducto("abcd", "Mouse", 1, cinco, "")
	assert.Error(t, err)
	_, err = NuevoProducto("", "", 1, cinco, "")
	assert.Error(t, err)
	_, err = NuevoProducto("", "Mouse", -1, cinco, "")
	assert.Error(t, err)
	_, err = NuevoProducto("", "Mouse", 1, decimal.NewFromInt(-5), "")
	assert.Error(t, err)
}

func TestConCantidad(t *testing.T) {
	p, err := NuevoProducto("0001", "Mouse", 10, decimal.NewFromInt(5), "")
	require.NoError(t, err)

	bajado, err := p.ConCantidad(4)
	require.NoError(t, err)
	assert.Equal(t, 4, bajado.Cantidad)
	assert.Equal(t, 10, p.Cantidad, "original is untouched")

	_, err = p.ConCantidad(-1)
	assert.Error(t, err)
}

func TestFormatearID(t *testing.T) {
	assert.Equal(t, "0001", FormatearID(1))
	assert.Equal(t, "0042", FormatearID(42))
	assert.Equal(t, "9999", FormatearID(9999))
}
