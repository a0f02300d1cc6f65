package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CategoriaDefault is applied when a product is created without category.
const CategoriaDefault = "General"

var idProductoRe = regexp.MustCompile(`^\d{4}$`)

// Producto is an inventory item. Nombre is the business key for lookups and
// uniqueness; ID is a positional 4-digit display code assigned by the loader
// and empty until assignment.
type Producto struct {
	ID        string
	Nombre    string
	Cantidad  int
	Precio    decimal.Decimal
	Categoria string
}

// NuevoProducto validates every invariant at construction time.
// An empty id is legal (pre-assignment state); an empty categoria falls back
// to CategoriaDefault.
func NuevoProducto(id, nombre string, cantidad int, precio decimal.Decimal, categoria string) (Producto, error) {
	if strings.TrimSpace(categoria) == "" {
		categoria = CategoriaDefault
	}
	p := Producto{
		ID:        id,
		Nombre:    nombre,
		Cantidad:  cantidad,
		Precio:    precio,
		Categoria: categoria,
	}
	switch {
	case !p.ValidarID():
		return Producto{}, errors.New("el ID debe ser un número de 4 dígitos")
	case !p.ValidarNombre():
		return Producto{}, errors.New("el nombre no puede estar vacío")
	case !p.ValidarCantidad():
		return Producto{}, errors.New("la cantidad no puede ser negativa")
	case !p.ValidarPrecio():
		return Producto{}, errors.New("el precio no puede ser negativo")
	case !p.ValidarCategoria():
		return Producto{}, errors.New("la categoría no puede estar vacía")
	}
	return p, nil
}

// ConCantidad returns a copy with the quantity replaced, re-running the
// invariant checks. Edits are whole-value replacements, never in-place.
func (p Producto) ConCantidad(cantidad int) (Producto, error) {
	return NuevoProducto(p.ID, p.Nombre, cantidad, p.Precio, p.Categoria)
}

// FormatearID builds the zero-padded positional display id (1 → "0001").
func FormatearID(posicion int) string {
	return fmt.Sprintf("%04d", posicion)
}

// Per-field predicates, for inline validation without constructing a value.

func (p Producto) ValidarID() bool        { return p.ID == "" || idProductoRe.MatchString(p.ID) }
func (p Producto) ValidarNombre() bool    { return strings.TrimSpace(p.Nombre) != "" }
func (p Producto) ValidarCantidad() bool  { return p.Cantidad >= 0 }
func (p Producto) ValidarPrecio() bool    { return !p.Precio.IsNegative() }
func (p Producto) ValidarCategoria() bool { return strings.TrimSpace(p.Categoria) != "" }
