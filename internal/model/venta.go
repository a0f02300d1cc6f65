package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// toleranciaTotal absorbs floating-point rounding when comparing the stored
// total against cantidad × precio unitario.
var toleranciaTotal = decimal.NewFromFloat(0.01)

// Venta is a single sale line: one record per distinct product sold.
// Producto and Cliente are snapshots taken at sale time, not live references —
// later edits to the catalog or the user list do not rewrite history.
// Ventas are immutable once created.
type Venta struct {
	ID             string
	Producto       Producto
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal
	Fecha          time.Time
	Vendedor       string
	Cliente        Usuario
}

// NuevaVenta validates every invariant at construction time.
func NuevaVenta(id string, producto Producto, cantidad int, precioUnitario, total decimal.Decimal, fecha time.Time, vendedor string, cliente Usuario) (Venta, error) {
	v := Venta{
		ID:             id,
		Producto:       producto,
		Cantidad:       cantidad,
		PrecioUnitario: precioUnitario,
		Total:          total,
		Fecha:          fecha,
		Vendedor:       vendedor,
		Cliente:        cliente,
	}
	switch {
	case !v.ValidarCantidad():
		return Venta{}, errors.New("la cantidad debe ser mayor que 0")
	case !v.ValidarPrecioUnitario():
		return Venta{}, errors.New("el precio unitario no puede ser negativo")
	case total.IsNegative():
		return Venta{}, errors.New("el total no puede ser negativo")
	case !v.ValidarVendedor():
		return Venta{}, errors.New("el vendedor no puede estar vacío")
	case !v.ValidarTotal():
		return Venta{}, errors.New("el total no coincide con la cantidad por precio unitario")
	case !precioUnitario.Equal(producto.Precio):
		return Venta{}, errors.New("el precio unitario debe coincidir con el precio del producto")
	case !v.ValidarFecha():
		return Venta{}, errors.New("la fecha no puede ser futura")
	}
	return v, nil
}

// NuevaVentaAhora builds a sale line for the current instant: random id,
// unit price pinned to the product's price, total derived from it.
func NuevaVentaAhora(producto Producto, cantidad int, vendedor string, cliente Usuario) (Venta, error) {
	precio := producto.Precio
	total := precio.Mul(decimal.NewFromInt(int64(cantidad)))
	return NuevaVenta(uuid.NewString(), producto, cantidad, precio, total, time.Now(), vendedor, cliente)
}

// Per-field predicates, for inline validation without constructing a value.

func (v Venta) ValidarCantidad() bool       { return v.Cantidad > 0 }
func (v Venta) ValidarPrecioUnitario() bool { return !v.PrecioUnitario.IsNegative() }
func (v Venta) ValidarVendedor() bool       { return strings.TrimSpace(v.Vendedor) != "" }
func (v Venta) ValidarCliente() bool        { return strings.TrimSpace(v.Cliente.Username) != "" }
func (v Venta) ValidarFecha() bool          { return !v.Fecha.After(time.Now()) }

// ValidarTotal checks non-negativity and the tolerance-based consistency
// |total − cantidad·precioUnitario| < 0.01.
func (v Venta) ValidarTotal() bool {
	if v.Total.IsNegative() {
		return false
	}
	esperado := v.PrecioUnitario.Mul(decimal.NewFromInt(int64(v.Cantidad)))
	return v.Total.Sub(esperado).Abs().LessThan(toleranciaTotal)
}
