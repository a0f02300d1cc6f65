package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
)

// LineaVenta is one product line of a multi-item sale.
type LineaVenta struct {
	ProductoNombre string
	Cantidad       int
}

// RegistrarVenta records a confirmed sale transactionally: stock is
// decremented across the whole catalog in one pass, then one immutable Venta
// plus one VENTA audit entry is appended per line. The seller is the session
// user. Any invalid line rejects the entire sale — quantities exceeding
// current stock included, so stock can never go negative through here.
func (c *Controller) RegistrarVenta(lineas []LineaVenta, cliente model.Usuario) ([]model.Venta, error) {
	if len(lineas) == 0 {
		return nil, errors.New("la venta no tiene productos")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.sesion.Activa {
		return nil, errors.New("no hay una sesión iniciada")
	}
	vendedor := c.sesion.Username

	productos := append([]model.Producto(nil), c.listaProductos...)
	creadas := make([]model.Venta, 0, len(lineas))
	for _, l := range lineas {
		idx := -1
		for i, p := range productos {
			if strings.EqualFold(p.Nombre, l.ProductoNombre) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("producto '%s' no encontrado", l.ProductoNombre)
		}
		actual := productos[idx]
		if l.Cantidad > actual.Cantidad {
			return nil, fmt.Errorf("stock insuficiente para '%s': quedan %d unidades", actual.Nombre, actual.Cantidad)
		}

		// Snapshot before the decrement: the sale line keeps the product as sold.
		venta, err := model.NuevaVentaAhora(actual, l.Cantidad, vendedor, cliente)
		if err != nil {
			return nil, err
		}
		decrementado, err := actual.ConCantidad(actual.Cantidad - l.Cantidad)
		if err != nil {
			return nil, err
		}
		productos[idx] = decrementado
		creadas = append(creadas, venta)
	}

	c.listaProductos = productos
	c.listaVentas = append(append([]model.Venta(nil), c.listaVentas...), creadas...)
	for _, v := range creadas {
		c.registrarAccionLocked(model.AccionVenta,
			fmt.Sprintf("Venta de %d %s a %s", v.Cantidad, v.Producto.Nombre, cliente.Nombre))
	}
	c.persistirProductosLocked()
	c.persistirVentasLocked()
	c.evaluarAlertasLocked()
	return creadas, nil
}
