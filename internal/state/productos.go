package state

import (
	"fmt"
	"strings"

	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
)

// AgregarProducto appends a product to the catalog, or — when one with the
// same name already exists, case-insensitively — merges by summing quantities
// into the existing entry. Price and category of the existing entry win.
// Returns the record as it ended up in the catalog.
func (c *Controller) AgregarProducto(p model.Producto) (model.Producto, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existente := range c.listaProductos {
		if !strings.EqualFold(existente.Nombre, p.Nombre) {
			continue
		}
		fusionado, err := existente.ConCantidad(existente.Cantidad + p.Cantidad)
		if err != nil {
			return model.Producto{}, err
		}
		productos := append([]model.Producto(nil), c.listaProductos...)
		productos[i] = fusionado
		c.listaProductos = productos
		c.registrarAccionLocked(model.AccionAgregado,
			fmt.Sprintf("Stock actualizado para '%s'", existente.Nombre))
		c.persistirProductosLocked()
		c.evaluarAlertasLocked()
		return fusionado, nil
	}

	nuevo := p
	if nuevo.ID == "" {
		conID, err := model.NuevoProducto(model.FormatearID(len(c.listaProductos)+1),
			p.Nombre, p.Cantidad, p.Precio, p.Categoria)
		if err != nil {
			return model.Producto{}, err
		}
		nuevo = conID
	}
	c.listaProductos = append(append([]model.Producto(nil), c.listaProductos...), nuevo)
	c.registrarAccionLocked(model.AccionAgregado,
		fmt.Sprintf("Nuevo producto '%s' agregado", nuevo.Nombre))
	c.persistirProductosLocked()
	c.evaluarAlertasLocked()
	return nuevo, nil
}

// EditarProducto replaces the entry matching nombreAnterior with nuevo.
// The stored display id is kept when nuevo carries none.
func (c *Controller) EditarProducto(nombreAnterior string, nuevo model.Producto) (model.Producto, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existente := range c.listaProductos {
		if !strings.EqualFold(existente.Nombre, nombreAnterior) {
			continue
		}
		reemplazo := nuevo
		if reemplazo.ID == "" {
			conID, err := model.NuevoProducto(existente.ID, nuevo.Nombre, nuevo.Cantidad, nuevo.Precio, nuevo.Categoria)
			if err != nil {
				return model.Producto{}, err
			}
			reemplazo = conID
		}
		productos := append([]model.Producto(nil), c.listaProductos...)
		productos[i] = reemplazo
		c.listaProductos = productos
		c.registrarAccionLocked(model.AccionEdicion,
			fmt.Sprintf("Producto '%s' editado", nombreAnterior))
		c.persistirProductosLocked()
		c.evaluarAlertasLocked()
		return reemplazo, nil
	}
	return model.Producto{}, fmt.Errorf("producto '%s' no encontrado", nombreAnterior)
}

// EliminarProducto removes every entry matching nombre (case-insensitive).
func (c *Controller) EliminarProducto(nombre string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	productos := make([]model.Producto, 0, len(c.listaProductos))
	for _, p := range c.listaProductos {
		if !strings.EqualFold(p.Nombre, nombre) {
			productos = append(productos, p)
		}
	}
	if len(productos) == len(c.listaProductos) {
		return fmt.Errorf("producto '%s' no encontrado", nombre)
	}
	c.listaProductos = productos
	c.registrarAccionLocked(model.AccionEliminacion,
		fmt.Sprintf("Producto '%s' eliminado", nombre))
	c.persistirProductosLocked()
	c.evaluarAlertasLocked()
	return nil
}
