// Package repository maps domain entities to the flat records persisted in
// the document store, one repository per logical collection.
package repository

import (
	"github.com/shopspring/decimal"
)

// Logical collection names — the store appends ".json" to each.
const (
	ColUsuarios  = "usuarios"
	ColProductos = "productos"
	ColVentas    = "ventas"
	ColHistorial = "historial"
)

// usuarioRecord persists {nombre, username, password, rol}. Cedula is not
// persisted; it is reconstructed as the username on load.
type usuarioRecord struct {
	Nombre   string `json:"nombre"`
	Username string `json:"username"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// productoRecord persists {nombre, cantidad, precio}. The display id is not
// persisted: it is reassigned positionally on load. Categoria is not persisted
// either and falls back to the default.
type productoRecord struct {
	Nombre   string          `json:"nombre"`
	Cantidad int             `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
}

// ventaRecord persists the sale line together with verbatim snapshots of the
// product and the client, so a reload never re-binds a historical sale to a
// renamed or deleted catalog entry. ProductoCantidad is the sold quantity.
// The client's credential is deliberately not part of the sales ledger.
type ventaRecord struct {
	ID                string          `json:"id"`
	ProductoNombre    string          `json:"productoNombre"`
	ProductoPrecio    decimal.Decimal `json:"productoPrecio"`
	ProductoCantidad  int             `json:"productoCantidad"`
	ProductoCategoria string          `json:"productoCategoria"`
	Total             decimal.Decimal `json:"total"`
	Fecha             int64           `json:"fecha"` // epoch millis
	Vendedor          string          `json:"vendedor"`
	ClienteUsername   string          `json:"clienteUsername"`
	ClienteNombre     string          `json:"clienteNombre"`
	ClienteRol        string          `json:"clienteRol"`
}

// historialRecord persists {tipo (enum name), descripcion, fecha, usuario}.
type historialRecord struct {
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
	Fecha       int64  `json:"fecha"` // epoch millis
	Usuario     string `json:"usuario"`
}
