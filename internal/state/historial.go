package state

import (
	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
)

// AgregarAccion appends an externally built audit entry. Append-only: entries
// are never edited or removed.
func (c *Controller) AgregarAccion(accion model.AccionHistorial) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listaHistorial = append(append([]model.AccionHistorial(nil), c.listaHistorial...), accion)
	c.persistirHistorialLocked()
}
