package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TipoAccion enumerates the audit entry kinds. The string value is the
// persisted enum name.
type TipoAccion string

const (
	AccionAgregado    TipoAccion = "AGREGADO"
	AccionEdicion     TipoAccion = "EDICION"
	AccionEliminacion TipoAccion = "ELIMINACION"
	AccionVenta       TipoAccion = "VENTA"
	AccionAlerta      TipoAccion = "ALERTA"
)

// ParseTipoAccion maps a persisted enum name back to its TipoAccion.
func ParseTipoAccion(s string) (TipoAccion, error) {
	switch t := TipoAccion(s); t {
	case AccionAgregado, AccionEdicion, AccionEliminacion, AccionVenta, AccionAlerta:
		return t, nil
	}
	return "", fmt.Errorf("tipo de acción desconocido: %q", s)
}

// AccionHistorial is an append-only audit entry. Entries are created by the
// state controller as a side effect of mutations and are never edited or
// deleted afterwards.
type AccionHistorial struct {
	Tipo        TipoAccion
	Descripcion string
	Fecha       time.Time
	Usuario     string
}

// NuevaAccion validates every invariant at construction time.
func NuevaAccion(tipo TipoAccion, descripcion string, fecha time.Time, usuario string) (AccionHistorial, error) {
	a := AccionHistorial{Tipo: tipo, Descripcion: descripcion, Fecha: fecha, Usuario: usuario}
	if _, err := ParseTipoAccion(string(tipo)); err != nil {
		return AccionHistorial{}, err
	}
	switch {
	case !a.ValidarDescripcion():
		return AccionHistorial{}, errors.New("la descripción no puede estar vacía")
	case !a.ValidarUsuario():
		return AccionHistorial{}, errors.New("el usuario no puede estar vacío")
	case !a.ValidarFecha():
		return AccionHistorial{}, errors.New("la fecha no puede ser futura")
	}
	return a, nil
}

func (a AccionHistorial) ValidarDescripcion() bool { return strings.TrimSpace(a.Descripcion) != "" }
func (a AccionHistorial) ValidarUsuario() bool     { return strings.TrimSpace(a.Usuario) != "" }
func (a AccionHistorial) ValidarFecha() bool       { return !a.Fecha.After(time.Now()) }
