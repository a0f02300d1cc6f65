package model

import (
	"errors"
	"strings"
)

// Role tokens recognized by the allow-list. The first three are staff roles;
// Regular/VIP/Mayorista are customer tiers selectable from user management.
const (
	RolAdministrador = "Administrador"
	RolVendedor      = "Vendedor"
	RolInventarista  = "Inventarista"
	RolRegular       = "Regular"
	RolVIP           = "VIP"
	RolMayorista     = "Mayorista"
)

var rolesValidos = []string{
	RolAdministrador,
	RolVendedor,
	RolInventarista,
	RolRegular,
	RolVIP,
	RolMayorista,
}

// Usuario is a system account: staff or customer, identified by Username
// (business key — there is no surrogate id). Password is an opaque credential
// compared by exact string equality at login.
type Usuario struct {
	Nombre   string
	Username string
	Password string
	Rol      string
	Cedula   string
}

// NuevoUsuario validates every invariant at construction time.
// Cedula defaults to the username.
func NuevoUsuario(nombre, username, password, rol string) (Usuario, error) {
	u := Usuario{
		Nombre:   nombre,
		Username: username,
		Password: password,
		Rol:      rol,
		Cedula:   username,
	}
	switch {
	case !u.ValidarNombre():
		return Usuario{}, errors.New("el nombre no puede estar vacío")
	case !u.ValidarUsername():
		return Usuario{}, errors.New("el nombre de usuario no puede estar vacío")
	case !u.ValidarPassword():
		return Usuario{}, errors.New("la contraseña no puede estar vacía")
	case !u.ValidarRol():
		return Usuario{}, errors.New("rol inválido. Debe ser uno de: " + strings.Join(rolesValidos, ", "))
	}
	return u, nil
}

// ValidarRol reports whether rol matches the allow-list, case-insensitively.
func ValidarRol(rol string) bool {
	for _, r := range rolesValidos {
		if strings.EqualFold(r, rol) {
			return true
		}
	}
	return false
}

// EsCliente reports whether rol is one of the customer tiers.
func EsCliente(rol string) bool {
	return strings.EqualFold(rol, RolRegular) ||
		strings.EqualFold(rol, RolVIP) ||
		strings.EqualFold(rol, RolMayorista)
}

// Per-field predicates, for inline validation without constructing a value.

func (u Usuario) ValidarNombre() bool   { return strings.TrimSpace(u.Nombre) != "" }
func (u Usuario) ValidarUsername() bool { return strings.TrimSpace(u.Username) != "" }
func (u Usuario) ValidarPassword() bool { return strings.TrimSpace(u.Password) != "" }
func (u Usuario) ValidarRol() bool      { return ValidarRol(u.Rol) }
func (u Usuario) ValidarCedula() bool   { return strings.TrimSpace(u.Cedula) != "" }
