package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuevoUsuario(t *testing.T) {
	u, err := NuevoUsuario("Ana García", "ana", "secreto", RolVendedor)
	require.NoError(t, err)
	assert.Equal(t, "Ana García", u.Nombre)
	assert.Equal(t, "ana", u.Username)
	assert.Equal(t, "ana", u.Cedula, "cedula defaults to the username")
	assert.Equal(t, RolVendedor, u.Rol)
}

func TestNuevoUsuarioRechazaCamposVacios(t *testing.T) {
	cases := []struct {
		name                            string
		nombre, username, password, rol string
	}{
		{"nombre vacio", "", "ana", "x", RolVendedor},
		{"nombre solo espacios", "   ", "ana", "x", RolVendedor},
		{"username vacio", "Ana", "", "x", RolVendedor},
		{"password vacio", "Ana", "ana", "", RolVendedor},
		{"rol invalido", "Ana", "ana", "x", "SuperUsuario"},
		{"rol vacio", "Ana", "ana", "x", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NuevoUsuario(tc.nombre, tc.username, tc.password, tc.rol)
			assert.Error(t, err)
		})
	}
}

func TestValidarRolEsCaseInsensitive(t *testing.T) {
	assert.True(t, ValidarRol("administrador"))
	assert.True(t, ValidarRol("VENDEDOR"))
	assert.True(t, ValidarRol("vip"))
	assert.True(t, ValidarRol("Mayorista"))
	assert.False(t, ValidarRol("Gerente"))
}

func TestEsCliente(t *testing.T) {
	assert.True(t, EsCliente(RolRegular))
	assert.True(t, EsCliente("vip"))
	assert.True(t, EsCliente(RolMayorista))
	assert.False(t, EsCliente(RolAdministrador))
	assert.False(t, EsCliente(RolVendedor))
	assert.False(t, EsCliente(RolInventarista))
}
