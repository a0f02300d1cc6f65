package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/store"
)

func testDocStore(t *testing.T) (store.DocStore, string) {
	t.Helper()
	dir := t.TempDir()
	return store.NewFileStore(dir, zerolog.Nop()), dir
}

func TestUsuarioRepoRoundTrip(t *testing.T) {
	st, _ := testDocStore(t)
	repo := NewUsuarioRepository(st, zerolog.Nop())
	ctx := context.Background()

	ana, err := model.NuevoUsuario("Ana", "ana", "clave1", model.RolAdministrador)
	require.NoError(t, err)
	beto, err := model.NuevoUsuario("Beto", "beto", "clave2", model.RolVIP)
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceAll(ctx, []model.Usuario{ana, beto}))

	out, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, ana, out[0])
	assert.Equal(t, "beto", out[1].Cedula, "cedula is rebuilt from the username")
	assert.Equal(t, "clave2", out[1].Password, "credentials survive the round trip verbatim")
}

func TestUsuarioRepoOmiteInvalidos(t *testing.T) {
	st, dir := testDocStore(t)
	repo := NewUsuarioRepository(st, zerolog.Nop())

	raw := `[{"nombre":"Ana","username":"ana","password":"x","rol":"Administrador"},
	         {"nombre":"","username":"malo","password":"x","rol":"Vendedor"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "usuarios.json"), []byte(raw), 0o644))

	out, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1, "invalid persisted entries are skipped, not fatal")
	assert.Equal(t, "ana", out[0].Username)
}

func TestProductoRepoIDsPosicionales(t *testing.T) {
	st, _ := testDocStore(t)
	repo := NewProductoRepository(st, zerolog.Nop())
	ctx := context.Background()

	a, err := model.NuevoProducto("0001", "Mouse", 5, decimal.NewFromInt(10), "Periféricos")
	require.NoError(t, err)
	b, err := model.NuevoProducto("0002", "Teclado", 8, decimal.NewFromFloat(22.90), "")
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceAll(ctx, []model.Producto{a, b}))

	out, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "0001", out[0].ID)
	assert.Equal(t, "0002", out[1].ID)
	assert.Equal(t, model.CategoriaDefault, out[0].Categoria,
		"categoria is not persisted; every product reloads with the default")
	assert.True(t, out[1].Precio.Equal(decimal.NewFromFloat(22.90)))
}

func TestProductoRepoColeccionCorrupta(t *testing.T) {
	st, dir := testDocStore(t)
	repo := NewProductoRepository(st, zerolog.Nop())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "productos.json"), []byte("no es json"), 0o644))

	out, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out, "a corrupt collection loads as empty")
}

func TestVentaRepoRoundTripSnapshot(t *testing.T) {
	st, _ := testDocStore(t)
	repo := NewVentaRepository(st, zerolog.Nop())
	ctx := context.Background()

	producto, err := model.NuevoProducto("0001", "Monitor", 3, decimal.NewFromInt(150), "Pantallas")
	require.NoError(t, err)
	cliente, err := model.NuevoUsuario("Carlos", "carlos", "secreta", model.RolMayorista)
	require.NoError(t, err)
	venta, err := model.NuevaVenta("v-1", producto, 3, producto.Precio, decimal.NewFromInt(450),
		time.Now().Add(-time.Minute).Truncate(time.Millisecond), "ana", cliente)
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceAll(ctx, []model.Venta{venta}))

	out, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)

	got := out[0]
	assert.Equal(t, "v-1", got.ID)
	assert.Equal(t, "Monitor", got.Producto.Nombre)
	assert.Equal(t, "Pantallas", got.Producto.Categoria, "the product snapshot keeps its category")
	assert.Equal(t, 3, got.Cantidad)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, venta.Fecha.UnixMilli(), got.Fecha.UnixMilli())
	assert.Equal(t, "carlos", got.Cliente.Username)
	assert.Equal(t, model.RolMayorista, got.Cliente.Rol)
	assert.NotEqual(t, "secreta", got.Cliente.Password, "the client credential is never persisted")
}

func TestVentaRepoNoReResuelveContraCatalogo(t *testing.T) {
	st, dir := testDocStore(t)
	repo := NewVentaRepository(st, zerolog.Nop())

	// A ledger entry whose product no longer exists anywhere, with an unknown
	// client role. It must still load, from its own snapshot alone.
	raw := `[{"id":"v-9","productoNombre":"Descatalogado","productoPrecio":"9.99",
	          "productoCantidad":2,"productoCategoria":"Vintage","total":"19.98",
	          "fecha":1735689600000,"vendedor":"ana",
	          "clienteUsername":"fantasma","clienteNombre":"","clienteRol":"Desconocido"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ventas.json"), []byte(raw), 0o644))

	out, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Descatalogado", out[0].Producto.Nombre)
	assert.Equal(t, "fantasma", out[0].Cliente.Nombre, "missing display name falls back to the username")
	assert.Equal(t, model.RolRegular, out[0].Cliente.Rol, "unknown roles collapse to Regular")
}

func TestHistorialRepoRoundTrip(t *testing.T) {
	st, _ := testDocStore(t)
	repo := NewHistorialRepository(st, zerolog.Nop())
	ctx := context.Background()

	accion, err := model.NuevaAccion(model.AccionVenta, "Venta de 2 Monitor a Carlos",
		time.Now().Add(-time.Hour).Truncate(time.Millisecond), "ana")
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceAll(ctx, []model.AccionHistorial{accion}))

	out, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, model.AccionVenta, out[0].Tipo)
	assert.Equal(t, accion.Descripcion, out[0].Descripcion)
	assert.Equal(t, accion.Fecha.UnixMilli(), out[0].Fecha.UnixMilli())
}

func TestHistorialRepoOmiteTipoDesconocido(t *testing.T) {
	st, dir := testDocStore(t)
	repo := NewHistorialRepository(st, zerolog.Nop())

	raw := `[{"tipo":"COMPRA","descripcion":"x","fecha":1735689600000,"usuario":"ana"},
	         {"tipo":"ALERTA","descripcion":"Stock bajo en 'Mouse' (3 unidades)","fecha":1735689600000,"usuario":"sistema"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "historial.json"), []byte(raw), 0o644))

	out, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, model.AccionAlerta, out[0].Tipo)
}
