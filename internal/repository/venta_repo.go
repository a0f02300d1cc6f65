package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/store"
)

// passwordNoPersistido stands in for the client credential when a sale
// snapshot is rebuilt from the ledger, which never stores passwords.
const passwordNoPersistido = "********"

// VentaRepository loads and appends-by-overwrite the sales ledger.
// Sales are rebuilt purely from their persisted snapshots; nothing is
// re-resolved against the current product or user collections.
type VentaRepository interface {
	ListAll(ctx context.Context) ([]model.Venta, error)
	ReplaceAll(ctx context.Context, ventas []model.Venta) error
}

type ventaRepo struct {
	store store.DocStore
	log   zerolog.Logger
}

func NewVentaRepository(st store.DocStore, log zerolog.Logger) VentaRepository {
	return &ventaRepo{store: st, log: log}
}

func (r *ventaRepo) ListAll(ctx context.Context) ([]model.Venta, error) {
	var recs []ventaRecord
	if err := r.store.Load(ctx, ColVentas, &recs); err != nil {
		return nil, err
	}
	ventas := make([]model.Venta, 0, len(recs))
	for _, rec := range recs {
		v, err := ventaDesdeRecord(rec)
		if err != nil {
			r.log.Warn().Str("id", rec.ID).Err(err).Msg("venta persistida inválida, se omite")
			continue
		}
		ventas = append(ventas, v)
	}
	return ventas, nil
}

func (r *ventaRepo) ReplaceAll(ctx context.Context, ventas []model.Venta) error {
	recs := make([]ventaRecord, len(ventas))
	for i, v := range ventas {
		recs[i] = ventaRecord{
			ID:                v.ID,
			ProductoNombre:    v.Producto.Nombre,
			ProductoPrecio:    v.Producto.Precio,
			ProductoCantidad:  v.Cantidad,
			ProductoCategoria: v.Producto.Categoria,
			Total:             v.Total,
			Fecha:             v.Fecha.UnixMilli(),
			Vendedor:          v.Vendedor,
			ClienteUsername:   v.Cliente.Username,
			ClienteNombre:     v.Cliente.Nombre,
			ClienteRol:        v.Cliente.Rol,
		}
	}
	return r.store.Save(ctx, ColVentas, recs)
}

func ventaDesdeRecord(rec ventaRecord) (model.Venta, error) {
	producto, err := model.NuevoProducto("", rec.ProductoNombre, rec.ProductoCantidad, rec.ProductoPrecio, rec.ProductoCategoria)
	if err != nil {
		return model.Venta{}, err
	}

	nombre := rec.ClienteNombre
	if nombre == "" {
		nombre = rec.ClienteUsername
	}
	rol := rec.ClienteRol
	if !model.ValidarRol(rol) {
		rol = model.RolRegular
	}
	cliente, err := model.NuevoUsuario(nombre, rec.ClienteUsername, passwordNoPersistido, rol)
	if err != nil {
		return model.Venta{}, err
	}

	return model.NuevaVenta(rec.ID, producto, rec.ProductoCantidad, rec.ProductoPrecio, rec.Total,
		time.UnixMilli(rec.Fecha), rec.Vendedor, cliente)
}
