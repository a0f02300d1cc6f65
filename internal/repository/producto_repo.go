package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/store"
)

// ProductoRepository loads and overwrites the whole product collection.
// Display ids are positional: zero-padded(index+1), reassigned on every load.
type ProductoRepository interface {
	ListAll(ctx context.Context) ([]model.Producto, error)
	ReplaceAll(ctx context.Context, productos []model.Producto) error
}

type productoRepo struct {
	store store.DocStore
	log   zerolog.Logger
}

func NewProductoRepository(st store.DocStore, log zerolog.Logger) ProductoRepository {
	return &productoRepo{store: st, log: log}
}

func (r *productoRepo) ListAll(ctx context.Context) ([]model.Producto, error) {
	var recs []productoRecord
	if err := r.store.Load(ctx, ColProductos, &recs); err != nil {
		return nil, err
	}
	productos := make([]model.Producto, 0, len(recs))
	for _, rec := range recs {
		p, err := model.NuevoProducto(model.FormatearID(len(productos)+1), rec.Nombre, rec.Cantidad, rec.Precio, "")
		if err != nil {
			r.log.Warn().Str("nombre", rec.Nombre).Err(err).Msg("producto persistido inválido, se omite")
			continue
		}
		productos = append(productos, p)
	}
	return productos, nil
}

func (r *productoRepo) ReplaceAll(ctx context.Context, productos []model.Producto) error {
	recs := make([]productoRecord, len(productos))
	for i, p := range productos {
		recs[i] = productoRecord{
			Nombre:   p.Nombre,
			Cantidad: p.Cantidad,
			Precio:   p.Precio,
		}
	}
	return r.store.Save(ctx, ColProductos, recs)
}
