package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/store"
)

// HistorialRepository loads and overwrites the append-only audit log.
type HistorialRepository interface {
	ListAll(ctx context.Context) ([]model.AccionHistorial, error)
	ReplaceAll(ctx context.Context, acciones []model.AccionHistorial) error
}

type historialRepo struct {
	store store.DocStore
	log   zerolog.Logger
}

func NewHistorialRepository(st store.DocStore, log zerolog.Logger) HistorialRepository {
	return &historialRepo{store: st, log: log}
}

func (r *historialRepo) ListAll(ctx context.Context) ([]model.AccionHistorial, error) {
	var recs []historialRecord
	if err := r.store.Load(ctx, ColHistorial, &recs); err != nil {
		return nil, err
	}
	acciones := make([]model.AccionHistorial, 0, len(recs))
	for _, rec := range recs {
		tipo, err := model.ParseTipoAccion(rec.Tipo)
		if err != nil {
			r.log.Warn().Str("tipo", rec.Tipo).Msg("acción persistida con tipo desconocido, se omite")
			continue
		}
		a, err := model.NuevaAccion(tipo, rec.Descripcion, time.UnixMilli(rec.Fecha), rec.Usuario)
		if err != nil {
			r.log.Warn().Str("tipo", rec.Tipo).Err(err).Msg("acción persistida inválida, se omite")
			continue
		}
		acciones = append(acciones, a)
	}
	return acciones, nil
}

func (r *historialRepo) ReplaceAll(ctx context.Context, acciones []model.AccionHistorial) error {
	recs := make([]historialRecord, len(acciones))
	for i, a := range acciones {
		recs[i] = historialRecord{
			Tipo:        string(a.Tipo),
			Descripcion: a.Descripcion,
			Fecha:       a.Fecha.UnixMilli(),
			Usuario:     a.Usuario,
		}
	}
	return r.store.Save(ctx, ColHistorial, recs)
}
