package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/store"
)

// UsuarioRepository loads and overwrites the whole user collection.
// The state controller is the only caller; it owns the in-memory copy.
type UsuarioRepository interface {
	ListAll(ctx context.Context) ([]model.Usuario, error)
	ReplaceAll(ctx context.Context, usuarios []model.Usuario) error
}

type usuarioRepo struct {
	store store.DocStore
	log   zerolog.Logger
}

func NewUsuarioRepository(st store.DocStore, log zerolog.Logger) UsuarioRepository {
	return &usuarioRepo{store: st, log: log}
}

func (r *usuarioRepo) ListAll(ctx context.Context) ([]model.Usuario, error) {
	var recs []usuarioRecord
	if err := r.store.Load(ctx, ColUsuarios, &recs); err != nil {
		return nil, err
	}
	usuarios := make([]model.Usuario, 0, len(recs))
	for _, rec := range recs {
		u, err := model.NuevoUsuario(rec.Nombre, rec.Username, rec.Password, rec.Rol)
		if err != nil {
			r.log.Warn().Str("username", rec.Username).Err(err).Msg("usuario persistido inválido, se omite")
			continue
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, nil
}

func (r *usuarioRepo) ReplaceAll(ctx context.Context, usuarios []model.Usuario) error {
	recs := make([]usuarioRecord, len(usuarios))
	for i, u := range usuarios {
		recs[i] = usuarioRecord{
			Nombre:   u.Nombre,
			Username: u.Username,
			Password: u.Password,
			Rol:      u.Rol,
		}
	}
	return r.store.Save(ctx, ColUsuarios, recs)
}
