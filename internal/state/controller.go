// Package state implements the application state controller: the single owner
// of the four in-memory collections (usuarios, productos, ventas, historial)
// and the login session. Every mutation goes through it so persistence and
// side effects stay consistent with observable state. Collections are held as
// copy-on-write slices; readers get snapshots that are never mutated later.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/notify"
	"github.com/JoelHidalgo58/myapp-inv2/internal/repository"
)

// actorSistema is recorded as the audit actor when no session is active.
const actorSistema = "sistema"

// Sesion is the login state: LoggedOut (zero value) or LoggedIn with the
// active user's identity and role.
type Sesion struct {
	Activa   bool
	Username string
	Nombre   string
	Rol      string
}

type Controller struct {
	log         zerolog.Logger
	usuarios    repository.UsuarioRepository
	productos   repository.ProductoRepository
	ventas      repository.VentaRepository
	historial   repository.HistorialRepository
	notificador notify.Notificador
	persister   *Persister

	mu              sync.RWMutex
	listaUsuarios   []model.Usuario
	listaProductos  []model.Producto
	listaVentas     []model.Venta
	listaHistorial  []model.AccionHistorial
	sesion          Sesion
}

func NewController(
	usuarios repository.UsuarioRepository,
	productos repository.ProductoRepository,
	ventas repository.VentaRepository,
	historial repository.HistorialRepository,
	notificador notify.Notificador,
	persister *Persister,
	log zerolog.Logger,
) *Controller {
	return &Controller{
		log:         log,
		usuarios:    usuarios,
		productos:   productos,
		ventas:      ventas,
		historial:   historial,
		notificador: notificador,
		persister:   persister,
	}
}

// Cargar initializes the in-memory collections from the store. When the user
// collection comes back empty the bootstrap administrator is seeded and
// persisted synchronously, so a second load finds it instead of re-creating it.
func (c *Controller) Cargar(ctx context.Context, adminUsername, adminPassword string) error {
	usuarios, err := c.usuarios.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(usuarios) == 0 {
		admin, err := model.NuevoUsuario("Administrador", adminUsername, adminPassword, model.RolAdministrador)
		if err != nil {
			return fmt.Errorf("crear administrador por defecto: %w", err)
		}
		usuarios = []model.Usuario{admin}
		if err := c.usuarios.ReplaceAll(ctx, usuarios); err != nil {
			return fmt.Errorf("persistir administrador por defecto: %w", err)
		}
		c.log.Info().Str("username", adminUsername).Msg("usuario administrador por defecto creado")
	}

	productos, err := c.productos.ListAll(ctx)
	if err != nil {
		return err
	}
	ventas, err := c.ventas.ListAll(ctx)
	if err != nil {
		return err
	}
	historial, err := c.historial.ListAll(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.listaUsuarios = usuarios
	c.listaProductos = productos
	c.listaVentas = ventas
	c.listaHistorial = historial
	c.mu.Unlock()
	return nil
}

// Cerrar flushes every pending persistence write. Call on shutdown.
func (c *Controller) Cerrar() {
	c.persister.Cerrar()
}

// ── Snapshots ────────────────────────────────────────────────────────────────

func (c *Controller) Usuarios() []model.Usuario {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listaUsuarios
}

func (c *Controller) Productos() []model.Producto {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listaProductos
}

func (c *Controller) Ventas() []model.Venta {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listaVentas
}

func (c *Controller) Historial() []model.AccionHistorial {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listaHistorial
}

// Alertas derives the transient alert list from the current catalog.
// Recomputed from scratch on every call, never cached.
func (c *Controller) Alertas() []model.Alerta {
	return model.GenerarAlertasInventario(c.Productos())
}

// ── Session ──────────────────────────────────────────────────────────────────

// IniciarSesion matches credentials by exact string equality against the user
// collection and opens the session on success.
func (c *Controller) IniciarSesion(username, password string) (model.Usuario, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, u := range c.listaUsuarios {
		if u.Username == username && u.Password == password {
			c.sesion = Sesion{Activa: true, Username: u.Username, Nombre: u.Nombre, Rol: u.Rol}
			c.notificador.Notificar(fmt.Sprintf("¡Bienvenido, %s!", u.Nombre), notify.SeveridadInfo)
			return u, nil
		}
	}
	return model.Usuario{}, errors.New("credenciales invalidas")
}

func (c *Controller) CerrarSesion() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sesion = Sesion{}
}

func (c *Controller) Sesion() Sesion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sesion
}

// SesionActivaPara reports whether username currently holds the open session.
func (c *Controller) SesionActivaPara(username string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sesion.Activa && c.sesion.Username == username
}

// ── Shared internals (callers hold c.mu) ─────────────────────────────────────

// registrarAccionLocked appends an audit entry attributed to the session user
// and schedules the history write.
func (c *Controller) registrarAccionLocked(tipo model.TipoAccion, descripcion string) {
	actor := c.sesion.Username
	if actor == "" {
		actor = actorSistema
	}
	accion, err := model.NuevaAccion(tipo, descripcion, time.Now(), actor)
	if err != nil {
		c.log.Error().Err(err).Msg("acción de historial inválida, se descarta")
		return
	}
	historial := append(append([]model.AccionHistorial(nil), c.listaHistorial...), accion)
	c.listaHistorial = historial
	c.persistirHistorialLocked()
}

// evaluarAlertasLocked walks the catalog after a stock mutation: products
// under the low-stock threshold get an ALERTA history entry plus a warning
// notification; sold-out products additionally get an error notification with
// no extra history entry. The asymmetry is intentional.
func (c *Controller) evaluarAlertasLocked() {
	for _, p := range c.listaProductos {
		if p.Cantidad < model.UmbralStockBajo {
			c.registrarAccionLocked(model.AccionAlerta,
				fmt.Sprintf("Stock bajo en '%s' (%d unidades)", p.Nombre, p.Cantidad))
			c.notificador.Notificar(
				fmt.Sprintf("¡Stock bajo! %s tiene solo %d unidades", p.Nombre, p.Cantidad),
				notify.SeveridadAdvertencia)
		}
		if p.Cantidad == 0 {
			c.notificador.Notificar(
				fmt.Sprintf("¡Sin stock! %s se ha agotado", p.Nombre),
				notify.SeveridadError)
		}
	}
}

func (c *Controller) persistirUsuariosLocked() {
	snapshot := c.listaUsuarios
	c.persister.Encolar(repository.ColUsuarios, func(ctx context.Context) error {
		return c.usuarios.ReplaceAll(ctx, snapshot)
	})
}

func (c *Controller) persistirProductosLocked() {
	snapshot := c.listaProductos
	c.persister.Encolar(repository.ColProductos, func(ctx context.Context) error {
		return c.productos.ReplaceAll(ctx, snapshot)
	})
}

func (c *Controller) persistirVentasLocked() {
	snapshot := c.listaVentas
	c.persister.Encolar(repository.ColVentas, func(ctx context.Context) error {
		return c.ventas.ReplaceAll(ctx, snapshot)
	})
}

func (c *Controller) persistirHistorialLocked() {
	snapshot := c.listaHistorial
	c.persister.Encolar(repository.ColHistorial, func(ctx context.Context) error {
		return c.historial.ReplaceAll(ctx, snapshot)
	})
}
