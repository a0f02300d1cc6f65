package state

import (
	"fmt"

	"github.com/JoelHidalgo58/myapp-inv2/internal/model"
	"github.com/JoelHidalgo58/myapp-inv2/internal/notify"
)

// ActualizarUsuario replaces the account matching u.Username, or appends it
// when no such account exists. Afterwards the session is reconciled: if the
// active user vanished the session is closed, if only their role changed the
// session role is updated in place.
func (c *Controller) ActualizarUsuario(u model.Usuario) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	usuarios := append([]model.Usuario(nil), c.listaUsuarios...)
	reemplazado := false
	for i, existente := range usuarios {
		if existente.Username == u.Username {
			usuarios[i] = u
			reemplazado = true
			break
		}
	}
	if !reemplazado {
		usuarios = append(usuarios, u)
	}
	c.listaUsuarios = usuarios
	c.persistirUsuariosLocked()
	c.sincronizarSesionLocked()
	return nil
}

// EliminarUsuario removes the account matching username.
func (c *Controller) EliminarUsuario(username string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	usuarios := make([]model.Usuario, 0, len(c.listaUsuarios))
	for _, u := range c.listaUsuarios {
		if u.Username != username {
			usuarios = append(usuarios, u)
		}
	}
	if len(usuarios) == len(c.listaUsuarios) {
		return fmt.Errorf("usuario '%s' no encontrado", username)
	}
	c.listaUsuarios = usuarios
	c.persistirUsuariosLocked()
	c.sincronizarSesionLocked()
	return nil
}

// sincronizarSesionLocked re-checks the active session against the user
// collection after any user mutation.
func (c *Controller) sincronizarSesionLocked() {
	if !c.sesion.Activa {
		return
	}
	for _, u := range c.listaUsuarios {
		if u.Username != c.sesion.Username {
			continue
		}
		if u.Rol != c.sesion.Rol {
			c.sesion.Rol = u.Rol
			c.notificador.Notificar("Tu rol ha sido actualizado", notify.SeveridadInfo)
		}
		return
	}
	// The active user no longer exists: force logout.
	c.sesion = Sesion{}
	c.notificador.Notificar("Tu cuenta ha sido eliminada o modificada", notify.SeveridadAdvertencia)
}
