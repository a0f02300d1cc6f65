// Package notify is the notification collaborator: it accepts a message plus
// severity and displays it somewhere; callers never inspect delivery success.
package notify

import (
	"github.com/rs/zerolog"
)

type Severidad int

const (
	SeveridadInfo Severidad = iota
	SeveridadAdvertencia
	SeveridadError
)

func (s Severidad) String() string {
	switch s {
	case SeveridadAdvertencia:
		return "ADVERTENCIA"
	case SeveridadError:
		return "ERROR"
	default:
		return "INFO"
	}
}

type Notificador interface {
	Notificar(mensaje string, severidad Severidad)
}

// LogNotificador delivers notifications through the structured log, the
// headless equivalent of the on-screen system notification.
type LogNotificador struct {
	log zerolog.Logger
}

func NewLogNotificador(log zerolog.Logger) *LogNotificador {
	return &LogNotificador{log: log}
}

func (n *LogNotificador) Notificar(mensaje string, severidad Severidad) {
	switch severidad {
	case SeveridadAdvertencia:
		n.log.Warn().Msg(mensaje)
	case SeveridadError:
		n.log.Error().Msg(mensaje)
	default:
		n.log.Info().Msg(mensaje)
	}
}
