package state

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type tarea func(ctx context.Context) error

type cola struct {
	pendiente chan tarea // cap 1: holds at most the latest snapshot write
}

// Persister serializes persistence writes through one goroutine per
// collection and coalesces bursts: a write scheduled while another is still
// pending replaces it, so only the latest snapshot of each collection ever
// reaches the store and writes of one collection can never complete out of
// order. Write failures are logged, never surfaced to mutation callers.
type Persister struct {
	log zerolog.Logger

	mu      sync.Mutex
	colas   map[string]*cola
	cerrado bool
	wg      sync.WaitGroup
}

func NewPersister(log zerolog.Logger) *Persister {
	return &Persister{log: log, colas: make(map[string]*cola)}
}

// Encolar schedules fn as the pending write for coleccion, replacing any
// still-unwritten predecessor. After Cerrar it is a no-op.
func (p *Persister) Encolar(coleccion string, fn tarea) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cerrado {
		return
	}
	q, ok := p.colas[coleccion]
	if !ok {
		q = &cola{pendiente: make(chan tarea, 1)}
		p.colas[coleccion] = q
		p.wg.Add(1)
		go p.atender(coleccion, q)
	}
	select {
	case q.pendiente <- fn:
	default:
		// Latest wins: drop the stale snapshot still waiting.
		select {
		case <-q.pendiente:
		default:
		}
		q.pendiente <- fn
	}
}

func (p *Persister) atender(coleccion string, q *cola) {
	defer p.wg.Done()
	for fn := range q.pendiente {
		if err := fn(context.Background()); err != nil {
			p.log.Warn().Str("coleccion", coleccion).Err(err).Msg("escritura de colección fallida")
		}
	}
}

// Cerrar drains every pending write and stops the workers (final flush).
func (p *Persister) Cerrar() {
	p.mu.Lock()
	if p.cerrado {
		p.mu.Unlock()
		return
	}
	p.cerrado = true
	for _, q := range p.colas {
		close(q.pendiente)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
