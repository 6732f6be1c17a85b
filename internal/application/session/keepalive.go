// Package session mantiene viva la sesión con la base de datos mientras la aplicación corre.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultInterval    = 4 * time.Minute
	defaultPingTimeout = 5 * time.Second
)

// Pinger lo satisface *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KeepAlive hace ping periódico al pool para que las conexiones ociosas no se cierren.
// Un ping fallido se registra y el ciclo continúa.
type KeepAlive struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	pings   int
	failure int
}

// NewKeepAlive construye el keep-alive sin iniciarlo. interval ≤ 0 usa 4 minutos.
func NewKeepAlive(pinger Pinger, interval time.Duration, logger zerolog.Logger) *KeepAlive {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &KeepAlive{
		pinger:   pinger,
		interval: interval,
		timeout:  defaultPingTimeout,
		logger:   logger.With().Str("component", "keepalive").Logger(),
	}
}

// Start lanza el ciclo de ping; termina con Stop o al cancelarse ctx. Llamarlo dos veces no tiene efecto.
func (k *KeepAlive) Start(ctx context.Context) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.cancel != nil {
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	k.cancel = cancel
	k.done = make(chan struct{})
	go k.loop(loopCtx, k.done)
	k.logger.Info().Dur("interval", k.interval).Msg("keep-alive iniciado")
}

// Stop detiene el ciclo y espera a que termine.
func (k *KeepAlive) Stop() {
	k.mu.Lock()
	cancel, done := k.cancel, k.done
	k.cancel, k.done = nil, nil
	k.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	k.logger.Info().Msg("keep-alive detenido")
}

// Stats cantidad de pings realizados y fallidos.
func (k *KeepAlive) Stats() (pings, failures int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pings, k.failure
}

func (k *KeepAlive) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.ping(ctx)
		}
	}
}

func (k *KeepAlive) ping(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, k.timeout)
	defer cancel()
	err := k.pinger.Ping(pingCtx)

	k.mu.Lock()
	k.pings++
	if err != nil {
		k.failure++
	}
	k.mu.Unlock()

	if err != nil {
		if ctx.Err() != nil {
			return
		}
		k.logger.Warn().Err(err).Msg("ping a la base de datos fallido")
		return
	}
	k.logger.Debug().Msg("ping a la base de datos ok")
}
