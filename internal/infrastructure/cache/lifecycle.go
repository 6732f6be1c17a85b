package cache

import "context"

// Lifecycle ciclo de vida explícito de una caché; lo maneja quien controla la vida de la aplicación.
type Lifecycle interface {
	Start(ctx context.Context) error
	Stop() error
}

var (
	_ Lifecycle = (*MemoryReportCache)(nil)
	_ Lifecycle = (*RedisReportCache)(nil)
)
