// Package cache contiene los adaptadores de caché del reporte ejecutivo:
// en memoria (una sola instancia) y Redis (compartida entre instancias).
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/retail-pos/internal/application/dto"
	"github.com/jhoicas/retail-pos/internal/application/reports"
)

var _ reports.ReportCache = (*MemoryReportCache)(nil)

const defaultCleanupInterval = time.Minute

type memoryEntry struct {
	report    *dto.ExecutiveReportDTO
	expiresAt time.Time
}

// MemoryReportCache caché en memoria con expiración fija por entrada.
// Start lanza la limpieza periódica de entradas vencidas; Stop la detiene y espera su fin.
// Sin Start la caché funciona igual, solo que las entradas vencidas se eliminan al leerlas.
type MemoryReportCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time

	cleanupInterval time.Duration
	stopCh          chan struct{}
	done            chan struct{}
	running         bool
}

// MemoryOption opción funcional de MemoryReportCache.
type MemoryOption func(*MemoryReportCache)

// WithCleanupInterval cada cuánto se eliminan las entradas vencidas.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(c *MemoryReportCache) {
		if d > 0 {
			c.cleanupInterval = d
		}
	}
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) MemoryOption {
	return func(c *MemoryReportCache) {
		c.now = now
	}
}

// NewMemoryReportCache construye la caché sin iniciar la limpieza.
func NewMemoryReportCache(opts ...MemoryOption) *MemoryReportCache {
	c := &MemoryReportCache{
		entries:         make(map[string]memoryEntry),
		now:             time.Now,
		cleanupInterval: defaultCleanupInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start inicia la limpieza periódica. Llamarlo dos veces no tiene efecto.
func (c *MemoryReportCache) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return nil
	}
	c.running = true
	c.stopCh = make(chan struct{})
	c.done = make(chan struct{})
	go c.cleanupLoop(c.stopCh, c.done)
	return nil
}

// Stop detiene la limpieza, espera a que termine y vacía la caché.
func (c *MemoryReportCache) Stop() error {
	c.mu.Lock()
	if !c.running {
		c.entries = make(map[string]memoryEntry)
		c.mu.Unlock()
		return nil
	}
	c.running = false
	stopCh, done := c.stopCh, c.done
	c.mu.Unlock()

	close(stopCh)
	<-done

	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

// Get devuelve el reporte si existe y no ha vencido.
func (c *MemoryReportCache) Get(_ context.Context, key string) (*dto.ExecutiveReportDTO, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.report, true, nil
}

// Set guarda el reporte por ttl. Un reporte nil o ttl ≤ 0 no se guarda.
func (c *MemoryReportCache) Set(_ context.Context, key string, report *dto.ExecutiveReportDTO, ttl time.Duration) error {
	if report == nil || ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{report: report, expiresAt: c.now().Add(ttl)}
	return nil
}

// Len cantidad de entradas almacenadas, vencidas o no.
func (c *MemoryReportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge elimina las entradas vencidas y devuelve cuántas quitó.
func (c *MemoryReportCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

func (c *MemoryReportCache) cleanupLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.Purge()
		}
	}
}
