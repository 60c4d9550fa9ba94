package service

import (
	"fmt"
	"log/slog"
	"sync"
)

// entry is a registered service and whether its failure is tolerated
type entry struct {
	svc      Service
	optional bool
}

// Hub is the runtime container for service instances
// Services start in registration order and stop in reverse
type Hub struct {
	mu       sync.Mutex
	logger   *slog.Logger
	services []entry
	names    map[string]bool
	started  []Service // Services that completed Start(), for rollback
}

// NewHub creates an empty service hub; a nil logger uses slog.Default
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger: logger,
		names:  make(map[string]bool),
	}
}

// Register adds a service. An optional service that fails to start is
// logged and skipped instead of failing StartAll.
func (h *Hub) Register(svc Service, optional bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if h.names[name] {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.names[name] = true
	h.services = append(h.services, entry{svc: svc, optional: optional})
	return nil
}

// StartAll calls Start on all services in registration order
// On a required failure, calls Stop on already-started services in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = nil

	for _, e := range h.services {
		name := e.svc.Name()
		if err := e.svc.Start(); err != nil {
			if e.optional {
				h.logger.Warn("service unavailable", "service", name, "error", err)
				continue
			}
			// Rollback: stop already-started in reverse order
			for i := len(h.started) - 1; i >= 0; i-- {
				h.started[i].Stop()
			}
			h.started = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.logger.Debug("service started", "service", name)
		h.started = append(h.started, e.svc)
	}

	return nil
}

// StopAll calls Stop on all started services in reverse order
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.started) - 1; i >= 0; i-- {
		h.started[i].Stop()
	}
	h.started = nil
}

// Running returns the names of started services in start order
func (h *Hub) Running() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := make([]string, len(h.started))
	for i, svc := range h.started {
		names[i] = svc.Name()
	}
	return names
}
