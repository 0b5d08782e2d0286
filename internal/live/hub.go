// Package live keeps the public snapshot of the news collection and fans it
// out to connected viewers. Every change replaces the whole snapshot; there
// are no diffs.
package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/metrics"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

// Source supplies ordered full reads of the collection.
type Source interface {
	List(ctx context.Context) (newsportal.NewsList, error)
}

// Snapshot is a full, point-in-time copy of the collection.
type Snapshot struct {
	Version uint64
	At      time.Time
	Items   newsportal.NewsList
}

type Hub struct {
	source  Source
	log     *slog.Logger
	metrics *metrics.Metrics

	trigger chan struct{}

	mu       sync.RWMutex
	snapshot Snapshot
	loaded   bool
	subs     map[*Subscription]struct{}
}

func NewHub(source Source, logger *slog.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		source:  source,
		log:     logger,
		metrics: m,
		trigger: make(chan struct{}, 1),
		subs:    make(map[*Subscription]struct{}),
	}
}

// Notify asks for a refresh. Calls made while one is pending are coalesced.
func (h *Hub) Notify() {
	select {
	case h.trigger <- struct{}{}:
	default:
	}
}

// Run loads the first snapshot and then refreshes on every Notify until ctx is done.
// Subscriptions are closed on return.
func (h *Hub) Run(ctx context.Context) error {
	defer h.closeAll()

	_ = h.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-h.trigger:
			_ = h.Refresh(ctx)
		}
	}
}

// Refresh reads the collection and, on success, replaces the snapshot and broadcasts it.
// A failed read keeps the previous snapshot and is only logged.
func (h *Hub) Refresh(ctx context.Context) error {
	start := time.Now()
	items, err := h.source.List(ctx)
	if h.metrics != nil {
		h.metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		h.log.Error("news snapshot refresh failed", "error", err)
		if h.metrics != nil {
			h.metrics.RefreshErrors.Inc()
		}
		return err
	}

	h.mu.Lock()
	snap := Snapshot{
		Version: h.snapshot.Version + 1,
		At:      time.Now(),
		Items:   items,
	}
	h.snapshot = snap
	h.loaded = true
	subs := make([]*Subscription, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		s.offer(snap)
	}

	if h.metrics != nil {
		h.metrics.Broadcasts.Inc()
		h.metrics.SnapshotSize.Set(float64(len(items)))
	}
	h.log.Debug("news snapshot broadcast", "version", snap.Version, "items", len(items), "subscribers", len(subs))

	return nil
}

// Snapshot returns the last received snapshot.
func (h *Hub) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snapshot
}

// Subscribe registers a viewer. The current snapshot, if any, is delivered right away.
func (h *Hub) Subscribe() *Subscription {
	s := &Subscription{
		hub: h,
		ch:  make(chan Snapshot, 1),
	}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	snap, loaded := h.snapshot, h.loaded
	h.mu.Unlock()

	if loaded {
		s.offer(snap)
	}
	if h.metrics != nil {
		h.metrics.Subscribers.Inc()
	}

	return s
}

func (h *Hub) remove(s *Subscription) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[s]; !ok {
		return false
	}
	delete(h.subs, s)
	return true
}

func (h *Hub) closeAll() {
	h.mu.RLock()
	subs := make([]*Subscription, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.RUnlock()

	for _, s := range subs {
		s.Close()
	}
}

// Subscription receives snapshots in increasing version order. Only the latest
// undelivered snapshot is kept.
type Subscription struct {
	hub *Hub

	mu     sync.Mutex
	ch     chan Snapshot
	last   uint64
	closed bool
}

// C is closed when the subscription or the hub shuts down.
func (s *Subscription) C() <-chan Snapshot {
	return s.ch
}

func (s *Subscription) offer(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// an older snapshot never replaces a newer one
	if s.closed || snap.Version <= s.last {
		return
	}
	s.last = snap.Version

	select {
	case s.ch <- snap:
		return
	default:
	}

	// drop the stale one
	select {
	case <-s.ch:
	default:
	}
	s.ch <- snap
}

func (s *Subscription) Close() {
	if s.hub.remove(s) && s.hub.metrics != nil {
		s.hub.metrics.Subscribers.Dec()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
