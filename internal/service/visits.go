package service

import (
	"context"
	"sync"
	"time"

	"relink/internal/model"

	"github.com/rs/zerolog/log"
)

// Accountant increments the durable visit counter off the redirect path.
// Visits go through a bounded queue consumed by a single worker, so
// failures and backpressure are observable instead of vanishing into
// dangling goroutines.
type Accountant struct {
	store     LinkStoreInterface
	cache     LinkCacheInterface
	queue     chan model.Visit
	done      chan struct{}
	closeOnce sync.Once
}

// NewAccountant creates an Accountant and starts its worker
func NewAccountant(store LinkStoreInterface, cache LinkCacheInterface, queueSize int) *Accountant {
	a := &Accountant{
		store: store,
		cache: cache,
		queue: make(chan model.Visit, queueSize),
		done:  make(chan struct{}),
	}
	go a.worker()
	return a
}

// Record enqueues a visit without blocking. It reports whether the visit
// was accepted; a full queue drops the visit and the redirect proceeds
// regardless.
func (a *Accountant) Record(v model.Visit) bool {
	select {
	case a.queue <- v:
		return true
	default:
		log.Warn().Str("short_code", v.ShortCode).Msg("Visit queue full, dropping visit")
		return false
	}
}

// Pending returns the number of queued, unprocessed visits
func (a *Accountant) Pending() int {
	return len(a.queue)
}

// Close stops accepting visits and waits for the queue to drain
func (a *Accountant) Close() {
	a.closeOnce.Do(func() {
		close(a.queue)
	})
	<-a.done
}

func (a *Accountant) worker() {
	defer close(a.done)
	for v := range a.queue {
		a.process(v)
	}
}

func (a *Accountant) process(v model.Visit) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	visits, err := a.store.IncrementVisits(ctx, v.ShortCode)
	if err != nil {
		log.Error().Err(err).Str("short_code", v.ShortCode).Msg("Failed to increment visit count")
		return
	}

	// Reaching the cap changes validity, so it rides the invalidation
	// path like any other validity mutation.
	if v.MaxClicks != nil && visits >= *v.MaxClicks {
		if err := a.cache.DeleteLink(ctx, v.ShortCode); err != nil {
			log.Warn().Err(err).Str("short_code", v.ShortCode).Msg("Failed to invalidate exhausted link")
		}
	}
}
