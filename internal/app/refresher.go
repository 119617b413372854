package app

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/five82/pixday/internal/gallery"
	"github.com/five82/pixday/internal/state"
)

const (
	defaultRefreshInterval = 30 * time.Second
	maxBackoff             = 2 * time.Minute
)

// Source loads the full gallery and calendar.
type Source interface {
	Load(ctx context.Context) ([]gallery.Entry, map[string]string, error)
}

// Refresher copies the gallery from its Source into the shared store. Calls
// are serialized so a refresh triggered by a UI write never races the
// background loop and leaves older data behind.
type Refresher struct {
	mu     sync.Mutex
	store  *state.Store
	source Source
}

// NewRefresher returns a Refresher that writes into store.
func NewRefresher(store *state.Store, source Source) *Refresher {
	return &Refresher{store: store, source: source}
}

// Refresh reloads the store once. Failures are recorded in the store and logged.
func (r *Refresher) Refresh(ctx context.Context) {
	_ = r.refresh(ctx)
}

func (r *Refresher) refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, calendar, err := r.source.Load(ctx)
	if err != nil {
		r.store.Update(nil, nil, err)
		log.Printf("gallery refresh failed: %v", err)
		return err
	}
	r.store.Update(entries, calendar, nil)
	return nil
}

// Start launches a background goroutine that refreshes the store every
// interval, backing off while the source keeps failing. It returns
// immediately; the caller is expected to have done the initial refresh.
func (r *Refresher) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	go func() {
		failures := 0
		timer := time.NewTimer(calculateBackoff(r.store.Snapshot().ConsecutiveFailures, interval))
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			if err := r.refresh(ctx); err != nil {
				failures++
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff. A base above the cap is returned unchanged.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 || base >= maxBackoff {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
