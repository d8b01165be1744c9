package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Prober interface {
	Health(ctx context.Context) error
}

// Notifier tracks whether the server is reachable. Subscribers hear about every
// online/offline transition exactly once, in order.
type Notifier struct {
	prober   Prober
	interval time.Duration
	timeout  time.Duration

	mu          sync.Mutex
	deliver     sync.Mutex
	known       bool
	online      bool
	nextID      int
	subscribers map[int]func(online bool)
}

func New(prober Prober, interval, timeout time.Duration) *Notifier {
	return &Notifier{
		prober:      prober,
		interval:    interval,
		timeout:     timeout,
		subscribers: map[int]func(bool){},
	}
}

// Online reports the last observed state. Before the first observation the server is
// assumed unreachable.
func (n *Notifier) Online() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.online
}

// Subscribe registers fn for future transitions and returns a function that removes it.
func (n *Notifier) Subscribe(fn func(online bool)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subscribers[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		delete(n.subscribers, id)
	}
}

// Observe records a reachability sample. The first sample only sets the initial state.
func (n *Notifier) Observe(online bool) {
	n.deliver.Lock()
	defer n.deliver.Unlock()

	n.mu.Lock()

	changed := n.known && n.online != online
	first := !n.known
	n.known = true
	n.online = online

	subscribers := make([]func(bool), 0, len(n.subscribers))
	if changed {
		for _, fn := range n.subscribers {
			subscribers = append(subscribers, fn)
		}
	}

	n.mu.Unlock()

	if first {
		log.Info().Bool("online", online).Msg("Initial connectivity state")
	}

	if !changed {
		return
	}

	log.Info().Bool("online", online).Msg("Connectivity changed")

	for _, fn := range subscribers {
		fn(online)
	}
}

// Probe asks the server once and records the answer.
func (n *Notifier) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	err := n.prober.Health(probeCtx)
	if err != nil {
		log.Debug().Err(err).Msg("Health probe failed")
	}

	n.Observe(err == nil)

	return err == nil
}

// Run probes immediately and then on every interval until ctx is done.
func (n *Notifier) Run(ctx context.Context) {
	n.Probe(ctx)

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.Probe(ctx)
		}
	}
}
