package events

import (
	"sync"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/queue"
)

// Broadcaster fans lead-sold events out to every connected catalog client.
// Subscribers get a buffered channel; a subscriber that stops draining is
// skipped rather than blocking the rest.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan queue.LeadSoldPayload]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan queue.LeadSoldPayload]struct{}),
	}
}

func (b *Broadcaster) Subscribe() chan queue.LeadSoldPayload {
	ch := make(chan queue.LeadSoldPayload, 16)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	return ch
}

func (b *Broadcaster) Unsubscribe(ch chan queue.LeadSoldPayload) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

func (b *Broadcaster) Publish(payload queue.LeadSoldPayload) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- payload:
		default:
			// Slow consumer; it will catch up on its next full fetch.
		}
	}
}

// SubscriberCount is exposed for the health view.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
