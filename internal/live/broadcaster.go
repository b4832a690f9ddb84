// Package live fans committed appointment mutations out to connected admin
// dashboards. Delivery is best effort and happens after the transaction has
// committed; a slow or gone observer never blocks a booking.
package live

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/aladinbarber/booking-api/internal/models"
)

const channelName = "appointments.events"

// Event wraps one committed appointment mutation.
type Event struct {
	ID          string              `json:"id"`
	Appointment *models.Appointment `json:"appointment"`
}

// Broadcaster distributes events to local SSE observers. When a Redis client
// is configured, events also travel through a pub/sub channel so every API
// instance sees mutations committed by its peers; without Redis the
// broadcaster degrades to in-process delivery only.
type Broadcaster struct {
	rdb *redis.Client

	mu        sync.Mutex
	observers map[chan Event]struct{}
}

// NewBroadcaster builds a broadcaster. rdb may be nil.
func NewBroadcaster(rdb *redis.Client) *Broadcaster {
	b := &Broadcaster{
		rdb:       rdb,
		observers: make(map[chan Event]struct{}),
	}
	if rdb != nil {
		go b.relay()
	}
	return b
}

// NewRedisClient connects to Redis; returns nil when the server is
// unreachable so callers degrade gracefully.
func NewRedisClient(addr, password string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("live: redis unavailable, falling back to local fan-out: %v", err)
		return nil
	}
	return client
}

// Publish emits a mutation to every observer. Call only after commit.
func (b *Broadcaster) Publish(ctx context.Context, ap *models.Appointment) {
	ev := Event{ID: uuid.NewString(), Appointment: ap}

	if b.rdb != nil {
		payload, err := json.Marshal(ev)
		if err != nil {
			log.Printf("live: marshal event failed: %v", err)
			return
		}
		if err := b.rdb.Publish(ctx, channelName, payload).Err(); err != nil {
			log.Printf("live: redis publish failed, delivering locally: %v", err)
			b.deliver(ev)
		}
		// Local observers receive the event through the relay subscription.
		return
	}

	b.deliver(ev)
}

// Subscribe registers an observer channel. The returned cancel func must be
// called when the observer disconnects.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.observers[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.observers[ch]; ok {
			delete(b.observers, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// deliver pushes to local observers, dropping events for observers whose
// buffer is full (at most once per observer per event, never twice).
func (b *Broadcaster) deliver(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.observers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// relay pumps the Redis channel into local observers, reconnecting forever.
func (b *Broadcaster) relay() {
	ctx := context.Background()
	for {
		sub := b.rdb.Subscribe(ctx, channelName)
		for msg := range sub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("live: bad event payload: %v", err)
				continue
			}
			b.deliver(ev)
		}
		_ = sub.Close()
		log.Println("live: redis subscription lost, retrying")
		time.Sleep(2 * time.Second)
	}
}
