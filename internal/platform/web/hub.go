// Package web streams game snapshots to websocket spectators.
package web

import (
	"encoding/json"
	"fmt"
	"sync"
)

// subscriberBuffer is the number of frames a slow spectator may lag behind
// before frames are dropped for it.
const subscriberBuffer = 64

// Broadcaster fans encoded frames out to subscribers.
// Sends never block: a full subscriber channel drops the frame.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan []byte
	latest      []byte
	dropped     uint64
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan []byte),
	}
}

// Register creates the channel for a subscriber. A previous channel with the
// same id is closed. The latest frame, if any, is queued immediately.
func (b *Broadcaster) Register(id string) <-chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan []byte, subscriberBuffer)
	if b.latest != nil {
		ch <- b.latest
	}
	b.subscribers[id] = ch
	return ch
}

// Unregister removes a subscriber and closes its channel.
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Broadcast sends a frame to every subscriber.
func (b *Broadcaster) Broadcast(frame []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.latest = frame
	for _, ch := range b.subscribers {
		select {
		case ch <- frame:
		default:
			b.dropped++
		}
	}
}

// Publish encodes v as JSON and broadcasts it.
func (b *Broadcaster) Publish(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("web: encode snapshot: %w", err)
	}
	b.Broadcast(data)
	return nil
}

// Latest returns the most recent frame, or nil before the first publish.
func (b *Broadcaster) Latest() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.latest
}

// SubscriberCount returns the number of active subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped returns how many frames were dropped for slow subscribers.
func (b *Broadcaster) Dropped() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}

// Close unregisters every subscriber.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
