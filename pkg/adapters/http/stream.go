package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/devfolio/pkg/domain"
)

// allPortfolios is the subscription key that receives every event.
const allPortfolios = ""

// StreamManager fans store events out to SSE subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // portfolio ID -> set of channels
	logger      *slog.Logger
}

func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a channel for events of id, or of every portfolio
// when id is empty. The returned func unsubscribes and closes the channel.
func (sm *StreamManager) Subscribe(id string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[id]; !ok {
		sm.subscribers[id] = make(map[chan<- string]struct{})
	}
	sm.subscribers[id][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[id]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, id)
			}
		}
	}
}

// Broadcast sends msg to the subscribers of id and to global subscribers.
// Slow subscribers miss messages instead of blocking the writer.
func (sm *StreamManager) Broadcast(id string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	keys := []string{allPortfolios}
	if id != allPortfolios {
		keys = append(keys, id)
	}
	for _, key := range keys {
		for ch := range sm.subscribers[key] {
			select {
			case ch <- msg:
			default:
				sm.logger.Warn("SSE: Client buffer full, dropping message", "id", id)
			}
		}
	}
}

// Hooks returns lifecycle hooks that broadcast store events as JSON.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStore: func(_ context.Context, e *domain.StoreEvent) {
			data, err := json.Marshal(e)
			if err != nil {
				sm.logger.Error("SSE: failed to encode event", "error", err)
				return
			}
			sm.Broadcast(e.ID, string(data))
		},
	}
}
