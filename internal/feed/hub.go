// Package feed turns store writes into push notifications for live views.
package feed

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Hub fans change signals out to subscribers of a topic. Signals are
// coalesced: a slow subscriber sees at most one pending signal.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan struct{}]struct{}),
	}
}

// Subscribe returns a channel signalled after each Publish on any of topics.
// The channel is closed once ctx is done.
func (h *Hub) Subscribe(ctx context.Context, topics ...string) <-chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	for _, topic := range topics {
		if h.subs[topic] == nil {
			h.subs[topic] = make(map[chan struct{}]struct{})
		}
		h.subs[topic][ch] = struct{}{}
	}
	h.mu.Unlock()
	go func() {
		<-ctx.Done()
		h.mu.Lock()
		for _, topic := range topics {
			delete(h.subs[topic], ch)
			if len(h.subs[topic]) == 0 {
				delete(h.subs, topic)
			}
		}
		h.mu.Unlock()
		close(ch)
	}()
	return ch
}

func (h *Hub) Publish(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (h *Hub) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[topic])
}

// GlobalTasksTopic carries changes of tasks shared by all users.
const GlobalTasksTopic = "tasks:global"

func CheckInsTopic(uid uuid.UUID) string {
	return "checkins:" + uid.String()
}

func TasksTopic(uid uuid.UUID) string {
	return "tasks:" + uid.String()
}

func StudyTopic(uid uuid.UUID) string {
	return "study:" + uid.String()
}

// Watch emits load's result now and again after every change on topic.
// The returned channel is closed when ctx is done or load fails.
func Watch[T any](ctx context.Context, h *Hub, topic string, load func(context.Context) (T, error)) <-chan T {
	return WatchTopics(ctx, h, []string{topic}, load)
}

// WatchTopics is Watch reloading on a change of any of topics.
func WatchTopics[T any](ctx context.Context, h *Hub, topics []string, load func(context.Context) (T, error)) <-chan T {
	ctx, cancel := context.WithCancel(ctx)
	changes := h.Subscribe(ctx, topics...)
	topic := strings.Join(topics, ",")
	out := make(chan T)
	go func() {
		defer cancel()
		defer close(out)
		for {
			value, err := load(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Default().Error("feed reload failed", slog.String("topic", topic), slog.String("error", err.Error()))
				}
				return
			}
			select {
			case out <- value:
			case <-ctx.Done():
				return
			}
			if _, ok := <-changes; !ok {
				return
			}
		}
	}()
	return out
}
