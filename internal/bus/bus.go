// Package bus delivers events to subscribers by type.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var (
	mu   sync.RWMutex
	_ctx = context.Background()
	subs = make(map[string][]func(ctx context.Context, event any))
)

func SetContext(ctx context.Context) {
	mu.Lock()
	_ctx = ctx
	mu.Unlock()
}

// Subscribe registers fn for events of type T. Subscribers run synchronously in
// Publish.
func Subscribe[T any](name string, fn func(ctx context.Context, event T) error) {
	topic := fmt.Sprintf("%T", *new(T))

	mu.Lock()
	subs[topic] = append(subs[topic], func(ctx context.Context, event any) {
		if err := fn(ctx, event.(T)); err != nil {
			slog.Error("Failed to handle event", "package", "bus", "name", name, "error", err)
		}
	})
	mu.Unlock()
}

func Publish[T any](event T) {
	mu.RLock()
	ctx := _ctx
	fns := subs[fmt.Sprintf("%T", event)]
	mu.RUnlock()

	for _, fn := range fns {
		fn(ctx, event)
	}
}
