package ui

import (
	"fmt"
	"log/slog"
	"sync"

	"airtimegraph/internal/bus"
	"airtimegraph/internal/graph"
)

// startSnapshotListener forwards published graph snapshots to the UI until
// the returned stop function is called.
func startSnapshotListener(messageBus bus.MessageBus, logger *slog.Logger, onSnapshot func(graph.Snapshot)) func() {
	if messageBus == nil {
		logger.Debug("skipping snapshot listener: message bus is nil")

		return func() {}
	}

	sub := messageBus.Subscribe(graph.TopicSnapshot)
	done := make(chan struct{})
	var stopOnce sync.Once

	go func() {
		for {
			select {
			case <-done:
				return
			case raw, ok := <-sub:
				if !ok {
					logger.Debug("snapshot subscription closed")

					return
				}
				snap, ok := raw.(graph.Snapshot)
				if !ok {
					logger.Debug("ignoring unexpected snapshot payload", "payload_type", fmt.Sprintf("%T", raw))

					continue
				}
				select {
				case <-done:
					return
				default:
				}
				onSnapshot(snap)
			}
		}
	}()

	return func() {
		stopOnce.Do(func() {
			close(done)
			messageBus.Unsubscribe(sub, graph.TopicSnapshot)
		})
	}
}
