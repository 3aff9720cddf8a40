package ui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"airtimegraph/internal/bus"
	"airtimegraph/internal/graph"
)

func TestSnapshotListenerForwardsSnapshots(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := bus.New(logger)
	defer b.Close()

	received := make(chan graph.Snapshot, 1)
	stop := startSnapshotListener(b, logger, func(snap graph.Snapshot) {
		received <- snap
	})
	defer stop()

	b.Publish(graph.TopicSnapshot, graph.Snapshot{Revision: 7})

	select {
	case snap := <-received:
		if snap.Revision != 7 {
			t.Fatalf("expected revision 7, got %d", snap.Revision)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for forwarded snapshot")
	}
}

func TestSnapshotListenerIgnoresUnexpectedPayloads(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := bus.New(logger)
	defer b.Close()

	received := make(chan graph.Snapshot, 1)
	stop := startSnapshotListener(b, logger, func(snap graph.Snapshot) {
		received <- snap
	})
	defer stop()

	b.Publish(graph.TopicSnapshot, "not a snapshot")
	b.Publish(graph.TopicSnapshot, graph.Snapshot{Revision: 2})

	select {
	case snap := <-received:
		if snap.Revision != 2 {
			t.Fatalf("expected revision 2, got %d", snap.Revision)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for forwarded snapshot")
	}
}

func TestSnapshotListenerNilBusIsNoOp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stop := startSnapshotListener(nil, logger, func(graph.Snapshot) {
		t.Fatal("unexpected snapshot")
	})
	stop()
}
