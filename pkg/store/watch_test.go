package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
)

func TestPersistenceWatchEmitsItemChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig(base))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	it := item.New(glyph.Audio, "hello world")
	if err := p.Store(ctx, *it); err != nil {
		t.Fatalf("store item: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventItemsChanged {
				if evt.Category != glyph.Audio {
					t.Fatalf("expected category audio, got %s", evt.Category)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for item change event")
		}
	}
}

func TestThrottleCollapsesInvalidation(t *testing.T) {
	th := newEventThrottle(10 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	th.Enqueue(Event{Type: EventItemsChanged, Category: glyph.Video}, send)
	th.Enqueue(Event{Type: EventInvalidated}, send)
	th.Enqueue(Event{Type: EventItemsChanged, Category: glyph.Audio}, send)

	select {
	case ev := <-got:
		if ev.Type != EventInvalidated {
			t.Fatalf("expected a single invalidation, got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("throttle never flushed")
	}
	select {
	case ev := <-got:
		t.Fatalf("unexpected extra event %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestThrottleStopDropsPending(t *testing.T) {
	th := newEventThrottle(10 * time.Millisecond)
	got := make(chan Event, 1)
	th.Enqueue(Event{Type: EventInvalidated}, func(ev Event) { got <- ev })
	th.Stop()

	select {
	case ev := <-got:
		t.Fatalf("unexpected event after stop %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
