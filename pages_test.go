package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestStore(ttl time.Duration) (*pageStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
	s := newPageStore(ttl, log.New(io.Discard))
	s.now = clock.now
	return s, clock
}

func TestPageStoreCreateGet(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	id, p := s.create()
	if len(id) != 32 {
		t.Errorf("id %q has length %d, want 32", id, len(id))
	}
	if got := s.get(id); got != p {
		t.Error("get returned a different page")
	}
	if s.get("nope") != nil {
		t.Error("get found an unknown id")
	}
	other, _ := s.create()
	if other == id {
		t.Error("two page views share an id")
	}
}

func TestPageStoreExpiry(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	id, p := s.create()

	clock.t = clock.t.Add(30 * time.Second)
	if s.get(id) == nil {
		t.Fatal("page expired early")
	}
	// get refreshed lastSeen
	clock.t = clock.t.Add(45 * time.Second)
	if s.get(id) == nil {
		t.Fatal("touch did not extend the page")
	}

	clock.t = clock.t.Add(2 * time.Minute)
	if s.get(id) != nil {
		t.Error("expired page still returned")
	}
	if _, changed := p.Scroll(500); changed {
		t.Error("expired page was not closed")
	}
}

func TestPageStoreRelease(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	id, p := s.create()
	if !s.release(id) {
		t.Fatal("release reported missing page")
	}
	if s.release(id) {
		t.Error("second release reported success")
	}
	if s.get(id) != nil {
		t.Error("released page still returned")
	}
	if n := p.scroll.Subscribers(); n != 0 {
		t.Errorf("released page kept %d scroll subscribers", n)
	}
}

func TestPageStoreSweep(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	old, _ := s.create()
	clock.t = clock.t.Add(50 * time.Second)
	fresh, _ := s.create()
	clock.t = clock.t.Add(20 * time.Second)

	if n := s.sweep(); n != 1 {
		t.Errorf("sweep removed %d pages, want 1", n)
	}
	if s.get(old) != nil {
		t.Error("stale page survived sweep")
	}
	if s.get(fresh) == nil {
		t.Error("fresh page swept")
	}
}

func TestPageStoreRunClosesOnCancel(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	_, p := s.create()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx, time.Hour)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not stop")
	}
	if s.len() != 0 {
		t.Errorf("len = %d after shutdown, want 0", s.len())
	}
	if n := p.scroll.Subscribers(); n != 0 {
		t.Errorf("page kept %d scroll subscribers after shutdown", n)
	}
}
