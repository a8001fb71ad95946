package main

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// pageHeader carries the page view id on every HTMX event request.
const pageHeader = "X-Page-Id"

type pageEntry struct {
	page     *Page
	lastSeen time.Time
}

// pageStore keeps the live page views, one per browser load.
type pageStore struct {
	mu     sync.RWMutex
	pages  map[string]*pageEntry
	ttl    time.Duration
	now    func() time.Time
	logger *log.Logger
}

func newPageStore(ttl time.Duration, logger *log.Logger) *pageStore {
	return &pageStore{
		pages:  make(map[string]*pageEntry),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// create starts a fresh page view and returns its ID.
func (s *pageStore) create() (string, *Page) {
	id := generateToken()
	p := NewPage(s.logger)
	s.mu.Lock()
	s.pages[id] = &pageEntry{page: p, lastSeen: s.now()}
	s.mu.Unlock()
	return id, p
}

// get returns a live page view, or nil if missing or expired.
func (s *pageStore) get(id string) *Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.pages[id]
	if !ok {
		return nil
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.pages, id)
		e.page.Close()
		return nil
	}
	e.lastSeen = now
	return e.page
}

// release tears a page view down.
func (s *pageStore) release(id string) bool {
	s.mu.Lock()
	e, ok := s.pages[id]
	delete(s.pages, id)
	s.mu.Unlock()
	if ok {
		e.page.Close()
	}
	return ok
}

func (s *pageStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}

// sweep closes every page view idle for longer than the TTL.
func (s *pageStore) sweep() int {
	now := s.now()
	var expired []*Page
	s.mu.Lock()
	for id, e := range s.pages {
		if now.Sub(e.lastSeen) > s.ttl {
			expired = append(expired, e.page)
			delete(s.pages, id)
		}
	}
	s.mu.Unlock()
	for _, p := range expired {
		p.Close()
	}
	return len(expired)
}

// run sweeps on every tick until ctx is done, then releases whatever is
// left.
func (s *pageStore) run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				s.logger.Debug("expired page views", "count", n)
			}
		}
	}
}

func (s *pageStore) closeAll() {
	s.mu.Lock()
	pages := s.pages
	s.pages = make(map[string]*pageEntry)
	s.mu.Unlock()
	for _, e := range pages {
		e.page.Close()
	}
}
