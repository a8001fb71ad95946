package main

import (
	"errors"
)

// ScrollThreshold is the vertical offset past which the navbar switches to
// its scrolled look.
const ScrollThreshold = 50

var ErrMonitorClosed = errors.New("scroll monitor closed")

type ScrollState struct {
	PastThreshold bool
}

type scrollSubscriber struct {
	id int
	fn func(ScrollState)
}

// ScrollMonitor turns raw scroll offsets into ScrollState and tells
// subscribers only when PastThreshold actually flips. It is not safe for
// concurrent use; the owning Page serializes access.
type ScrollMonitor struct {
	state  ScrollState
	subs   []scrollSubscriber
	nextID int
	closed bool
}

func NewScrollMonitor() *ScrollMonitor {
	return &ScrollMonitor{}
}

func (m *ScrollMonitor) State() ScrollState {
	return m.state
}

// Observe records a scroll offset and reports whether the state changed.
// Subscribers run in registration order, and only on change.
func (m *ScrollMonitor) Observe(offset float64) bool {
	if m.closed {
		return false
	}
	next := ScrollState{PastThreshold: offset > ScrollThreshold}
	if next == m.state {
		return false
	}
	m.state = next
	subs := append([]scrollSubscriber(nil), m.subs...)
	for _, s := range subs {
		s.fn(next)
	}
	return true
}

// Subscribe registers fn for state changes. The returned func removes it
// again and is safe to call more than once.
func (m *ScrollMonitor) Subscribe(fn func(ScrollState)) (func(), error) {
	if m.closed {
		return nil, ErrMonitorClosed
	}
	m.nextID++
	id := m.nextID
	m.subs = append(m.subs, scrollSubscriber{id: id, fn: fn})
	return func() { m.unsubscribe(id) }, nil
}

func (m *ScrollMonitor) unsubscribe(id int) {
	for i, s := range m.subs {
		if s.id == id {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return
		}
	}
}

// Subscribers reports how many listeners are attached.
func (m *ScrollMonitor) Subscribers() int {
	return len(m.subs)
}

// Close drops every subscriber. A closed monitor ignores offsets and stays
// in whatever state it had.
func (m *ScrollMonitor) Close() {
	m.closed = true
	m.subs = nil
}
