package main

import (
	"errors"
	"fmt"
	"html/template"
	"math"
	"time"
)

const (
	RevealDuration = 500 * time.Millisecond
	RevealStagger  = 100 * time.Millisecond
)

var ErrUnknownSection = errors.New("unknown section")

// Rect is an element's bounding box relative to the viewport's top-left
// corner, as getBoundingClientRect reports it.
type Rect struct {
	Left   float64 `form:"left"`
	Top    float64 `form:"top"`
	Width  float64 `form:"width"`
	Height float64 `form:"height"`
}

type Viewport struct {
	Width  float64 `form:"vw" binding:"gt=0"`
	Height float64 `form:"vh" binding:"gt=0"`
}

// Visible reports whether at least one pixel of el lies inside vp.
func Visible(el Rect, vp Viewport) bool {
	w := math.Min(el.Left+el.Width, vp.Width) - math.Max(el.Left, 0)
	h := math.Min(el.Top+el.Height, vp.Height) - math.Max(el.Top, 0)
	return w >= 1 && h >= 1
}

type RevealState struct {
	Triggered bool
}

// RevealArena holds one latch per section. A latch flips to triggered the
// first time its section is seen and is never evaluated again.
type RevealArena struct {
	states map[string]*RevealState
}

func NewRevealArena(ids ...string) *RevealArena {
	a := &RevealArena{states: make(map[string]*RevealState, len(ids))}
	for _, id := range ids {
		a.states[id] = &RevealState{}
	}
	return a
}

// Observe feeds one visibility sample for the section. It returns true only
// for the sample that trips the latch.
func (a *RevealArena) Observe(id string, el Rect, vp Viewport) (bool, error) {
	st, ok := a.states[id]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	if st.Triggered {
		return false, nil
	}
	if !Visible(el, vp) {
		return false, nil
	}
	st.Triggered = true
	return true, nil
}

func (a *RevealArena) Triggered(id string) bool {
	st, ok := a.states[id]
	return ok && st.Triggered
}

// Snapshot copies the latches so callers can't flip them.
func (a *RevealArena) Snapshot() map[string]bool {
	out := make(map[string]bool, len(a.states))
	for id, st := range a.states {
		out[id] = st.Triggered
	}
	return out
}

type RevealVariant string

const (
	RevealFade       RevealVariant = "fade"
	RevealFadeUp     RevealVariant = "fade-up"
	RevealSlideLeft  RevealVariant = "slide-left"
	RevealSlideRight RevealVariant = "slide-right"
	RevealZoom       RevealVariant = "zoom"
	RevealGrow       RevealVariant = "grow"
)

// RevealStyle is the visual state of one animated element: where it
// starts, whether it has reached its terminal state, and when.
type RevealStyle struct {
	Variant RevealVariant
	Visible bool
	Delay   time.Duration
}

func newRevealStyle(v RevealVariant, visible bool, delay time.Duration) RevealStyle {
	return RevealStyle{Variant: v, Visible: visible, Delay: delay}
}

// staggered spaces out the reveal of the i-th element in a group.
func staggered(v RevealVariant, visible bool, i int) RevealStyle {
	return newRevealStyle(v, visible, time.Duration(i)*RevealStagger)
}

func (s RevealStyle) Class() string {
	c := "reveal reveal-" + string(s.Variant)
	if s.Visible {
		c += " is-visible"
	}
	return c
}

func (s RevealStyle) Style() template.CSS {
	css := fmt.Sprintf("transition-duration: %dms;", RevealDuration.Milliseconds())
	if s.Delay > 0 {
		css += fmt.Sprintf(" transition-delay: %dms;", s.Delay.Milliseconds())
	}
	return template.CSS(css)
}
