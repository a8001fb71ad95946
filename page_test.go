package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func newTestPage() *Page {
	return NewPage(log.New(io.Discard))
}

func TestPageInitialSnapshot(t *testing.T) {
	p := newTestPage()
	want := Snapshot{
		Scroll:  ScrollState{},
		Menu:    MenuClosed,
		Reveals: map[string]bool{"about": false, "skills": false, "projects": false, "contact": false},
	}
	if diff := cmp.Diff(want, p.Snapshot()); diff != "" {
		t.Errorf("Snapshot (-want +got):\n%s", diff)
	}

	view := RenderPage(DefaultContent(), p.Snapshot(), 2026)
	if view.Navbar.Mode != NavbarTop {
		t.Errorf("navbar mode = %q, want %q", view.Navbar.Mode, NavbarTop)
	}
	if view.Navbar.Dropdown != nil {
		t.Error("dropdown rendered on load")
	}
}

func TestPageScrollSwitchesNavbarOnce(t *testing.T) {
	p := newTestPage()
	snap, changed := p.Scroll(120)
	if !changed || !snap.Scroll.PastThreshold {
		t.Fatalf("Scroll(120) = %+v, %v; want past threshold and changed", snap.Scroll, changed)
	}
	for _, o := range []float64{121, 150, 300} {
		if _, changed := p.Scroll(o); changed {
			t.Errorf("Scroll(%v) reported a change", o)
		}
	}
	if n := p.NavbarTransitions(); n != 1 {
		t.Errorf("NavbarTransitions = %d, want 1", n)
	}
	if got := RenderPage(DefaultContent(), p.Snapshot(), 2026).Navbar.Mode; got != NavbarScrolled {
		t.Errorf("navbar mode = %q, want %q", got, NavbarScrolled)
	}
}

func TestPageMenuThenNavigate(t *testing.T) {
	c := DefaultContent()
	p := newTestPage()
	if snap := p.ToggleMenu(); snap.Menu != MenuOpen {
		t.Fatalf("menu = %v after toggle, want open", snap.Menu)
	}
	entry, _ := c.NavEntryFor("projects")
	snap, req := p.Select(entry)
	if snap.Menu != MenuClosed {
		t.Errorf("menu = %v after select, want closed", snap.Menu)
	}
	if req.Target != "projects" {
		t.Errorf("scroll target = %q, want %q", req.Target, "projects")
	}

	// Selecting with the menu already closed is still a valid navigation.
	snap, req = p.Select(entry)
	if snap.Menu != MenuClosed || req.Target != "projects" {
		t.Errorf("second select = %v, %+v", snap.Menu, req)
	}
}

func TestPageScrollAndMenuAreIndependent(t *testing.T) {
	p := newTestPage()
	p.ToggleMenu()
	snap, _ := p.Scroll(400)
	if snap.Menu != MenuOpen {
		t.Error("scrolling closed the menu")
	}
	v := RenderNavbar(DefaultContent().Profile, DefaultContent().Nav, snap.Scroll, snap.Menu)
	if v.Mode != NavbarScrolled || v.Dropdown == nil {
		t.Errorf("navbar = %q with dropdown %v, want scrolled with dropdown", v.Mode, v.Dropdown != nil)
	}
}

func TestPageRevealIsMonotonic(t *testing.T) {
	p := newTestPage()
	vp := Viewport{Width: 390, Height: 844}
	snap, triggered, err := p.Reveal("skills", Rect{Top: 200, Width: 390, Height: 600}, vp)
	if err != nil || !triggered {
		t.Fatalf("Reveal = %v, %v; want triggered", triggered, err)
	}
	if !snap.Revealed("skills") {
		t.Error("skills not revealed in snapshot")
	}

	snap, triggered, _ = p.Reveal("skills", Rect{Top: -3000, Width: 390, Height: 600}, vp)
	if triggered || !snap.Revealed("skills") {
		t.Errorf("after scrolling away: triggered=%v revealed=%v", triggered, snap.Revealed("skills"))
	}
	if snap.Revealed("about") {
		t.Error("about revealed by a skills sample")
	}
}

func TestPageSnapshotsAreImmutable(t *testing.T) {
	p := newTestPage()
	before := p.Snapshot()
	p.Reveal("about", Rect{Top: 0, Width: 100, Height: 100}, Viewport{Width: 100, Height: 100})
	if before.Revealed("about") {
		t.Error("older snapshot changed after a transition")
	}
}

func TestPageClose(t *testing.T) {
	p := newTestPage()
	p.Close()
	p.Close()
	if n := p.scroll.Subscribers(); n != 0 {
		t.Errorf("subscribers after Close = %d, want 0", n)
	}
	if _, changed := p.Scroll(500); changed {
		t.Error("closed page still tracks scrolling")
	}
	if p.Snapshot().Scroll.PastThreshold {
		t.Error("closed page left top mode")
	}
}

func TestPageNavbarRedrawFollowsSubscription(t *testing.T) {
	p := newTestPage()
	p.unsubscribe()
	if _, changed := p.Scroll(120); changed {
		t.Error("Scroll reported a navbar redraw with no subscriber")
	}
	if n := p.NavbarTransitions(); n != 0 {
		t.Errorf("NavbarTransitions = %d, want 0", n)
	}

	p = newTestPage()
	if _, changed := p.Scroll(120); !changed {
		t.Fatal("Scroll(120) reported no redraw")
	}
	if p.navbarDirty {
		t.Error("redraw request not cleared after Scroll")
	}
}

func TestRenderPageOrder(t *testing.T) {
	c := DefaultContent()
	v := RenderPage(c, newTestPage().Snapshot(), 2026)
	if len(v.Skills.Cards) != len(c.Skills) || len(v.Projects.Cards) != len(c.Projects) {
		t.Fatal("cards dropped")
	}
	for i, s := range c.Skills {
		if v.Skills.Cards[i].Name != s.Name {
			t.Errorf("skill %d = %q, want %q", i, v.Skills.Cards[i].Name, s.Name)
		}
	}
	for i, pr := range c.Projects {
		if v.Projects.Cards[i].Title != pr.Title {
			t.Errorf("project %d = %q, want %q", i, v.Projects.Cards[i].Title, pr.Title)
		}
	}
	if v.Footer.Year != 2026 {
		t.Errorf("footer year = %d", v.Footer.Year)
	}
}
