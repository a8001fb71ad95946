package main

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Snapshot is the full UI state of one page view after a transition. It is
// never modified once handed out.
type Snapshot struct {
	Scroll  ScrollState
	Menu    MenuState
	Reveals map[string]bool
}

func (s Snapshot) Revealed(id string) bool {
	return s.Reveals[id]
}

// ScrollRequest asks the browser to bring a section into view.
type ScrollRequest struct {
	Target string
}

// Page owns the UI state of one browser page view: the scroll monitor, the
// mobile menu and one reveal latch per section. HTTP handlers for the same
// view can run concurrently, so every transition holds mu.
type Page struct {
	mu          sync.Mutex
	scroll      *ScrollMonitor
	unsubscribe func()
	menu        MenuState
	reveals     *RevealArena
	// navbarDirty is set by the scroll subscription when the navbar has to
	// be redrawn, and cleared once the caller has been told.
	navbarDirty bool
	navbarFlips int
	closed      bool
}

func NewPage(logger *log.Logger) *Page {
	p := &Page{
		scroll:  NewScrollMonitor(),
		reveals: NewRevealArena(SectionIDs...),
	}
	unsubscribe, err := p.scroll.Subscribe(p.onScrollChange)
	if err != nil {
		// Without the listener the navbar just stays in top mode.
		logger.Warn("scroll tracking unavailable", "err", err)
		unsubscribe = func() {}
	}
	p.unsubscribe = unsubscribe
	return p
}

// onScrollChange runs inside ScrollMonitor.Observe, with mu already held.
func (p *Page) onScrollChange(ScrollState) {
	p.navbarDirty = true
	p.navbarFlips++
}

func (p *Page) snapshot() Snapshot {
	return Snapshot{
		Scroll:  p.scroll.State(),
		Menu:    p.menu,
		Reveals: p.reveals.Snapshot(),
	}
}

func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// Scroll records a vertical offset. changed reports whether the scroll
// subscription asked for a navbar redraw; without a subscription it is
// always false and the navbar stays in top mode.
func (p *Page) Scroll(offset float64) (snap Snapshot, changed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scroll.Observe(offset)
	changed = p.navbarDirty
	p.navbarDirty = false
	return p.snapshot(), changed
}

func (p *Page) ToggleMenu() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.menu = p.menu.Toggle()
	return p.snapshot()
}

// Select handles a click on a nav entry: the menu closes and the view is
// asked to scroll to the entry's section.
func (p *Page) Select(e NavEntry) (Snapshot, ScrollRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.menu = p.menu.Select()
	return p.snapshot(), ScrollRequest{Target: e.Target()}
}

// Reveal feeds a visibility sample for a section. triggered is true only
// for the sample that first makes the section visible.
func (p *Page) Reveal(id string, el Rect, vp Viewport) (snap Snapshot, triggered bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	triggered, err = p.reveals.Observe(id, el, vp)
	return p.snapshot(), triggered, err
}

// NavbarTransitions counts how often the navbar switched mode.
func (p *Page) NavbarTransitions() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.navbarFlips
}

// Close releases the scroll subscription. Later scroll samples are ignored.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.unsubscribe()
	p.scroll.Close()
}

// PageView is everything the templates need to paint the page.
type PageView struct {
	Navbar   NavbarView
	Hero     HeroView
	About    AboutView
	Skills   SkillsView
	Projects ProjectsView
	Contact  ContactView
	Footer   FooterView
}

// RenderPage is a pure function of content and state.
func RenderPage(c *Content, s Snapshot, year int) PageView {
	return PageView{
		Navbar:   RenderNavbar(c.Profile, c.Nav, s.Scroll, s.Menu),
		Hero:     RenderHero(c),
		About:    RenderAbout(c, s.Revealed("about")),
		Skills:   RenderSkills(c, s.Revealed("skills")),
		Projects: RenderProjects(c, s.Revealed("projects")),
		Contact:  RenderContact(c, s.Revealed("contact")),
		Footer:   RenderFooter(c, year),
	}
}

// renderSection paints a single section, for reveal fragments.
func renderSection(c *Content, s Snapshot, id string) (any, bool) {
	revealed := s.Revealed(id)
	switch id {
	case "about":
		return RenderAbout(c, revealed), true
	case "skills":
		return RenderSkills(c, revealed), true
	case "projects":
		return RenderProjects(c, revealed), true
	case "contact":
		return RenderContact(c, revealed), true
	}
	return nil, false
}
