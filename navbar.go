package main

import (
	"html/template"
)

type NavbarMode string

const (
	NavbarTop      NavbarMode = "top"
	NavbarScrolled NavbarMode = "scrolled"
)

func NavbarModeFor(s ScrollState) NavbarMode {
	if s.PastThreshold {
		return NavbarScrolled
	}
	return NavbarTop
}

type NavLink struct {
	Label  string
	Href   string
	Target string
}

type NavbarView struct {
	Mode       NavbarMode
	MenuOpen   bool
	Brand      string
	Accent     string
	Logo       template.HTML
	ToggleIcon template.HTML
	Links      []NavLink
	// Dropdown is nil while the mobile menu is closed.
	Dropdown []NavLink
}

// RenderNavbar derives the bar from scroll and menu state. Background mode
// and dropdown visibility don't depend on each other.
func RenderNavbar(p Profile, entries []NavEntry, scroll ScrollState, menu MenuState) NavbarView {
	links := make([]NavLink, 0, len(entries))
	for _, e := range entries {
		links = append(links, NavLink{Label: e.Label, Href: e.Anchor, Target: e.Target()})
	}

	v := NavbarView{
		Mode:     NavbarModeFor(scroll),
		MenuOpen: menu.IsOpen(),
		Brand:    p.Brand,
		Accent:   p.Accent,
		Logo:     icon("code", 24, "text-emerald-500"),
		Links:    links,
	}
	if menu.IsOpen() {
		v.ToggleIcon = icon("x", 24, "")
		v.Dropdown = links
	} else {
		v.ToggleIcon = icon("menu", 24, "")
	}
	return v
}

func (v NavbarView) Class() string {
	if v.Mode == NavbarScrolled {
		return "navbar navbar-scrolled bg-slate-950/80 backdrop-blur-md border-b border-slate-800 py-4"
	}
	return "navbar navbar-top bg-transparent py-6"
}
