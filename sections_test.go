package main

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestRenderProjectsTags(t *testing.T) {
	c := DefaultContent()
	first := RenderProjects(c, false)
	second := RenderProjects(c, false)

	want := []string{"React", "Chart.js", "Supabase"}
	if diff := cmp.Diff(want, first.Cards[0].Tags); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("rendering is not idempotent (-first +second):\n%s", diff)
	}
}

func TestRenderProjectsKeepsOrderAndLinks(t *testing.T) {
	c := DefaultContent()
	v := RenderProjects(c, true)
	var titles []string
	for _, card := range v.Cards {
		titles = append(titles, card.Title)
		if card.SourceURL == "" || card.DemoURL == "" {
			t.Errorf("%s: missing link affordance", card.Title)
		}
		if !card.Fx.Visible {
			t.Errorf("%s: not visible after reveal", card.Title)
		}
	}
	want := []string{"E-Commerce Dashboard", "AI Chat Interface", "Travel Booking App"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("titles (-want +got):\n%s", diff)
	}
}

func TestRenderSkillsStaggers(t *testing.T) {
	c := DefaultContent()
	v := RenderSkills(c, true)
	var names []string
	for i, card := range v.Cards {
		names = append(names, card.Name)
		if want := time.Duration(i) * RevealStagger; card.Fx.Delay != want {
			t.Errorf("%s: delay = %v, want %v", card.Name, card.Fx.Delay, want)
		}
		if card.Icon == "" {
			t.Errorf("%s: no icon", card.Name)
		}
	}
	if diff := cmp.Diff([]string{"Frontend", "Backend", "Tools"}, names); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(c.Skills[0].Tools, v.Cards[0].Tools); diff != "" {
		t.Errorf("tools (-want +got):\n%s", diff)
	}
}

func TestRenderSectionsBeforeReveal(t *testing.T) {
	c := DefaultContent()
	about := RenderAbout(c, false)
	if about.ImageFx.Visible || about.TextFx.Visible || about.Heading.TitleFx.Visible {
		t.Error("about visible before reveal")
	}
	if about.ImageFx.Variant != RevealSlideLeft || about.TextFx.Variant != RevealSlideRight {
		t.Errorf("about variants = %q, %q", about.ImageFx.Variant, about.TextFx.Variant)
	}
	contact := RenderContact(c, false)
	if contact.Fx.Visible {
		t.Error("contact visible before reveal")
	}
	if contact.Heading.BarFx.Delay != 200*time.Millisecond {
		t.Errorf("heading bar delay = %v, want 200ms", contact.Heading.BarFx.Delay)
	}
}

func TestRenderAboutMarkdown(t *testing.T) {
	c := DefaultContent()
	c.Profile.Bio = []string{"I like **Go**.", "<script>alert(1)</script>"}
	v := RenderAbout(c, true)
	if got := string(v.Paragraphs[0]); !strings.Contains(got, "<strong>Go</strong>") {
		t.Errorf("paragraph 0 = %q, want rendered emphasis", got)
	}
	if got := string(v.Paragraphs[1]); strings.Contains(got, "<script>") {
		t.Errorf("paragraph 1 = %q, raw HTML leaked through", got)
	}
}

func TestRenderContact(t *testing.T) {
	c := DefaultContent()
	v := RenderContact(c, true)
	var labels []string
	for _, card := range v.Cards {
		labels = append(labels, card.Label)
	}
	if diff := cmp.Diff([]string{"Email", "WhatsApp", "Instagram"}, labels); diff != "" {
		t.Errorf("cards (-want +got):\n%s", diff)
	}
	if v.Cards[0].URL != "mailto:hello@alexdev.com" {
		t.Errorf("email URL = %q", v.Cards[0].URL)
	}
	if len(v.Socials) != 2 {
		t.Errorf("len(Socials) = %d, want 2", len(v.Socials))
	}
}
