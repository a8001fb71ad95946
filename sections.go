package main

import (
	"bytes"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in content is escaped, goldmark's default.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer))

func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// HeadingView is the animated title block every section opens with.
type HeadingView struct {
	ID       string
	Title    string
	Subtitle string
	TitleFx  RevealStyle
	BarFx    RevealStyle
	SubFx    RevealStyle
}

func renderHeading(id string, c SectionCopy, revealed bool) HeadingView {
	return HeadingView{
		ID:       id,
		Title:    c.Title,
		Subtitle: c.Subtitle,
		TitleFx:  newRevealStyle(RevealFadeUp, revealed, 0),
		BarFx:    newRevealStyle(RevealGrow, revealed, 200*time.Millisecond),
		SubFx:    newRevealStyle(RevealFade, revealed, 0),
	}
}

type HeroView struct {
	Name        string
	Badge       string
	Headline    string
	Highlight   string
	Intro       string
	ResumePath  string
	ResumeLabel string
	ResumeIcon  template.HTML
	ScrollIcon  template.HTML
}

// The hero animates on load rather than on view, so it has no latch.
func RenderHero(c *Content) HeroView {
	return HeroView{
		Name:        c.Profile.Name,
		Badge:       c.Profile.Badge,
		Headline:    c.Profile.Headline,
		Highlight:   c.Profile.Highlight,
		Intro:       c.Profile.Intro,
		ResumePath:  c.ResumePath,
		ResumeLabel: c.ResumeLabel,
		ResumeIcon:  icon("external-link", 16, "ml-2 w-4 h-4"),
		ScrollIcon:  icon("chevron-down", 24, "animate-bounce text-slate-500 w-6 h-6"),
	}
}

type AboutView struct {
	Heading    HeadingView
	Revealed   bool
	ImageURL   string
	Name       string
	Title      string
	Paragraphs []template.HTML
	StatValue  string
	StatLabel  string
	ImageFx    RevealStyle
	TextFx     RevealStyle
}

func RenderAbout(c *Content, revealed bool) AboutView {
	paras := make([]template.HTML, 0, len(c.Profile.Bio))
	for _, p := range c.Profile.Bio {
		paras = append(paras, renderMarkdown(p))
	}
	return AboutView{
		Heading:    renderHeading("about", c.Sections.About, revealed),
		Revealed:   revealed,
		ImageURL:   c.Profile.ImageURL,
		Name:       c.Profile.Name,
		Title:      c.Profile.BioTitle,
		Paragraphs: paras,
		StatValue:  c.Profile.StatValue,
		StatLabel:  c.Profile.StatLabel,
		ImageFx:    newRevealStyle(RevealSlideLeft, revealed, 0),
		TextFx:     newRevealStyle(RevealSlideRight, revealed, 0),
	}
}

type SkillCard struct {
	Name  string
	Icon  template.HTML
	Tools []string
	Fx    RevealStyle
}

type SkillsView struct {
	Heading  HeadingView
	Revealed bool
	Cards    []SkillCard
}

// RenderSkills reveals cards in list order, each a little after the last.
func RenderSkills(c *Content, revealed bool) SkillsView {
	cards := make([]SkillCard, 0, len(c.Skills))
	for i, s := range c.Skills {
		cards = append(cards, SkillCard{
			Name:  s.Name,
			Icon:  icon(s.Icon, 24, "w-6 h-6"),
			Tools: s.Tools,
			Fx:    staggered(RevealFadeUp, revealed, i),
		})
	}
	return SkillsView{
		Heading:  renderHeading("skills", c.Sections.Skills, revealed),
		Revealed: revealed,
		Cards:    cards,
	}
}

type ProjectCard struct {
	Title       string
	Description string
	Tags        []string
	SourceURL   string
	DemoURL     string
	ImageURL    string
	SourceIcon  template.HTML
	DemoIcon    template.HTML
	Fx          RevealStyle
}

type ProjectsView struct {
	Heading   HeadingView
	Revealed  bool
	Cards     []ProjectCard
	MoreURL   string
	MoreLabel string
	MoreIcon  template.HTML
}

func RenderProjects(c *Content, revealed bool) ProjectsView {
	cards := make([]ProjectCard, 0, len(c.Projects))
	for _, p := range c.Projects {
		cards = append(cards, ProjectCard{
			Title:       p.Title,
			Description: p.Description,
			Tags:        p.Tags,
			SourceURL:   p.SourceURL,
			DemoURL:     p.DemoURL,
			ImageURL:    p.ImageURL,
			SourceIcon:  icon("github", 20, ""),
			DemoIcon:    icon("globe", 20, ""),
			Fx:          newRevealStyle(RevealZoom, revealed, 0),
		})
	}
	return ProjectsView{
		Heading:   renderHeading("projects", c.Sections.Projects, revealed),
		Revealed:  revealed,
		Cards:     cards,
		MoreURL:   c.MoreProjectsURL,
		MoreLabel: c.MoreProjects,
		MoreIcon:  icon("github", 16, "ml-2 w-4 h-4"),
	}
}

type ContactCard struct {
	Label   string
	Display string
	URL     string
	Icon    template.HTML
}

type ContactView struct {
	Heading  HeadingView
	Revealed bool
	Blurb    string
	Cards    []ContactCard
	Socials  []ContactCard
	Fx       RevealStyle
}

func contactCards(links []ContactLink) []ContactCard {
	cards := make([]ContactCard, 0, len(links))
	for _, l := range links {
		cards = append(cards, ContactCard{
			Label:   l.Label,
			Display: l.Display,
			URL:     l.URL,
			Icon:    icon(l.Icon, 24, ""),
		})
	}
	return cards
}

func RenderContact(c *Content, revealed bool) ContactView {
	return ContactView{
		Heading:  renderHeading("contact", c.Sections.Contact, revealed),
		Revealed: revealed,
		Blurb:    c.ContactBlurb,
		Cards:    contactCards(c.Contacts),
		Socials:  contactCards(c.Socials),
		Fx:       newRevealStyle(RevealFadeUp, revealed, 0),
	}
}

type FooterView struct {
	Brand  string
	Accent string
	Logo   template.HTML
	Text   string
	Owner  string
	Year   int
}

func RenderFooter(c *Content, year int) FooterView {
	return FooterView{
		Brand:  c.Profile.Brand,
		Accent: c.Profile.Accent,
		Logo:   icon("code", 20, "text-emerald-500 w-5 h-5"),
		Text:   c.Footer,
		Owner:  c.Profile.Name,
		Year:   year,
	}
}
