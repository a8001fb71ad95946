package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Section identifiers rendered by the page, in page order. Nav entries may
// only point at these.
var SectionIDs = []string{"about", "skills", "projects", "contact"}

type NavEntry struct {
	Label  string `yaml:"label" validate:"required"`
	Anchor string `yaml:"anchor" validate:"required,startswith=#"`
}

// Target returns the section identifier the entry scrolls to.
func (e NavEntry) Target() string {
	return strings.TrimPrefix(e.Anchor, "#")
}

type SkillCategory struct {
	Name  string   `yaml:"name" validate:"required"`
	Icon  string   `yaml:"icon" validate:"required,icon"`
	Tools []string `yaml:"tools" validate:"min=1,dive,required"`
}

// Source and demo links are not checked beyond being present, placeholder
// links like "#" are fine.
type ProjectEntry struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Tags        []string `yaml:"tags" validate:"dive,required"`
	SourceURL   string   `yaml:"source" validate:"required"`
	DemoURL     string   `yaml:"demo" validate:"required"`
	ImageURL    string   `yaml:"image" validate:"required,url"`
}

type ContactLink struct {
	Label   string `yaml:"label" validate:"required"`
	Display string `yaml:"display"`
	URL     string `yaml:"url" validate:"required"`
	Icon    string `yaml:"icon" validate:"required,icon"`
}

type Profile struct {
	Name      string `yaml:"name" validate:"required"`
	Brand     string `yaml:"brand" validate:"required"`
	Accent    string `yaml:"accent"`
	Badge     string `yaml:"badge"`
	Headline  string `yaml:"headline" validate:"required"`
	Highlight string `yaml:"highlight"`
	Intro     string `yaml:"intro"`
	ImageURL  string `yaml:"image" validate:"required,url"`
	BioTitle  string `yaml:"bio_title"`
	// Bio paragraphs are Markdown.
	Bio       []string `yaml:"bio" validate:"min=1,dive,required"`
	StatValue string   `yaml:"stat_value"`
	StatLabel string   `yaml:"stat_label"`
}

type SectionCopy struct {
	Title    string `yaml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle"`
}

type Sections struct {
	About    SectionCopy `yaml:"about"`
	Skills   SectionCopy `yaml:"skills"`
	Projects SectionCopy `yaml:"projects"`
	Contact  SectionCopy `yaml:"contact"`
}

// Content is everything the page shows. It is built once at startup and
// never mutated afterwards.
type Content struct {
	Profile         Profile         `yaml:"profile"`
	Nav             []NavEntry      `yaml:"nav" validate:"min=1,dive"`
	Skills          []SkillCategory `yaml:"skills" validate:"min=1,dive"`
	Projects        []ProjectEntry  `yaml:"projects" validate:"min=1,dive"`
	Contacts        []ContactLink   `yaml:"contacts" validate:"dive"`
	Socials         []ContactLink   `yaml:"socials" validate:"dive"`
	Sections        Sections        `yaml:"sections"`
	ContactBlurb    string          `yaml:"contact_blurb"`
	ResumePath      string          `yaml:"resume_path" validate:"required"`
	ResumeLabel     string          `yaml:"resume_label"`
	MoreProjectsURL string          `yaml:"more_projects_url"`
	MoreProjects    string          `yaml:"more_projects_label"`
	Footer          string          `yaml:"footer"`
}

var contentValidator = newContentValidator()

func newContentValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		_, ok := icons[fl.Field().String()]
		return ok
	})
	if err != nil {
		panic(fmt.Sprintf("register icon validation: %v", err))
	}
	return v
}

// Validate rejects content that would render a partially broken page. It
// runs once at startup, so a bad content file stops the server.
func (c *Content) Validate() error {
	var errs []error
	if err := contentValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
		} else {
			errs = append(errs, err)
		}
	}

	seen := make(map[string]bool)
	for i, e := range c.Nav {
		target := e.Target()
		if !isSection(target) {
			errs = append(errs, fmt.Errorf("Content.Nav[%d]: anchor %q has no matching section", i, e.Anchor))
			continue
		}
		if seen[target] {
			errs = append(errs, fmt.Errorf("Content.Nav[%d]: anchor %q listed twice", i, e.Anchor))
		}
		seen[target] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}

// NavEntryFor finds the nav entry targeting the given section identifier.
func (c *Content) NavEntryFor(target string) (NavEntry, bool) {
	for _, e := range c.Nav {
		if e.Target() == target {
			return e, true
		}
	}
	return NavEntry{}, false
}

func isSection(id string) bool {
	for _, s := range SectionIDs {
		if s == id {
			return true
		}
	}
	return false
}

// LoadContent reads portfolio content from a YAML file. An empty path means
// the built-in content.
func LoadContent(path string) (*Content, error) {
	if path == "" {
		return DefaultContent(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}
	return &c, nil
}
