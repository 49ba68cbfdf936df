package main

import (
	"errors"

	"github.com/Aman-sain/portfolio/reveal"
)

// FontStylesheet is the external webfont the page links to.
const FontStylesheet = "https://fonts.googleapis.com/css2?family=Fira+Code:wght@700&family=Antic&display=swap"

var ErrUnknownSection = errors.New("unknown section")

// Section is one independently revealing block of the page.
type Section struct {
	ID       string
	Template string
	Reveals  bool
}

// sections is the page, top to bottom.
var sections = [...]Section{
	{ID: "hero", Template: "hero.html", Reveals: true},
	{ID: "about", Template: "about.html", Reveals: true},
	{ID: "projects", Template: "projects.html"},
	{ID: "experience", Template: "experience.html"},
	{ID: "contact", Template: "contact.html"},
}

// Sections returns the page's sections in render order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections[:])
	return out
}

// FindSection looks a section up by id.
func FindSection(id string) (Section, error) {
	for _, s := range sections {
		if s.ID == id {
			return s, nil
		}
	}
	return Section{}, ErrUnknownSection
}

// revealView carries what a revealing section's root container needs: the
// initial hidden classes plus the data the browser controller reads.
type revealView struct {
	Region     reveal.Region
	Threshold  float64
	DurationMS int64
	Class      string
	Hidden     string
	Shown      string
}

func newRevealView(region string, p reveal.Presentation) *revealView {
	return &revealView{
		Region:     reveal.Region(region),
		Threshold:  p.Threshold,
		DurationMS: p.DurationMS(),
		Class:      p.Class(reveal.Hidden),
		Hidden:     p.HiddenCSS,
		Shown:      p.ShownCSS,
	}
}

type sectionView struct {
	Section
	Content *Content
	Reveal  *revealView
	Year    int
}

type pageView struct {
	Title    string
	Fonts    string
	Sections []sectionView
}

func newSectionView(s Section, c *Content, year int) sectionView {
	v := sectionView{Section: s, Content: c, Year: year}
	if s.Reveals {
		v.Reveal = newRevealView(s.ID+"-content", reveal.DefaultPresentation)
	}
	return v
}

func newPageView(c *Content, year int) pageView {
	views := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		views = append(views, newSectionView(s, c, year))
	}
	return pageView{
		Title:    c.Hero.Name + " | " + c.Hero.Headline,
		Fonts:    FontStylesheet,
		Sections: views,
	}
}
