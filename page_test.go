package main

import (
	"errors"
	"testing"

	"github.com/Aman-sain/portfolio/reveal"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSections(t *testing.T) {
	Convey("The page is composed of five sections in a fixed order", t, func() {
		var ids []string
		for _, s := range Sections() {
			ids = append(ids, s.ID)
		}
		So(ids, ShouldResemble, []string{"hero", "about", "projects", "experience", "contact"})
	})

	Convey("Callers cannot reorder the composition", t, func() {
		s := Sections()
		s[0], s[1] = s[1], s[0]
		So(Sections()[0].ID, ShouldEqual, "hero")
	})

	Convey("Sections are found by id", t, func() {
		s, err := FindSection("about")
		So(err, ShouldBeNil)
		So(s.Template, ShouldEqual, "about.html")
		So(s.Reveals, ShouldBeTrue)

		_, err = FindSection("blog")
		So(errors.Is(err, ErrUnknownSection), ShouldBeTrue)
	})
}

func TestPageView(t *testing.T) {
	Convey("Given the page view for the default content", t, func() {
		c := DefaultContent()
		v := newPageView(&c, 2026)

		So(v.Title, ShouldEqual, "Aman Sain | Cloud & DevOps Engineer")
		So(v.Fonts, ShouldEqual, FontStylesheet)
		So(v.Sections, ShouldHaveLength, 5)

		Convey("Revealing sections start hidden against their content container", func() {
			about := v.Sections[1]
			So(about.Reveal, ShouldNotBeNil)
			So(about.Reveal.Region, ShouldEqual, reveal.Region("about-content"))
			So(about.Reveal.Threshold, ShouldEqual, reveal.DefaultThreshold)
			So(about.Reveal.DurationMS, ShouldEqual, int64(1000))
			So(about.Reveal.Class, ShouldEqual, reveal.DefaultPresentation.Class(reveal.Hidden))
		})

		Convey("Other sections carry no reveal state", func() {
			for _, s := range v.Sections[2:] {
				So(s.Reveal, ShouldBeNil)
			}
		})

		Convey("Every section shares the same content and year", func() {
			for _, s := range v.Sections {
				So(s.Content, ShouldPointTo, &c)
				So(s.Year, ShouldEqual, 2026)
			}
		})
	})
}
