package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeContent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write content file: %v", err)
	}
	return path
}

func TestDefaultContent(t *testing.T) {
	Convey("Given the built-in content", t, func() {
		c := DefaultContent()

		Convey("It carries the fixed records in declared order", func() {
			So(c.Skills, ShouldHaveLength, 6)
			So(c.Experiences, ShouldHaveLength, 2)
			So(c.Projects, ShouldHaveLength, 3)
			So(c.Socials, ShouldHaveLength, 2)

			So(c.Projects[0].Title, ShouldEqual, "GitOps Platform on AWS")
			So(c.Projects[1].Title, ShouldEqual, "Production-Ready EKS Infrastructure")
			So(c.Projects[2].Title, ShouldEqual, "Secure CI/CD DevOps Pipeline")
			So(c.Experiences[0].Company, ShouldEqual, "NASSCOM")
			So(c.Socials[1].Label, ShouldEqual, "GitHub")
		})

		Convey("Descriptions are single-line copy", func() {
			So(c.Projects[0].Description, ShouldEqual, "Orchestrated a GitOps workflow using ArgoCD + GitHub Actions to standardize deployments. Applied Helm charting to ensure configuration consistency across all releases. Accelerated deployment cycles by 60% while maintaining reliable rollbacks.")
			So(c.Experiences[0].Description, ShouldEqual, "Streamlined scripting workflows using Generative AI, lowering manual effort by 25%. Produced AI-driven incident summaries that shortened debugging time by 30%. Refined prompt structures and automated diagnostics, improving pipeline analysis by 20%.")
			for _, p := range c.Projects {
				So(p.Description, ShouldNotContainSubstring, "\n")
				So(p.Description, ShouldNotContainSubstring, "\t")
			}
			for _, e := range c.Experiences {
				So(e.Description, ShouldNotContainSubstring, "\n")
				So(e.Description, ShouldNotContainSubstring, "\t")
			}
			for _, a := range c.About {
				So(a, ShouldNotContainSubstring, "\n")
			}
		})

		Convey("It is valid", func() {
			So(c.validate(), ShouldBeNil)
		})

		Convey("Each call returns an independent copy", func() {
			c.Projects[0].Title = "changed"
			So(DefaultContent().Projects[0].Title, ShouldEqual, "GitOps Platform on AWS")
		})
	})
}

func TestLoadContent(t *testing.T) {
	Convey("Given no content file", t, func() {
		c, err := LoadContent("")
		So(err, ShouldBeNil)
		So(c.Projects, ShouldResemble, DefaultContent().Projects)
	})

	Convey("Given a file overriding projects and the hero name", t, func() {
		path := writeContent(t, `
hero:
  name: Jane Doe
projects:
  - title: Only Project
    category: Go
    image: https://example.com/a.png
    description: Something small.
    date: January 2026
`)
		c, err := LoadContent(path)
		So(err, ShouldBeNil)

		Convey("Listed arrays replace the defaults wholesale", func() {
			So(c.Projects, ShouldHaveLength, 1)
			So(c.Projects[0], ShouldResemble, Project{
				Title:       "Only Project",
				Category:    "Go",
				Image:       "https://example.com/a.png",
				Description: "Something small.",
				Date:        "January 2026",
			})
		})

		Convey("Unlisted fields keep their defaults", func() {
			So(c.Hero.Name, ShouldEqual, "Jane Doe")
			So(c.Hero.Headline, ShouldEqual, "Cloud & DevOps Engineer")
			So(c.Skills, ShouldHaveLength, 6)
			So(c.Experiences, ShouldHaveLength, 2)
		})
	})

	Convey("Given a file with a project missing its title", t, func() {
		path := writeContent(t, `
projects:
  - category: Go
`)
		_, err := LoadContent(path)
		So(errors.Is(err, ErrInvalidContent), ShouldBeTrue)
	})

	Convey("Given a social link without a url", t, func() {
		path := writeContent(t, `
socials:
  - icon: github
    label: GitHub
`)
		_, err := LoadContent(path)
		So(errors.Is(err, ErrInvalidContent), ShouldBeTrue)
	})

	Convey("Given a missing file", t, func() {
		_, err := LoadContent(filepath.Join(t.TempDir(), "nope.yaml"))
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "load content")
	})

	Convey("Given malformed YAML", t, func() {
		path := writeContent(t, "projects: [unterminated\n")
		_, err := LoadContent(path)
		So(err, ShouldNotBeNil)
	})
}
