package main

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrInvalidContent is returned when a content file leaves a required
// field empty.
var ErrInvalidContent = errors.New("invalid content")

type Skill struct {
	Category string `koanf:"category"`
	Items    string `koanf:"items"`
}

type Experience struct {
	Role        string `koanf:"role"`
	Company     string `koanf:"company"`
	Period      string `koanf:"period"`
	Description string `koanf:"description"`
}

type Project struct {
	Title       string `koanf:"title"`
	Category    string `koanf:"category"`
	Image       string `koanf:"image"`
	Description string `koanf:"description"`
	Date        string `koanf:"date"`
}

// Social is an outbound profile link. Icon is a lucide icon name.
type Social struct {
	Icon  string `koanf:"icon"`
	URL   string `koanf:"url"`
	Label string `koanf:"label"`
}

type Hero struct {
	Name     string `koanf:"name"`
	Headline string `koanf:"headline"`
	Tagline  string `koanf:"tagline"`
}

type Contact struct {
	Pitch       string `koanf:"pitch"`
	Email       string `koanf:"email"`
	Phone       string `koanf:"phone"`
	PhoneLabel  string `koanf:"phone_label"`
	Copyright   string `koanf:"copyright"`
	ProjectSpan string `koanf:"project_span"`
}

// Content is everything the page shows. It is built once at startup and
// never mutated afterwards.
type Content struct {
	Hero        Hero         `koanf:"hero"`
	About       []string     `koanf:"about"`
	Skills      []Skill      `koanf:"skills"`
	Projects    []Project    `koanf:"projects"`
	Experiences []Experience `koanf:"experiences"`
	Contact     Contact      `koanf:"contact"`
	Socials     []Social     `koanf:"socials"`
}

// DefaultContent returns a fresh copy of the built-in portfolio content.
func DefaultContent() Content {
	return Content{
		Hero: Hero{
			Name:     "Aman Sain",
			Headline: "Cloud & DevOps Engineer",
			Tagline:  "Building reliable cloud infrastructure, automated pipelines and Kubernetes platforms.",
		},
		About: []string{
			"Cloud & DevOps Engineer with hands-on experience in AWS infrastructure design, CI/CD automation and Kubernetes deployments. Currently pursuing B.Tech in Computer Science with specialization in DevOps at UPES, Dehradun.",
			"Proficient in building production-ready infrastructure using Terraform, Docker, Kubernetes, and implementing DevSecOps practices. Passionate about cloud-native architectures, GitOps workflows, and SRE principles.",
		},
		Skills: []Skill{
			{Category: "Cloud", Items: "AWS (EC2, VPC, IAM, ALB, ECS, EKS), GCP"},
			{Category: "DevOps", Items: "Docker, Kubernetes, Helm, ArgoCD, Terraform, Ansible"},
			{Category: "CI/CD", Items: "Jenkins, GitHub Actions, Git"},
			{Category: "DevSecOps", Items: "SonarQube, Trivy, Snyk"},
			{Category: "Monitoring", Items: "Prometheus, Grafana, CloudWatch"},
			{Category: "Languages", Items: "Python, Bash"},
		},
		Projects: []Project{
			{
				Title:       "GitOps Platform on AWS",
				Category:    "AWS EKS • ArgoCD • Helm",
				Image:       "https://images.unsplash.com/photo-1667372393119-3d4c48d07fc9?auto=format&fit=crop&q=80&w=2532&ixlib=rb-4.0.3",
				Description: "Orchestrated a GitOps workflow using ArgoCD + GitHub Actions to standardize deployments. Applied Helm charting to ensure configuration consistency across all releases. Accelerated deployment cycles by 60% while maintaining reliable rollbacks.",
				Date:        "October 2025",
			},
			{
				Title:       "Production-Ready EKS Infrastructure",
				Category:    "AWS EKS • Terraform • Fargate",
				Image:       "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&q=80&w=2672&ixlib=rb-4.0.3",
				Description: "Architected a secure AWS environment with isolated VPC networks and IAM controls. Leveraged AWS Fargate to optimize compute usage and reduce idle costs by 30%. Executed fully reproducible infrastructure provisioning using Terraform modules.",
				Date:        "July 2025",
			},
			{
				Title:       "Secure CI/CD DevOps Pipeline",
				Category:    "Jenkins • Docker • ECS • DevSecOps",
				Image:       "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?auto=format&fit=crop&q=80&w=2534&ixlib=rb-4.0.3",
				Description: "Developed an end-to-end secure CI/CD pipeline for a Flask application using containerized microservices. Integrated SonarQube for static code analysis and Trivy for container vulnerability scanning. Implemented Jenkins-driven blue-green deployments with automated rollback.",
				Date:        "December 2024",
			},
		},
		Experiences: []Experience{
			{
				Role:        "Generative AI Intern",
				Company:     "NASSCOM",
				Period:      "June 2025 - July 2025",
				Description: "Streamlined scripting workflows using Generative AI, lowering manual effort by 25%. Produced AI-driven incident summaries that shortened debugging time by 30%. Refined prompt structures and automated diagnostics, improving pipeline analysis by 20%.",
			},
			{
				Role:        "Web Developer",
				Company:     "National Technical Research Organization (NTRO)",
				Period:      "June 2024 - August 2024",
				Description: "Engineered a Docker-based reporting system (Node.js + MongoDB), improving reporting speed by 60%. Unified development and deployment environments, minimizing configuration drift by 90%. Converted manual reporting tasks into digital modules, reducing daily workload by 50%.",
			},
		},
		Contact: Contact{
			Pitch:       "I'm always interested in hearing about new DevOps projects and cloud infrastructure opportunities.",
			Email:       "amansain2908@gmail.com",
			Phone:       "+916350644374",
			PhoneLabel:  "+91 63506 44374",
			Copyright:   "Aman Sain",
			ProjectSpan: "2024 — 2025",
		},
		Socials: []Social{
			{Icon: "linkedin", URL: "https://linkedin.com/in/aman-sain-a14667256/", Label: "LinkedIn"},
			{Icon: "github", URL: "https://github.com/Aman-sain", Label: "GitHub"},
		},
	}
}

// LoadContent returns the built-in content, overlaid with the YAML file at
// path when path is non-empty. Lists in the file replace the defaults
// wholesale.
func LoadContent(path string) (Content, error) {
	c := DefaultContent()
	if path == "" {
		return c, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Content{}, fmt.Errorf("load content %s: %w", path, err)
	}
	if k.Exists("about") {
		c.About = nil
	}
	if k.Exists("skills") {
		c.Skills = nil
	}
	if k.Exists("projects") {
		c.Projects = nil
	}
	if k.Exists("experiences") {
		c.Experiences = nil
	}
	if k.Exists("socials") {
		c.Socials = nil
	}
	if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Content{}, fmt.Errorf("decode content %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return Content{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Content) validate() error {
	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalidContent, i)
		}
	}
	for i, e := range c.Experiences {
		if e.Role == "" {
			return fmt.Errorf("%w: experience %d has no role", ErrInvalidContent, i)
		}
	}
	for i, s := range c.Skills {
		if s.Category == "" {
			return fmt.Errorf("%w: skill %d has no category", ErrInvalidContent, i)
		}
	}
	for i, s := range c.Socials {
		if s.URL == "" || s.Label == "" {
			return fmt.Errorf("%w: social link %d needs a url and label", ErrInvalidContent, i)
		}
	}
	return nil
}
