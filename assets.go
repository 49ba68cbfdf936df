package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// parseTemplates loads every page and section template. Templates can
// render one another by name through the render func, which is how the
// page walks its section list.
func parseTemplates() (*template.Template, error) {
	var tmpl *template.Template
	funcs := template.FuncMap{
		"render": func(name string, data any) (template.HTML, error) {
			var buf bytes.Buffer
			if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
				return "", err
			}
			return template.HTML(buf.String()), nil
		},
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// staticFiles roots fsys at dir for serving under /static.
func staticFiles(fsys fs.FS, dir string) (http.FileSystem, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("static files %s: %w", dir, err)
	}
	return http.FS(sub), nil
}
