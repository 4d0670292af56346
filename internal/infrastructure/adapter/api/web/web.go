// Package web holds the server-rendered fraud-check page.
package web

import (
	"embed"
	"html/template"
)

// IndexTemplate is the name of the fraud-check page
const IndexTemplate = "index.html"

//go:embed templates/*.html
var templates embed.FS

// Templates parses the embedded page templates
func Templates() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}
