// Package web bundles the HTML templates into the binary so the server has
// no runtime file dependencies.
package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

// MustTemplates parses the embedded templates. The set is fixed at compile
// time, so a parse failure is a build defect and panics at startup.
func MustTemplates() *template.Template {
	funcs := template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Format("02/01/2006 15:04")
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}
