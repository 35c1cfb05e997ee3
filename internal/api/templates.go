package api

import (
	"embed"
	"html/template"
	"net/url"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"animationURL": animationURL,
	"join":         strings.Join,
}

// ParseTemplates parses the embedded page templates. Pages are addressed by
// file name, e.g. "search.html".
func ParseTemplates() (*template.Template, error) {
	return template.New("pages").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

// animationURL is where a card loads the animation for name. Cards without
// equipment get the default animation.
func animationURL(name string) string {
	if name == "" {
		name = "default"
	}
	return "/api/v1/animations/" + url.PathEscape(name)
}
