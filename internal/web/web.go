// Package web holds the single dashboard page and its script.
package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/index.html static/dashboard.js
var files embed.FS

var indexTemplate = template.Must(template.ParseFS(files, "templates/index.html"))

type PageData struct {
	Title      string
	Background string
	EChartsURL string
	ScriptPath string
}

const DefaultEChartsURL = "https://cdn.jsdelivr.net/npm/echarts@5.5.1/dist/echarts.min.js"

func RenderIndex(w io.Writer, data PageData) error {
	return indexTemplate.Execute(w, data)
}

func Script() ([]byte, error) {
	return files.ReadFile("static/dashboard.js")
}
