package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/lgastler/work-journal/internal/common"
	"github.com/lgastler/work-journal/internal/journal"
	"github.com/lgastler/work-journal/internal/server/models"
)

//go:embed templates/index.html
var templatesFS embed.FS

//go:embed static
var staticRoot embed.FS

var (
	pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))
	staticFS     = mustSub(staticRoot, "static")
)

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

const pageTitle = "Work Journal - lgastler"

type typeOption struct {
	Value   string
	Label   string
	Checked bool
}

var typeOptions = []typeOption{
	{Value: string(models.EntryTypeWork), Label: "Work", Checked: true},
	{Value: string(models.EntryTypeLearning), Label: "Learning"},
	{Value: string(models.EntryTypeInteresting), Label: "Interesting thing"},
}

type pageData struct {
	Title string
	Today string
	Types []typeOption
	Weeks []journal.Week
}

func (s *HTTPServer) renderPage(w http.ResponseWriter, weeks []journal.Week) error {
	data := pageData{
		Title: pageTitle,
		Today: s.now().Format(common.DateFormat),
		Types: typeOptions,
		Weeks: weeks,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return pageTemplate.Execute(w, data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
