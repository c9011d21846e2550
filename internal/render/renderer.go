// Package render builds the invoice preview page from embedded templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"invoice-preview-backend/internal/format"
	"invoice-preview-backend/internal/services/preview"
)

//go:embed templates
var templateFS embed.FS

var funcs = template.FuncMap{
	"lines": func(l []string) template.HTML { return template.HTML(format.Lines(l)) },
	"btc":   format.BTCString,
	"qty":   func(q float64) string { return strconv.FormatFloat(q, 'f', -1, 64) },
}

type Renderer struct {
	tpl *template.Template
}

func New() (*Renderer, error) {
	tpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render executes one named template. The result is trusted markup meant
// to be embedded in an enclosing template.
func (r *Renderer) Render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

type content struct {
	*preview.ViewModel
	ItemsHTML template.HTML
	InfoHTML  template.HTML
}

type shell struct {
	Page    string
	Title   string
	Scripts []string
	Content template.HTML
}

// Page renders the full preview: item rows and the detail block first,
// then the content fragment, then the page shell around it.
func (r *Renderer) Page(vm *preview.ViewModel) (string, error) {
	var items strings.Builder
	for _, it := range vm.Items {
		row, err := r.Render("templates/item", it)
		if err != nil {
			return "", err
		}
		items.WriteString(string(row))
	}

	var info template.HTML
	var err error
	if vm.Transaction != nil {
		info, err = r.Render("templates/invoiceTransaction", vm.Transaction)
	} else {
		info, err = r.Render("templates/invoicePayment", vm.Payment)
	}
	if err != nil {
		return "", err
	}

	body, err := r.Render("invoice.preview", content{
		ViewModel: vm,
		ItemsHTML: template.HTML(items.String()),
		InfoHTML:  info,
	})
	if err != nil {
		return "", err
	}

	page, err := r.Render("index", shell{
		Page:    vm.Page,
		Title:   vm.Title,
		Scripts: vm.Scripts,
		Content: body,
	})
	return string(page), err
}
