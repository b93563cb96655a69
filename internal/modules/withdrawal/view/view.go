// Package view renders the receipt, admin and not-found pages.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"wdr/internal/config"
	"wdr/internal/modules/withdrawal/model"
	"wdr/internal/modules/withdrawal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"lower": func(s model.Status) string { return strings.ToLower(s.String()) },
	"inc":   func(i int) int { return i + 1 },
}

type Renderer struct {
	tpl   *template.Template
	brand config.BrandConfig
}

func NewRenderer(brand config.BrandConfig) (*Renderer, error) {
	tpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl, brand: brand}, nil
}

// Row is a record with its display values computed.
type Row struct {
	Record          model.WithdrawalRecord
	Amount          string
	RequiredBalance string
	Unit            string
}

func NewRow(rec model.WithdrawalRecord) Row {
	return Row{
		Record:          rec,
		Amount:          usecase.FormatAmount(rec.Amount),
		RequiredBalance: usecase.RequiredBalance(rec.Amount),
		Unit:            usecase.UnitForChain(rec.Chain),
	}
}

type receiptPage struct {
	Row
	Title string
	URL   string
	Brand config.BrandConfig
}

type adminPage struct {
	Title string
	Rows  []Row
	Brand config.BrandConfig
}

type notFoundPage struct {
	Title string
	ID    string
	Brand config.BrandConfig
}

func (r *Renderer) Receipt(rec model.WithdrawalRecord, url string) ([]byte, error) {
	return r.render("receipt", receiptPage{Row: NewRow(rec), Title: "Receipt", URL: url, Brand: r.brand})
}

func (r *Renderer) Admin(records []model.WithdrawalRecord) ([]byte, error) {
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = NewRow(rec)
	}
	return r.render("admin", adminPage{Title: "Admin", Rows: rows, Brand: r.brand})
}

func (r *Renderer) NotFound(id string) ([]byte, error) {
	return r.render("not_found", notFoundPage{Title: "Not found", ID: id, Brand: r.brand})
}

func (r *Renderer) render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
