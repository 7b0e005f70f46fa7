// Package view renders the dashboard HTML page. Charts are drawn client-side
// as SVG from a JSON payload embedded in the page; the renderers are
// deterministic over the aggregation rows plus fixed style constants.
package view

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/matdash/matdash-backend/internal/materials/service"
)

// View renders the dashboard and error pages.
type View struct {
	title     string
	page      *template.Template
	errorPage *template.Template
}

// New parses the page templates. Panics on a malformed template, which is a
// programming error, not a runtime condition.
func New(title string) *View {
	return &View{
		title:     title,
		page:      template.Must(template.New("dashboard").Parse(pageTemplate)),
		errorPage: template.Must(template.New("error").Parse(errorTemplate)),
	}
}

// chartData is the payload the in-page SVG renderers consume.
type chartData struct {
	LangLabels []string `json:"langLabels"`
	LangValues []int64  `json:"langValues"`
	TypeLabels []string `json:"typeLabels"`
	TypeValues []int64  `json:"typeValues"`
}

type pageData struct {
	Title          string
	GeneratedAt    string
	TotalMaterials string
	Languages      int
	Rows           []languageRow
	ChartData      template.JS
}

type languageRow struct {
	LanguageCode     string
	MaterialCount    int64
	DescriptionCount int64
}

type errorData struct {
	Title   string
	Message string
}

// RenderDashboard writes the full dashboard page. Zero-row input renders
// empty charts and zero metrics rather than failing.
func (v *View) RenderDashboard(w io.Writer, dash *service.Dashboard) error {
	cd := chartData{
		LangLabels: []string{},
		LangValues: []int64{},
		TypeLabels: []string{},
		TypeValues: []int64{},
	}
	rows := make([]languageRow, 0, len(dash.Languages))
	for _, l := range dash.Languages {
		cd.LangLabels = append(cd.LangLabels, l.LanguageCode)
		cd.LangValues = append(cd.LangValues, l.MaterialCount)
		rows = append(rows, languageRow{
			LanguageCode:     l.LanguageCode,
			MaterialCount:    l.MaterialCount,
			DescriptionCount: l.DescriptionCount,
		})
	}
	for _, mt := range dash.MaterialTypes {
		cd.TypeLabels = append(cd.TypeLabels, mt.TypeLabel)
		cd.TypeValues = append(cd.TypeValues, mt.Count)
	}

	payload, err := json.Marshal(cd)
	if err != nil {
		return fmt.Errorf("failed to encode chart data: %w", err)
	}

	return v.page.Execute(w, pageData{
		Title:          v.title,
		GeneratedAt:    time.Now().Format(time.RFC1123),
		TotalMaterials: FormatThousands(dash.Metrics.TotalMaterials),
		Languages:      dash.Metrics.SupportedLanguages,
		Rows:           rows,
		ChartData:      template.JS(payload),
	})
}

// RenderError writes the single full-page error view. Nothing else is shown
// when a data load fails.
func (v *View) RenderError(w io.Writer, message string) error {
	return v.errorPage.Execute(w, errorData{
		Title:   v.title,
		Message: message,
	})
}

// FormatThousands renders n with comma thousands separators.
func FormatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	start := 0
	if s[0] == '-' {
		start = 1
	}

	digits := len(s) - start
	if digits <= 3 {
		return s
	}

	out := make([]byte, 0, len(s)+digits/3)
	out = append(out, s[:start]...)
	lead := digits % 3
	if lead > 0 {
		out = append(out, s[start:start+lead]...)
		if digits > lead {
			out = append(out, ',')
		}
	}
	for i := start + lead; i < len(s); i += 3 {
		out = append(out, s[i:i+3]...)
		if i+3 < len(s) {
			out = append(out, ',')
		}
	}
	return string(out)
}
