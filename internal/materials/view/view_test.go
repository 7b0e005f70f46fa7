package view_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matdash/matdash-backend/internal/materials/repository"
	"github.com/matdash/matdash-backend/internal/materials/service"
	"github.com/matdash/matdash-backend/internal/materials/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDashboard(t *testing.T) {
	v := view.New("Material Description Dashboard")

	dash := &service.Dashboard{
		Languages: []repository.LanguageSummary{
			{LanguageCode: "E", MaterialCount: 1200, DescriptionCount: 1100},
			{LanguageCode: "D", MaterialCount: 500, DescriptionCount: 450},
		},
		MaterialTypes: []repository.MaterialTypeSummary{
			{TypeLabel: "Steel Rod Type A - H", Count: 40},
			{TypeLabel: "Copper Wire 2mm", Count: 25},
		},
		Metrics: service.Metrics{TotalMaterials: 1700, SupportedLanguages: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, v.RenderDashboard(&buf, dash))
	html := buf.String()

	// metrics with thousands separator
	assert.Contains(t, html, "1,700")
	assert.Contains(t, html, "Total Materials")
	assert.Contains(t, html, "Supported Languages")

	// table rows
	assert.Contains(t, html, "<td>E</td>")
	assert.Contains(t, html, "<td>D</td>")
	assert.Contains(t, html, "<td>1200</td>")

	// chart payload
	assert.Contains(t, html, `"langLabels":["E","D"]`)
	assert.Contains(t, html, `"langValues":[1200,500]`)
	assert.Contains(t, html, "Steel Rod Type A - H")

	// page chrome
	assert.Contains(t, html, "Material Description Dashboard")
	assert.Contains(t, html, "chart-languages")
	assert.Contains(t, html, "chart-types")
}

func TestRenderDashboard_Empty(t *testing.T) {
	v := view.New("Material Description Dashboard")

	dash := &service.Dashboard{
		Languages:     nil,
		MaterialTypes: nil,
		Metrics:       service.Metrics{},
	}

	var buf bytes.Buffer
	require.NoError(t, v.RenderDashboard(&buf, dash))
	html := buf.String()

	// zero metrics, no error, empty chart payloads
	assert.Contains(t, html, `<div class="value">0</div>`)
	assert.Contains(t, html, `"langLabels":[]`)
	assert.Contains(t, html, `"typeLabels":[]`)
	assert.NotContains(t, html, "<td>")
}

func TestRenderError(t *testing.T) {
	v := view.New("Material Description Dashboard")

	var buf bytes.Buffer
	require.NoError(t, v.RenderError(&buf, `failed to load language summaries: relation "makt" does not exist`))
	html := buf.String()

	assert.Contains(t, html, "does not exist")
	// nothing but the error message is rendered
	assert.NotContains(t, html, "chart-languages")
	assert.NotContains(t, html, "Total Materials")
	// error text appears exactly once
	assert.Equal(t, 1, strings.Count(html, "failed to load"))
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1700, "1,700"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, view.FormatThousands(tt.in), "input %d", tt.in)
	}
}
