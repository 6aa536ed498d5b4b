package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/spec-kit/survey-service/internal/domain"
)

// Renderer turns department counts into an HTML fragment. Implementations
// report availability so callers can pick a strategy at call time and fall
// back when the preferred one cannot draw.
type Renderer interface {
	Available() bool
	RenderBreakdown(counts map[string]int) (template.HTML, error)
}

// Pick returns the first available renderer, or the last one as the fallback
// of last resort.
func Pick(renderers ...Renderer) Renderer {
	for _, r := range renderers {
		if r != nil && r.Available() {
			return r
		}
	}
	if len(renderers) == 0 {
		return nil
	}
	return renderers[len(renderers)-1]
}

// bucketOrder lists buckets in display order: known departments, then other.
func bucketOrder() []string {
	return append(domain.KnownDepartments(), domain.DepartmentOther)
}

// ChartRenderer draws the breakdown as inline SVG horizontal bars.
type ChartRenderer struct {
	tmpl *template.Template
}

const chartTemplateText = `<svg class="breakdown-chart" width="360" height="{{.Height}}" role="img">
{{- range $i, $bar := .Bars}}
  <text x="0" y="{{$bar.Y}}" font-size="12">{{$bar.Label}}</text>
  <rect x="80" y="{{$bar.RectY}}" width="{{$bar.Width}}" height="14" fill="#4a90d9"></rect>
  <text x="{{$bar.CountX}}" y="{{$bar.Y}}" font-size="12">{{$bar.Count}}</text>
{{- end}}
</svg>`

// NewChartRenderer probes the chart template; when the probe fails the
// renderer reports unavailable and callers fall back to the table.
func NewChartRenderer() *ChartRenderer {
	tmpl, err := template.New("chart").Parse(chartTemplateText)
	if err != nil {
		return &ChartRenderer{tmpl: nil}
	}
	return &ChartRenderer{tmpl: tmpl}
}

// Available reports whether the chart template is usable.
func (r *ChartRenderer) Available() bool {
	return r != nil && r.tmpl != nil
}

// RenderBreakdown draws one bar per bucket, scaled to the largest count.
func (r *ChartRenderer) RenderBreakdown(counts map[string]int) (template.HTML, error) {
	if !r.Available() {
		return "", fmt.Errorf("chart renderer unavailable")
	}

	max := 0
	for _, bucket := range bucketOrder() {
		if counts[bucket] > max {
			max = counts[bucket]
		}
	}

	type positionedBar struct {
		Label  string
		Count  int
		Width  int
		Y      int
		RectY  int
		CountX int
	}
	bars := make([]positionedBar, 0, len(bucketOrder()))
	for i, bucket := range bucketOrder() {
		width := 0
		if max > 0 {
			width = counts[bucket] * 240 / max
		}
		bars = append(bars, positionedBar{
			Label:  bucket,
			Count:  counts[bucket],
			Width:  width,
			Y:      i*22 + 14,
			RectY:  i * 22,
			CountX: 80 + width + 6,
		})
	}

	var sb strings.Builder
	data := struct {
		Height int
		Bars   []positionedBar
	}{Height: len(bars) * 22, Bars: bars}
	if err := r.tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return template.HTML(sb.String()), nil
}

// TableRenderer is the always-available fallback presentation.
type TableRenderer struct{}

// NewTableRenderer constructs the fallback renderer.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

// Available always reports true.
func (*TableRenderer) Available() bool {
	return true
}

// RenderBreakdown draws the counts as a plain table.
func (*TableRenderer) RenderBreakdown(counts map[string]int) (template.HTML, error) {
	var sb strings.Builder
	sb.WriteString(`<table class="breakdown-table"><thead><tr><th>部署</th><th>件数</th></tr></thead><tbody>`)
	for _, bucket := range bucketOrder() {
		fmt.Fprintf(&sb, "<tr><td>%s</td><td>%d</td></tr>", template.HTMLEscapeString(bucket), counts[bucket])
	}
	sb.WriteString(`</tbody></table>`)
	return template.HTML(sb.String()), nil
}
