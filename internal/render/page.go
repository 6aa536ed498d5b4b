package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/spec-kit/survey-service/internal/domain"
)

const pageTemplateText = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>社内アンケート ダッシュボード</title>
</head>
<body>
<h1>社内アンケート ダッシュボード</h1>
<section>
  <p>回答数: {{.TotalCount}}</p>
  <p>平均優先度: {{.AveragePriority}}</p>
</section>
<section>
  <h2>部署別内訳</h2>
  {{.Breakdown}}
</section>
<section>
  <h2>最近の回答</h2>
  {{if .Feed}}<ul>
  {{- range .Feed}}
    <li>{{.Timestamp}} [{{.Department}}] {{.Preview}}</li>
  {{- end}}
  </ul>{{else}}<p>まだ回答がありません。</p>{{end}}
</section>
</body>
</html>`

var pageTemplate = template.Must(template.New("dashboard").Parse(pageTemplateText))

// DashboardPage renders the full dashboard HTML. The breakdown section uses
// the preferred renderer and degrades to the table fallback when the chart
// cannot draw; rendering never fails the page.
func DashboardPage(summary domain.DashboardSummary, preferred Renderer) (string, error) {
	fallback := NewTableRenderer()

	renderer := Pick(preferred, fallback)
	breakdown, err := renderer.RenderBreakdown(summary.DepartmentCounts)
	if err != nil {
		breakdown, err = fallback.RenderBreakdown(summary.DepartmentCounts)
		if err != nil {
			breakdown = ""
		}
	}

	data := struct {
		TotalCount      int
		AveragePriority string
		Breakdown       template.HTML
		Feed            []FeedItem
	}{
		TotalCount:      summary.TotalCount,
		AveragePriority: fmt.Sprintf("%.1f", summary.AveragePriority),
		Breakdown:       breakdown,
		Feed:            BuildFeed(summary.RecentEntries),
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
