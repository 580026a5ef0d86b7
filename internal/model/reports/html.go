package reports

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/pkg/errors"
)

// The export collaborator receives a self-contained document; the markup
// is plain on purpose, completeness of the data is what matters.
const monthTemplate = `<html>
<head><meta charset="utf-8"><title>{{.Month}} {{.Year}} Expense Summary</title></head>
<body>
<h1>{{.Month}} {{.Year}} Monthly Expense Summary</h1>

<h2>Daily Expenses Total: {{.Currency}} {{printf "%.2f" .Summary.DailyTotal}}</h2>
{{range .Summary.Weeks}}
<h3>Week {{.Week}} ({{dayRange .StartDay .EndDay}}): {{$.Currency}} {{printf "%.2f" .Total}}</h3>
<ul>
{{range .Days}}
  <li><strong>{{shortDate .Date}}:</strong> {{$.Currency}} {{printf "%.2f" .Total}}
    <ul>
    {{range .Lines}}
      <li>{{.Category}}: {{$.Currency}} {{printf "%.2f" .Amount}}{{if .Note}} ({{.Note}}){{end}}</li>
    {{end}}
    </ul>
  </li>
{{end}}
</ul>
{{end}}

<h2>Other Expenses Total: {{.Currency}} {{printf "%.2f" .Summary.OtherTotal}}</h2>
<ul>
{{range .Summary.Other}}
  <li>{{shortDate .Date}} - {{.Category}}: {{$.Currency}} {{printf "%.2f" .Amount}}{{if .Note}} ({{.Note}}){{end}}</li>
{{end}}
</ul>

<h2>Category Breakdown:</h2>
<ul>
{{range .Summary.ByCategory}}
  <li><b>{{.Category}}:</b> {{$.Currency}} {{printf "%.2f" .Amount}}</li>
{{end}}
</ul>

<p><strong>Total for the Month:</strong> {{.Currency}} {{printf "%.2f" .Summary.Total}}</p>
</body>
</html>
`

var monthReport = template.Must(template.New("month").Funcs(template.FuncMap{
	"shortDate": formatDate,
	"dayRange":  formatDayRange,
}).Parse(monthTemplate))

// MonthHTML renders the current month summary as a standalone HTML
// document for the export collaborator.
func (g *Generator) MonthHTML(ctx context.Context, at time.Time) (string, error) {
	summary, err := g.MonthSummary(ctx, at)
	if err != nil {
		return "", errors.Wrap(err, "render month report")
	}

	data := struct {
		Month    string
		Year     int
		Currency string
		Summary  *MonthSummary
	}{
		Month:    fmt.Sprint(summary.Month),
		Year:     summary.Year,
		Currency: g.currency,
		Summary:  summary,
	}

	var buf bytes.Buffer
	if err = monthReport.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "render month report")
	}
	return buf.String(), nil
}
