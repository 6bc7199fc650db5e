// Package export renders the weekly schedule to shareable formats:
// a standalone HTML page, a PNG screenshot of that page, and an
// iCalendar file.
package export

import (
	"fmt"
	"html/template"
	"io"

	"classdeck/internal/schedule"
	"classdeck/internal/timefmt"
)

// gridTemplate is a self-contained page mirroring the weekly grid: a
// header row of day names and one column of colored course cards per
// day. The root element carries data-ready="true" so the screenshot
// capture knows rendering is complete.
var gridTemplate = template.Must(template.New("grid").Funcs(template.FuncMap{
	"to12Hour":  timefmt.To12Hour,
	"textColor": schedule.TextColor,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Class Schedule</title>
<style>
  body { margin: 0; font-family: -apple-system, "Segoe UI", sans-serif; background: #f3f4f6; }
  .grid { display: grid; grid-template-columns: repeat({{len .Columns}}, 1fr); gap: 1px; background: #e5e7eb; padding: 1px; }
  .day-header { background: #f9fafb; padding: 8px; text-align: center; font-weight: 600; font-size: 14px; }
  .day-cell { background: #ffffff; padding: 8px; min-height: 192px; }
  .card { border-radius: 8px; padding: 8px; margin-bottom: 8px; }
  .card h3 { margin: 0 0 4px; font-size: 13px; }
  .card p { margin: 2px 0; font-size: 11px; }
  .card .time { font-weight: 600; }
  .empty { color: #9ca3af; font-size: 12px; text-align: center; padding-top: 24px; }
</style>
</head>
<body>
<div class="grid" data-ready="true">
{{- range .Columns}}
  <div class="day-header">{{.Day}}</div>
{{- end}}
{{- range .Columns}}
  <div class="day-cell">
  {{- if .Items}}
  {{- range .Items}}
    <div class="card" style="background-color: {{.Entry.DisplayColor}}; color: {{textColor .Entry.DisplayColor}}">
      <h3>{{.Entry.Title}}</h3>
      <p>{{.Entry.DisplayInstructor}}</p>
      <p>{{.Entry.DisplayRoom}}</p>
      <p class="time">{{to12Hour .Entry.StartTime}} - {{to12Hour .Entry.EndTime}}</p>
    </div>
  {{- end}}
  {{- else}}
    <div class="empty">No classes</div>
  {{- end}}
  </div>
{{- end}}
</div>
</body>
</html>
`))

// WriteHTML renders the weekly grid page for the given entries.
func WriteHTML(w io.Writer, entries []schedule.Entry) error {
	data := struct {
		Columns []schedule.DayColumn
	}{
		Columns: schedule.BuildLayout(entries),
	}
	if err := gridTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering schedule page: %w", err)
	}
	return nil
}
