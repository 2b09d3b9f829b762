// Package render generates a standalone HTML timeline document from a
// filtered event table: a center line with alternating left/right
// cards, sized to fit its content. The document is self-contained (all
// CSS inline) so it can be saved and opened anywhere.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/mbarros/linhatempo/internal/event"
)

// descriptionLimit is the rune budget for a card's compact
// description. Only the rendered card is truncated; the underlying
// event keeps the full text.
const descriptionLimit = 160

// EmptyMessage is shown when the filters exclude every row.
const EmptyMessage = "Nenhum evento encontrado com os filtros atuais."

type documentData struct {
	Title     string
	Style     Style
	Rows      []rowData
	MinHeight int
	Empty     bool
	EmptyMsg  string
}

type rowData struct {
	Period      string
	Title       string
	Description string
	Themes      string
	Right       bool // odd rows alternate to the right column
}

// Document renders the events as a complete HTML page. The container's
// minimum height is computed from the row count so the center line
// spans exactly the content.
func Document(title string, events []event.Event, style Style) ([]byte, error) {
	data := documentData{
		Title:     title,
		Style:     style,
		MinHeight: style.Layout.Padding*2 + len(events)*style.Layout.RowHeight,
		Empty:     len(events) == 0,
		EmptyMsg:  EmptyMessage,
	}

	for i, e := range events {
		data.Rows = append(data.Rows, rowData{
			Period:      e.Period,
			Title:       e.Title,
			Description: truncate(e.Description, descriptionLimit),
			Themes:      strings.Join(e.Themes, " • "),
			Right:       i%2 == 1,
		})
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render timeline document: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate shortens s to maxRunes runes, appending "..." when cut.
func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

var documentTemplate = template.Must(template.New("timeline").Parse(`{{define "card"}}<div class="card">
    <div class="period">{{.Period}}</div>
    <div class="title">{{.Title}}</div>
    <div class="desc">{{.Description}}</div>
    {{if .Themes}}<div class="theme">{{.Themes}}</div>{{end}}
  </div>{{end}}<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body {
  margin: 0;
  background: {{.Style.Colors.Background}};
  font-family: {{.Style.Font.Family}};
  font-size: {{.Style.Font.Size}}px;
}
h1 { text-align: center; color: {{.Style.Colors.Title}}; padding-top: 16px; }
.tl-container {
  position: relative;
  margin: 0 auto;
  max-width: {{.Style.Layout.MaxWidth}}px;
  min-height: {{.MinHeight}}px;
  padding: {{.Style.Layout.Padding}}px 0;
}
.tl-line {
  position: absolute;
  top: 0; bottom: 0;
  left: 50%;
  width: 3px;
  background: {{.Style.Colors.Line}};
  transform: translateX(-50%);
}
.tl-item {
  display: grid;
  grid-template-columns: 1fr 60px 1fr;
  gap: 14px;
  align-items: center;
  margin: 14px 0;
}
.tl-dot {
  width: 16px; height: 16px;
  background: {{.Style.Colors.Dot}};
  border-radius: 9999px;
  margin: 0 auto;
}
.card {
  background: {{.Style.Colors.Card}};
  border: 1px solid {{.Style.Colors.CardBorder}};
  border-radius: 12px;
  padding: 14px 16px;
  box-shadow: 0 1px 2px rgba(0,0,0,0.05);
}
.period { color: {{.Style.Colors.Period}}; font-size: 0.9em; margin-bottom: 6px; }
.title  { color: {{.Style.Colors.Title}}; font-weight: 700; margin-bottom: 6px; font-size: 1.05em; }
.desc   { color: {{.Style.Colors.Description}}; font-size: 0.95em; }
.theme  { color: {{.Style.Colors.Theme}}; font-size: 0.85em; margin-top: 8px; }
.empty  { text-align: center; color: {{.Style.Colors.Period}}; padding: 32px 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="tl-container">
<div class="tl-line"></div>
{{if .Empty}}<div class="empty">{{.EmptyMsg}}</div>{{end}}
{{range .Rows}}<div class="tl-item">
  {{if .Right}}<div></div>{{else}}{{template "card" .}}{{end}}
  <div class="tl-dot"></div>
  {{if .Right}}{{template "card" .}}{{else}}<div></div>{{end}}
</div>
{{end}}</div>
</body>
</html>
`))
