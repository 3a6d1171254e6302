// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"html"
	"strings"

	"github.com/danielhkuo/migrant-roadmap/models"
)

const (
	// DocumentTitle is the page title and top-level heading
	DocumentTitle = "Путеводитель мигранта"

	// Filename is the download name offered for the document
	Filename = "roadmap.html"

	// ContentType of the rendered document
	ContentType = "text/html; charset=utf-8"
)

const head = `<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8">
    <title>` + DocumentTitle + `</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        h1 { color: #333; }
        .recommendation { margin-bottom: 30px; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
        .recommendation h2 { color: #0066cc; margin-top: 0; }
        .date { color: #666; font-weight: bold; }
    </style>
</head>
<body>
    <h1>` + DocumentTitle + `</h1>
`

const tail = `</body>
</html>
`

// HTML renders the roadmap as a standalone UTF-8 HTML document. Output
// depends only on the roadmap, recommendations appear in slice order and
// all text is escaped.
func HTML(roadmap models.Roadmap) []byte {
	var b strings.Builder

	b.WriteString(head)
	b.WriteString("    <p>Дата создания: ")
	b.WriteString(roadmap.CreatedDate.Human())
	b.WriteString("</p>\n")
	b.WriteString("    <hr>\n")

	for _, rec := range roadmap.Recommendations {
		b.WriteString("    <div class=\"recommendation\">\n")
		b.WriteString("        <h2>")
		b.WriteString(html.EscapeString(rec.Title))
		b.WriteString("</h2>\n")
		b.WriteString("        <p class=\"date\">Дата выполнения: ")
		b.WriteString(rec.ExecutionDate.Human())
		b.WriteString("</p>\n")
		b.WriteString("        <p>")
		b.WriteString(html.EscapeString(rec.Description))
		b.WriteString("</p>\n")
		b.WriteString("    </div>\n")
	}

	b.WriteString(tail)

	return []byte(b.String())
}
