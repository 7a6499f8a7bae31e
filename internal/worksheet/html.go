package worksheet

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("worksheet").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Gojuon writing drill</title>
<style>
body { font-family: "Noto Sans JP", Arial, sans-serif; margin: 20px; line-height: 1.6; }
.header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #333; padding-bottom: 20px; }
.info { margin-bottom: 20px; background: #f5f5f5; padding: 15px; border-radius: 5px; }
.questions { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin-bottom: 30px; }
.question-item { border: 1px solid #ddd; padding: 15px; border-radius: 5px; text-align: center; }
.question-text { font-size: 24px; font-weight: bold; margin-bottom: 10px; }
.answer-line { border-bottom: 2px solid #333; height: 30px; margin: 10px 0; }
.answer-text { font-size: 18px; color: #666; margin-top: 10px; }
.answers-section { page-break-before: always; margin-top: 50px; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<div class="header">
<h1>Gojuon writing drill</h1>
<p>Direction: {{.Direction.Label}} | Range: {{.Range.Label}}</p>
</div>
<div class="info">
<p><strong>Questions:</strong> {{len .Items}}</p>
<p><strong>Generated:</strong> {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>
<p><strong>Instructions:</strong> write the {{.Direction.To}} for each item on the line.</p>
</div>
<div class="questions">
{{- range .Items}}
<div class="question-item">
<div><strong>{{.Number}}.</strong></div>
<div class="question-text">{{.Question}}</div>
<div class="answer-line"></div>
{{- if $.ShowAnswers}}
<div class="answer-text">Answer: {{.Answer}}</div>
{{- end}}
</div>
{{- end}}
</div>
{{- if not .ShowAnswers}}
<div class="answers-section">
<h2>Answer key</h2>
<div class="questions">
{{- range .Items}}
<div class="question-item">
<div><strong>{{.Number}}.</strong> {{.Question}}</div>
<div class="answer-text">{{.Answer}}</div>
</div>
{{- end}}
</div>
</div>
{{- end}}
</body>
</html>
`))

// WriteHTML renders the sheet as a printable page. Answers appear inline
// when ShowAnswers is set, otherwise as an answer key on a separate page.
func WriteHTML(w io.Writer, sheet Sheet) error {
	return pageTemplate.Execute(w, sheet)
}
