package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/eastgenomics/eggd-coverage-report/internal/coverage"
)

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Coverage report for {{.Sample}}</title>
<link rel="stylesheet" href="https://maxcdn.bootstrapcdn.com/bootstrap/3.3.1/css/bootstrap.min.css">
<style>body{ margin:0 100px; background:whitesmoke; } svg{ background:white; border:1px solid #ddd; }</style>
</head>
<body>
<h1>Coverage report for {{.Sample}}</h1>

<p>
Genes in panel: {{.Counters.TotalGenes}}.
Genes with sub-optimal coverage at {{.Threshold}}x: {{.Counters.GeneIssues}}.
Exons with sub-optimal coverage at {{.Threshold}}x: {{.Counters.ExonIssues}}.
</p>

<h2>Exons with sub-optimal coverage</h2>
{{if .Inadequate.Rows}}
<table class="table table-striped">
<tr><th>gene</th><th>tx</th><th>chrom</th><th>exon</th><th>exon_start</th><th>exon_end</th>{{range .Inadequate.Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Inadequate.Rows}}
<tr><td>{{.Gene}}</td><td>{{.Tx}}</td><td>{{.Chrom}}</td><td>{{.Exon}}</td><td>{{.ExonStart}}</td><td>{{.ExonEnd}}</td><td>{{.Min}}</td><td>{{mean .Mean}}</td><td>{{.Max}}</td>{{range .Percents}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
{{else}}
<p>All exons fully covered at {{.Threshold}}x.</p>
{{end}}

{{if .Traces}}
<h2>Coverage of exons with sub-optimal regions</h2>
{{range .Traces}}
<h4>{{.Gene}} exon: {{.Exon}}</h4>
{{trace . $.MaxDepth $.Threshold}}
{{end}}
{{end}}

{{if or .LowVariants .HighVariants}}
<h2>Variants in low coverage regions</h2>
{{template "variants" .LowVariants}}
<h2>Variants in adequately covered regions</h2>
{{template "variants" .HighVariants}}
{{end}}

</body>
</html>

{{define "variants"}}
{{if .}}
<table class="table table-striped">
<tr><th>gene</th><th>exon</th><th>chrom</th><th>pos</th><th>id</th><th>ref</th><th>alt</th><th>cov</th></tr>
{{range .}}
<tr><td>{{.Gene}}</td><td>{{.Exon}}</td><td>{{.Chrom}}</td><td>{{.Pos}}</td><td>{{.ID}}</td><td>{{.Ref}}</td><td>{{.Alt}}</td><td>{{.Coverage}}</td></tr>
{{end}}
</table>
{{else}}
<p>None.</p>
{{end}}
{{end}}`

type htmlData struct {
	Data
	MaxDepth int
}

// RenderHTML writes the single-sample HTML report.
func RenderHTML(w io.Writer, d Data) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"mean":  formatMean,
		"trace": traceSVG,
	}).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	// Shared y axis across all exon plots.
	maxDepth := 0
	for _, t := range d.Traces {
		if md := t.MaxDepth(); md > maxDepth {
			maxDepth = md
		}
	}

	if err := tmpl.Execute(w, htmlData{Data: d, MaxDepth: maxDepth}); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

const (
	svgWidth  = 420
	svgHeight = 120
)

// traceSVG renders one exon's depth profile as an inline SVG step plot with
// a line at the depth threshold.
func traceSVG(t coverage.Trace, maxDepth, threshold int) template.HTML {
	span := t.ExonEnd - t.ExonStart
	if span <= 0 || len(t.Buckets) == 0 {
		return ""
	}
	if maxDepth < threshold {
		maxDepth = threshold
	}
	if maxDepth == 0 {
		maxDepth = 1
	}

	x := func(pos int64) float64 {
		p := pos
		if p < t.ExonStart {
			p = t.ExonStart
		}
		if p > t.ExonEnd {
			p = t.ExonEnd
		}
		return float64(p-t.ExonStart) / float64(span) * svgWidth
	}
	y := func(depth int) float64 {
		return svgHeight - float64(depth)/float64(maxDepth)*svgHeight
	}

	var points strings.Builder
	for _, b := range t.Buckets {
		fmt.Fprintf(&points, "%.1f,%.1f %.1f,%.1f ", x(b.Start), y(b.Depth), x(b.End), y(b.Depth))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%d" height="%d" viewBox="0 0 %d %d">`,
		svgWidth, svgHeight, svgWidth, svgHeight)
	fmt.Fprintf(&sb, `<polyline fill="none" stroke="steelblue" stroke-width="1.5" points="%s"/>`,
		strings.TrimSpace(points.String()))
	fmt.Fprintf(&sb, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="rgb(205,12,24)" stroke-width="1"/>`,
		y(threshold), svgWidth, y(threshold))
	sb.WriteString(`</svg>`)

	return template.HTML(sb.String())
}
