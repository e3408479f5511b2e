package chart

import (
	"html"
	"strings"

	"github.com/acao/cuyahoga-county-fiscal-flows/internal/yamlutil"
)

// Fence delimiters for chart blocks. Matching is done on trimmed lines
// so indented fences inside the document still count.
const (
	fenceOpen  = "```chart"
	fenceClose = "```"
)

// Extension is the two-pass contract for chart block substitution.
// Extract runs before the generic markdown conversion, Render after it.
// Both passes exchange data exclusively through the caller-owned Store.
type Extension interface {
	Extract(lines []string, store Store) []string
	Render(htmlContent string, store Store) string
}

// ChartJS implements Extension by emitting Chart.js canvas widgets.
type ChartJS struct{}

// NewChartJS creates the Chart.js extension.
func NewChartJS() *ChartJS {
	return &ChartJS{}
}

// Compile-time interface check.
var _ Extension = (*ChartJS)(nil)

// Extract replaces every chart fence with a placeholder line and stores
// the decoded YAML body in store. All other lines pass through verbatim
// and in order.
//
// Failure handling is local: a body that does not decode as YAML turns
// into an inline error div and nothing is stored; the rest of the
// document is processed normally. A fence that is never closed consumes
// the remainder of the input as its body.
func (c *ChartJS) Extract(lines []string, store Store) []string {
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != fenceOpen {
			out = append(out, lines[i])
			continue
		}

		var body []string
		for i++; i < len(lines) && strings.TrimSpace(lines[i]) != fenceClose; i++ {
			body = append(body, lines[i])
		}

		// Opener immediately followed by closer: the block vanishes.
		if len(body) == 0 {
			continue
		}

		var cfg Config
		if err := yamlutil.Unmarshal([]byte(strings.Join(body, "\n")), &cfg); err != nil {
			out = append(out, `<div class="chart-error">Chart configuration error: `+html.EscapeString(err.Error())+`</div>`)
			continue
		}

		id := newChartID()
		store[id] = cfg
		out = append(out, `<div class="chart-placeholder" data-chart-id="`+id+`"></div>`)
	}

	return out
}
