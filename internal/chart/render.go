package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches the inert divs left behind by Extract.
// Captures the generated chart identifier.
var placeholderPattern = regexp.MustCompile(`<div class="chart-placeholder" data-chart-id="([^"]+)"></div>`)

// funcLiteralPattern matches a serialized string whose value has the
// shape of a JavaScript function literal: a parameter list followed by
// a single-level body. It operates on the JSON text after encoding.
var funcLiteralPattern = regexp.MustCompile(`"function\(([^)]*)\)\s*\{\s*([^}]+)\s*\}"`)

// widgetTemplate is the emitted markup: a sized container, the canvas
// addressable by the chart identifier, and an initialization script
// that polls until the Chart.js runtime is loaded and guards against
// initializing the same canvas twice.
const widgetTemplate = `
<div class="chart-container" style="position: relative; width: 100%%; height: %dpx; margin: 20px 0;">
    <canvas id="%s" width="%d" height="%d"></canvas>
</div>
<script>
(function() {
    function initChart() {
        if (typeof Chart === 'undefined') {
            setTimeout(initChart, 100);
            return;
        }

        const ctx = document.getElementById('%s');
        if (ctx && !ctx.chart) {
            const config = %s;
            ctx.chart = new Chart(ctx, config);
        }
    }

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', initChart);
    } else {
        initChart();
    }
})();
</script>
`

// widgetSpec is the object handed to the charting runtime.
type widgetSpec struct {
	Type    string         `json:"type"`
	Data    map[string]any `json:"data"`
	Options map[string]any `json:"options"`
}

// Render substitutes every placeholder whose identifier is present in
// store with generated widget markup in a single pass. Placeholders
// with no store entry are left untouched; under normal operation that
// path is dead, since Extract always pairs a placeholder with an entry.
func (c *ChartJS) Render(htmlContent string, store Store) string {
	if len(store) == 0 {
		return htmlContent
	}

	return placeholderPattern.ReplaceAllStringFunc(htmlContent, func(match string) string {
		id := placeholderPattern.FindStringSubmatch(match)[1]
		cfg, ok := store[id]
		if !ok {
			return match
		}
		return widgetHTML(id, cfg)
	})
}

// widgetHTML builds the container, canvas, and init script for one chart.
func widgetHTML(id string, cfg Config) string {
	title := stringValue(cfg, "title", DefaultTitle)
	width := intValue(cfg, "width", DefaultWidth)
	height := intValue(cfg, "height", DefaultHeight)

	spec := widgetSpec{
		Type:    stringValue(cfg, "type", DefaultType),
		Data:    mapValue(cfg, "data"),
		Options: Merge(defaultOptions(title), mapValue(cfg, "options")),
	}

	return fmt.Sprintf(widgetTemplate, height, id, width, height, id, encodeSpec(spec))
}

// encodeSpec serializes the widget spec as indented JSON and unquotes
// function-literal strings so the runtime sees executable callbacks.
// HTML escaping is disabled: the output is embedded in a script block
// and must keep characters like < and & readable.
func encodeSpec(spec widgetSpec) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(spec); err != nil {
		// Decoded YAML trees always encode; only exotic injected values
		// (channels, funcs) could fail, and those cannot appear here.
		return "{}"
	}

	out := strings.TrimRight(buf.String(), "\n")
	return funcLiteralPattern.ReplaceAllString(out, "function($1) { $2 }")
}
