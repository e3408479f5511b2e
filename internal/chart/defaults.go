package chart

// Widget defaults applied when the block omits the corresponding key.
const (
	DefaultType   = "bar"
	DefaultTitle  = "Chart"
	DefaultWidth  = 800
	DefaultHeight = 400
)

// axisTickCallback formats y-axis ticks with thousands separators.
// It is stored as a string and unquoted after JSON serialization so the
// charting runtime receives a live function, not text.
const axisTickCallback = "function(value) { return typeof value === 'number' ? value.toLocaleString() : value; }"

// defaultOptions returns the presentation defaults user options are
// merged over. A fresh tree is built per call so merging can never leak
// state between charts.
func defaultOptions(title string) map[string]any {
	return map[string]any{
		"responsive":          true,
		"maintainAspectRatio": false,
		"plugins": map[string]any{
			"title": map[string]any{
				"display": true,
				"text":    title,
				"font":    map[string]any{"size": 16, "weight": "bold"},
			},
			"legend": map[string]any{
				"display":  true,
				"position": "top",
			},
		},
		"scales": map[string]any{
			"y": map[string]any{
				"beginAtZero": true,
				"ticks": map[string]any{
					"callback": axisTickCallback,
				},
			},
		},
	}
}

// stringValue reads a string key from a config, falling back to def.
func stringValue(cfg Config, key, def string) string {
	if s, ok := cfg[key].(string); ok && s != "" {
		return s
	}
	return def
}

// intValue reads a numeric key from a config, falling back to def.
// YAML decoders produce a few different integer types depending on the
// literal, so all of them are accepted.
func intValue(cfg Config, key string, def int) int {
	switch n := cfg[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	}
	return def
}

// mapValue reads a nested mapping from a config, falling back to an
// empty map.
func mapValue(cfg Config, key string) map[string]any {
	if m, ok := cfg[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
