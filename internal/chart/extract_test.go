package chart

import (
	"strings"
	"testing"
)

func TestExtractReplacesBlockWithPlaceholder(t *testing.T) {
	t.Parallel()

	lines := []string{
		"# Revenue",
		"```chart",
		"type: bar",
		"title: Revenue by Municipality",
		"```",
		"After the chart.",
	}

	store := NewStore()
	ext := NewChartJS()
	out := ext.Extract(lines, store)

	if len(store) != 1 {
		t.Fatalf("store size = %d, want 1", len(store))
	}
	if len(out) != 3 {
		t.Fatalf("output lines = %d, want 3", len(out))
	}
	if out[0] != "# Revenue" || out[2] != "After the chart." {
		t.Errorf("surrounding lines not preserved: %q", out)
	}
	if !strings.HasPrefix(out[1], `<div class="chart-placeholder" data-chart-id="chart_`) {
		t.Errorf("placeholder line = %q", out[1])
	}

	// The stored config must be reachable through the placeholder id.
	id := placeholderID(t, out[1])
	cfg, ok := store[id]
	if !ok {
		t.Fatalf("no store entry for placeholder id %q", id)
	}
	if cfg["type"] != "bar" {
		t.Errorf("stored type = %v, want bar", cfg["type"])
	}
	if cfg["title"] != "Revenue by Municipality" {
		t.Errorf("stored title = %v", cfg["title"])
	}
}

func TestExtractMultipleBlocksGetDistinctIDs(t *testing.T) {
	t.Parallel()

	lines := []string{
		"```chart",
		"type: bar",
		"```",
		"middle",
		"```chart",
		"type: line",
		"```",
	}

	store := NewStore()
	out := NewChartJS().Extract(lines, store)

	if len(store) != 2 {
		t.Fatalf("store size = %d, want 2", len(store))
	}

	var ids []string
	for _, line := range out {
		if strings.Contains(line, "chart-placeholder") {
			ids = append(ids, placeholderID(t, line))
		}
	}
	if len(ids) != 2 {
		t.Fatalf("placeholders = %d, want 2", len(ids))
	}
	if ids[0] == ids[1] {
		t.Errorf("duplicate chart id %q", ids[0])
	}
	if store[ids[0]]["type"] != "bar" {
		t.Errorf("first chart type = %v, want bar", store[ids[0]]["type"])
	}
	if store[ids[1]]["type"] != "line" {
		t.Errorf("second chart type = %v, want line", store[ids[1]]["type"])
	}
}

func TestExtractMalformedYAML(t *testing.T) {
	t.Parallel()

	lines := []string{
		"before",
		"```chart",
		"type: [unclosed",
		"```",
		"after",
	}

	store := NewStore()
	out := NewChartJS().Extract(lines, store)

	if len(store) != 0 {
		t.Errorf("store size = %d, want 0 for malformed block", len(store))
	}

	joined := strings.Join(out, "\n")
	if !strings.Contains(joined, `<div class="chart-error">Chart configuration error:`) {
		t.Errorf("missing error div in output:\n%s", joined)
	}
	if out[0] != "before" || out[len(out)-1] != "after" {
		t.Errorf("surrounding lines not preserved: %q", out)
	}
}

func TestExtractEmptyBlockVanishes(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "```chart", "```", "b"}

	store := NewStore()
	out := NewChartJS().Extract(lines, store)

	if len(store) != 0 {
		t.Errorf("store size = %d, want 0", len(store))
	}
	if len(out) != 2 || out[0] != "a" || out[1] != "b" {
		t.Errorf("output = %q, want [a b]", out)
	}
}

func TestExtractUnterminatedBlock(t *testing.T) {
	t.Parallel()

	lines := []string{
		"intro",
		"```chart",
		"type: pie",
		"title: Spending",
	}

	store := NewStore()
	out := NewChartJS().Extract(lines, store)

	// The open fence consumes the rest of the input as its body.
	if len(store) != 1 {
		t.Fatalf("store size = %d, want 1", len(store))
	}
	if len(out) != 2 {
		t.Fatalf("output lines = %d, want 2: %q", len(out), out)
	}
	for _, cfg := range store {
		if cfg["type"] != "pie" {
			t.Errorf("stored type = %v, want pie", cfg["type"])
		}
	}
}

func TestExtractIndentedFence(t *testing.T) {
	t.Parallel()

	lines := []string{"  ```chart", "  type: bar", "  ```"}

	store := NewStore()
	out := NewChartJS().Extract(lines, store)

	if len(store) != 1 {
		t.Fatalf("store size = %d, want 1", len(store))
	}
	if len(out) != 1 || !strings.Contains(out[0], "chart-placeholder") {
		t.Errorf("output = %q", out)
	}
}

func TestExtractIgnoresOtherFences(t *testing.T) {
	t.Parallel()

	lines := []string{
		"```go",
		`fmt.Println("hi")`,
		"```",
		"```chartjs",
		"not a chart fence",
		"```",
	}

	store := NewStore()
	out := NewChartJS().Extract(lines, store)

	if len(store) != 0 {
		t.Errorf("store size = %d, want 0", len(store))
	}
	if len(out) != len(lines) {
		t.Errorf("output lines = %d, want %d", len(out), len(lines))
	}
	for i := range lines {
		if out[i] != lines[i] {
			t.Errorf("line %d = %q, want %q", i, out[i], lines[i])
		}
	}
}

func TestExtractNoChartBlocks(t *testing.T) {
	t.Parallel()

	lines := []string{"# Title", "", "Just text."}

	store := NewStore()
	out := NewChartJS().Extract(lines, store)

	if len(store) != 0 {
		t.Errorf("store size = %d, want 0", len(store))
	}
	for i := range lines {
		if out[i] != lines[i] {
			t.Errorf("line %d modified: %q", i, out[i])
		}
	}
}

func TestNewChartIDFormat(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newChartID()
		if !strings.HasPrefix(id, "chart_") || len(id) != len("chart_")+8 {
			t.Fatalf("malformed id %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

// placeholderID extracts the chart id from a placeholder line.
func placeholderID(t *testing.T, line string) string {
	t.Helper()
	m := placeholderPattern.FindStringSubmatch(line)
	if m == nil {
		t.Fatalf("line is not a placeholder: %q", line)
	}
	return m[1]
}
