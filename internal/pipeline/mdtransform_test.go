package pipeline

import (
	"context"
	"testing"
)

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "unix line endings unchanged",
			input: "line1\nline2\n",
			want:  "line1\nline2\n",
		},
		{
			name:  "windows line endings normalized",
			input: "line1\r\nline2\r\n",
			want:  "line1\nline2\n",
		},
		{
			name:  "old mac line endings normalized",
			input: "line1\rline2",
			want:  "line1\nline2",
		},
		{
			name:  "excess blank lines compressed",
			input: "a\n\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "double blank line kept",
			input: "a\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	p := &CommonMarkPreprocessor{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := p.PreprocessMarkdown(context.Background(), tt.input)
			if got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocessMarkdownCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &CommonMarkPreprocessor{}
	input := "a\r\nb"
	if got := p.PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("cancelled context should return input unchanged, got %q", got)
	}
}
