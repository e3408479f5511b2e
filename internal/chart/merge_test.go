package chart

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    map[string]any
		overlay map[string]any
		want    map[string]any
	}{
		{
			name:    "empty overlay keeps base",
			base:    map[string]any{"a": 1, "b": 2},
			overlay: map[string]any{},
			want:    map[string]any{"a": 1, "b": 2},
		},
		{
			name:    "empty base takes overlay",
			base:    map[string]any{},
			overlay: map[string]any{"a": 1},
			want:    map[string]any{"a": 1},
		},
		{
			name:    "overlay wins on scalar collision",
			base:    map[string]any{"a": 1},
			overlay: map[string]any{"a": 2},
			want:    map[string]any{"a": 2},
		},
		{
			name: "nested maps merge recursively",
			base: map[string]any{
				"plugins": map[string]any{
					"title":  map[string]any{"display": true, "text": "Chart"},
					"legend": map[string]any{"position": "top"},
				},
			},
			overlay: map[string]any{
				"plugins": map[string]any{
					"title": map[string]any{"text": "Custom"},
				},
			},
			want: map[string]any{
				"plugins": map[string]any{
					"title":  map[string]any{"display": true, "text": "Custom"},
					"legend": map[string]any{"position": "top"},
				},
			},
		},
		{
			name:    "map replaced by scalar",
			base:    map[string]any{"a": map[string]any{"x": 1}},
			overlay: map[string]any{"a": "flat"},
			want:    map[string]any{"a": "flat"},
		},
		{
			name:    "scalar replaced by map",
			base:    map[string]any{"a": "flat"},
			overlay: map[string]any{"a": map[string]any{"x": 1}},
			want:    map[string]any{"a": map[string]any{"x": 1}},
		},
		{
			name:    "lists replaced not merged",
			base:    map[string]any{"labels": []any{"a", "b"}},
			overlay: map[string]any{"labels": []any{"c"}},
			want:    map[string]any{"labels": []any{"c"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Merge(tt.base, tt.overlay)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := map[string]any{
		"plugins": map[string]any{"title": map[string]any{"display": true}},
	}
	overlay := map[string]any{
		"plugins": map[string]any{"title": map[string]any{"display": false}},
	}

	_ = Merge(base, overlay)

	if base["plugins"].(map[string]any)["title"].(map[string]any)["display"] != true {
		t.Error("base mutated by merge")
	}
	if overlay["plugins"].(map[string]any)["title"].(map[string]any)["display"] != false {
		t.Error("overlay mutated by merge")
	}
}

func TestMergeIdempotent(t *testing.T) {
	t.Parallel()

	overlay := map[string]any{
		"scales": map[string]any{"y": map[string]any{"beginAtZero": false}},
	}

	once := Merge(defaultOptions("T"), overlay)
	twice := Merge(once, overlay)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second merge changed the result:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}
