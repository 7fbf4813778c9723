package engine

import "testing"

func TestVectorOps(t *testing.T) {
	tests := []struct {
		name string
		got  Vector
		want Vector
	}{
		{"add", Vector{1, 2}.Add(Vector{3, -4}), Vector{4, -2}},
		{"add zero", Vector{1, 2}.Add(Vector{}), Vector{1, 2}},
		{"flip x", Vector{3, 5}.FlipX(), Vector{-3, 5}},
		{"flip y", Vector{3, 5}.FlipY(), Vector{3, -5}},
		{"flip both", Vector{3, 5}.FlipX().FlipY(), Vector{-3, -5}},
		{"with y", Vector{3, 5}.WithY(9), Vector{3, 9}},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestVectorValueSemantics(t *testing.T) {
	v := Vector{1, 1}
	_ = v.FlipX()
	_ = v.WithY(7)
	if v != (Vector{1, 1}) {
		t.Errorf("operations mutated the receiver: %+v", v)
	}
}
