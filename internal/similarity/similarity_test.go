package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 1.0,
		},
		{
			name: "left empty",
			a:    "",
			b:    "acme",
			want: 0.0,
		},
		{
			name: "right empty",
			a:    "acme",
			b:    "",
			want: 0.0,
		},
		{
			name: "identical",
			a:    "jan de vries",
			b:    "jan de vries",
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.a, tt.b), 1e-9)
		})
	}
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"jan de vries", "vries jan de"},
		{"osama ahmed", "o ahmed"},
		{"acme", "acme industries"},
		{"", "something"},
		{"wholly", "unrelated name"},
	}
	for _, p := range pairs {
		assert.InDelta(t, Score(p[0], p[1]), Score(p[1], p[0]), 1e-9,
			"score must be symmetric for %q / %q", p[0], p[1])
	}
}

func TestScore_Ordering(t *testing.T) {
	// Closer names must score higher than clearly different ones.
	near := Score("jan de vries", "jan de vreis")
	far := Score("jan de vries", "xiu wong")
	assert.Greater(t, near, 0.65)
	assert.Less(t, far, 0.4)
	assert.Greater(t, near, far)
}

func TestScore_TokenReorder(t *testing.T) {
	// Reordered tokens keep a high score; watchlists often flip name order.
	score := Score("de vries jan", "jan de vries")
	assert.Greater(t, score, 0.6)
}

func TestScore_Bounds(t *testing.T) {
	inputs := []string{"", "a", "jan de vries", "acme industries bv", "completely different"}
	for _, a := range inputs {
		for _, b := range inputs {
			s := Score(a, b)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}
