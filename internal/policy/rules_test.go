package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfaid/vetflow/internal/model"
	"github.com/surfaid/vetflow/internal/normalize"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	p := Default()
	require.NoError(t, p.Validate())
	return NewEngine(p, normalize.New(nil).Normalize)
}

func TestEngine_Evaluate(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name       string
		supplier   model.Supplier
		hit        model.ScreeningHit
		nameScore  float64
		want       model.Disposition
		wantReason string
	}{
		{
			name:       "strong match with no attributes on either side",
			supplier:   model.Supplier{Name: "Osama Ahmed"},
			hit:        model.ScreeningHit{MatchedName: "Osama Ahmed"},
			nameScore:  0.99,
			want:       model.TruePositive,
			wantReason: RuleStrongMatch,
		},
		{
			name:       "country contradiction overrides near-exact name",
			supplier:   model.Supplier{Name: "Jan de Vries", Country: "NL"},
			hit:        model.ScreeningHit{MatchedName: "Jan de Vries", Country: "US"},
			nameScore:  0.99,
			want:       model.FalsePositive,
			wantReason: RuleContradiction,
		},
		{
			name:       "absent supplier country is not a contradiction",
			supplier:   model.Supplier{Name: "Jan de Vries"},
			hit:        model.ScreeningHit{MatchedName: "Jan de Vries", Country: "US"},
			nameScore:  0.99,
			want:       model.TruePositive,
			wantReason: RuleStrongMatch,
		},
		{
			name:       "absent hit country is not a contradiction",
			supplier:   model.Supplier{Name: "Jan de Vries", Country: "NL"},
			hit:        model.ScreeningHit{MatchedName: "Jan de Vries"},
			nameScore:  0.99,
			want:       model.TruePositive,
			wantReason: RuleStrongMatch,
		},
		{
			name:       "date of birth contradiction",
			supplier:   model.Supplier{Name: "Jan de Vries", DateOfBirth: "1970-01-01"},
			hit:        model.ScreeningHit{MatchedName: "Jan de Vries", DateOfBirth: "1985-06-23"},
			nameScore:  0.99,
			want:       model.FalsePositive,
			wantReason: RuleContradiction,
		},
		{
			name:       "entity type contradiction",
			supplier:   model.Supplier{Name: "Acme", EntityType: model.EntityOrganization},
			hit:        model.ScreeningHit{MatchedName: "Acme", EntityType: model.EntityIndividual},
			nameScore:  0.99,
			want:       model.FalsePositive,
			wantReason: RuleContradiction,
		},
		{
			name:       "weak name fires regardless of matching attributes",
			supplier:   model.Supplier{Name: "Jan de Vries", Country: "NL"},
			hit:        model.ScreeningHit{MatchedName: "Pieter Janssen", Country: "NL"},
			nameScore:  0.40,
			want:       model.FalsePositive,
			wantReason: RuleWeakName,
		},
		{
			name:      "alias match escalates a mid-range score",
			supplier:  model.Supplier{Name: "Osama Ahmed"},
			hit:       model.ScreeningHit{MatchedName: "Usama Ahmad", Aliases: []string{"Osama Ahmed"}},
			nameScore:  0.80,
			want:       model.TruePositive,
			wantReason: RuleAliasMatch,
		},
		{
			name:       "matched name normalizing to supplier name escalates",
			supplier:   model.Supplier{Name: "Acme B.V."},
			hit:        model.ScreeningHit{MatchedName: "ACME BV"},
			nameScore:  0.85,
			want:       model.TruePositive,
			wantReason: RuleAliasMatch,
		},
		{
			name:       "mid-range score with no alias needs review",
			supplier:   model.Supplier{Name: "Jan de Vries", Country: "NL"},
			hit:        model.ScreeningHit{MatchedName: "Jan Vries", Country: "NL"},
			nameScore:  0.75,
			want:       model.NeedsReview,
			wantReason: RuleNeedsReview,
		},
		{
			name:       "contradiction beats alias",
			supplier:   model.Supplier{Name: "Osama Ahmed", Country: "ID"},
			hit:        model.ScreeningHit{MatchedName: "Usama Ahmad", Country: "SY", Aliases: []string{"Osama Ahmed"}},
			nameScore:  0.80,
			want:       model.FalsePositive,
			wantReason: RuleContradiction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := e.Evaluate(tt.supplier, tt.hit, tt.nameScore)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestEngine_ContradictionTogglesOff(t *testing.T) {
	p := Default()
	p.MatchCountry = false
	e := NewEngine(p, normalize.New(nil).Normalize)

	supplier := model.Supplier{Name: "Jan de Vries", Country: "NL"}
	hit := model.ScreeningHit{MatchedName: "Jan de Vries", Country: "US"}

	got, reason := e.Evaluate(supplier, hit, 0.99)
	assert.Equal(t, model.TruePositive, got)
	assert.Equal(t, RuleStrongMatch, reason)
}

func TestEngine_CountryComparisonIgnoresCase(t *testing.T) {
	e := newTestEngine(t)

	supplier := model.Supplier{Name: "Jan de Vries", Country: "Netherlands"}
	hit := model.ScreeningHit{MatchedName: "Jan de Vries", Country: "NETHERLANDS"}

	got, _ := e.Evaluate(supplier, hit, 0.99)
	assert.Equal(t, model.TruePositive, got)
}

func TestEngine_Rules_Order(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, []string{
		RuleStrongMatch,
		RuleContradiction,
		RuleWeakName,
		RuleAliasMatch,
		RuleNeedsReview,
	}, e.Rules())
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Policy)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Policy) {},
		},
		{
			name:    "strong above one",
			mutate:  func(p *Policy) { p.StrongThreshold = 1.5 },
			wantErr: true,
		},
		{
			name:    "weak above strong",
			mutate:  func(p *Policy) { p.WeakThreshold = 0.95 },
			wantErr: true,
		},
		{
			name:    "negative weak",
			mutate:  func(p *Policy) { p.WeakThreshold = -0.1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
