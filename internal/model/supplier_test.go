package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupplier_Hash(t *testing.T) {
	a := Supplier{Name: "Jan de Vries", DateOfBirth: "1970-01-01", Country: "NL"}
	b := Supplier{Name: "Jan de Vries", DateOfBirth: "1970-01-01", Country: "NL"}
	c := Supplier{Name: "Jan de Vries", DateOfBirth: "1971-01-01", Country: "NL"}

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
	// RowID is positional, not identity; it must not affect the cache key.
	b.RowID = 99
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestDisposition_String(t *testing.T) {
	tests := []struct {
		disposition Disposition
		want        string
	}{
		{Clear, "CLEAR"},
		{FalsePositive, "FALSE_POSITIVE"},
		{NeedsReview, "NEEDS_REVIEW"},
		{TruePositive, "TRUE_POSITIVE"},
		{Disposition(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.disposition.String())
	}
}

func TestAttributePresence(t *testing.T) {
	s := Supplier{Country: "  "}
	assert.False(t, s.HasCountry())
	assert.False(t, s.HasDateOfBirth())
	assert.False(t, s.HasEntityType())

	h := ScreeningHit{Country: "SY", DateOfBirth: "1960-02-01", EntityType: EntityIndividual}
	assert.True(t, h.HasCountry())
	assert.True(t, h.HasDateOfBirth())
	assert.True(t, h.HasEntityType())
}
