package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfaid/vetflow/internal/common"
	"github.com/surfaid/vetflow/internal/model"
	"github.com/surfaid/vetflow/internal/policy"
)

func TestClassifier_DutchSupplierForeignHit(t *testing.T) {
	// A perfect name match in the wrong country is noise.
	c := NewClassifier(policy.Default())

	supplier := model.Supplier{Name: "Jan de Vries", Country: "NL"}
	hits := []model.ScreeningHit{
		{MatchedName: "Jan de Vries", Country: "BE"},
	}

	dispositions, err := c.Classify(supplier, hits)
	require.NoError(t, err)
	require.Len(t, dispositions, 1)

	assert.Equal(t, model.FalsePositive, dispositions[0].Disposition)
	assert.Equal(t, policy.RuleContradiction, dispositions[0].Reason)
	assert.Greater(t, dispositions[0].Confidence, 0.92)

	verdict := Aggregate(supplier, dispositions)
	assert.Equal(t, model.FalsePositive, verdict.Worst)
	assert.False(t, verdict.Worst.RequiresAttention())
}

func TestClassifier_AliasMatchNoAttributes(t *testing.T) {
	// With no country on either side a contradiction is impossible, so an
	// exact name goes straight to true positive.
	c := NewClassifier(policy.Default())

	supplier := model.Supplier{Name: "Osama Ahmed"}
	hits := []model.ScreeningHit{
		{MatchedName: "Osama Ahmed", Aliases: []string{"O. Ahmed"}},
	}

	dispositions, err := c.Classify(supplier, hits)
	require.NoError(t, err)
	require.Len(t, dispositions, 1)
	assert.Equal(t, model.TruePositive, dispositions[0].Disposition)

	verdict := Aggregate(supplier, dispositions)
	assert.Equal(t, model.TruePositive, verdict.Worst)
	assert.True(t, verdict.Worst.RequiresAttention())
}

func TestClassifier_PreservesHitOrder(t *testing.T) {
	c := NewClassifier(policy.Default())

	supplier := model.Supplier{Name: "Jan de Vries", Country: "NL"}
	hits := []model.ScreeningHit{
		{MatchedName: "Jan de Vries", Country: "BE", ReferenceID: "a"},
		{MatchedName: "Totally Different Person", ReferenceID: "b"},
		{MatchedName: "Jan de Vries", ReferenceID: "c"},
	}

	dispositions, err := c.Classify(supplier, hits)
	require.NoError(t, err)
	require.Len(t, dispositions, 3)

	// Order preserved, nothing dropped, suppressed hits retained.
	assert.Equal(t, "a", dispositions[0].Hit.ReferenceID)
	assert.Equal(t, "b", dispositions[1].Hit.ReferenceID)
	assert.Equal(t, "c", dispositions[2].Hit.ReferenceID)
	assert.Equal(t, model.FalsePositive, dispositions[0].Disposition)
	assert.Equal(t, model.FalsePositive, dispositions[1].Disposition)
	assert.Equal(t, model.TruePositive, dispositions[2].Disposition)
}

func TestClassifier_InvalidHit(t *testing.T) {
	c := NewClassifier(policy.Default())

	supplier := model.Supplier{Name: "Jan de Vries"}
	hits := []model.ScreeningHit{
		{MatchedName: "Jan de Vries"},
		{MatchedName: "   "},
	}

	dispositions, err := c.Classify(supplier, hits)
	require.Error(t, err)
	assert.Nil(t, dispositions)

	var invalidErr *common.InvalidHitError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "Jan de Vries", invalidErr.Supplier)
	assert.Equal(t, 1, invalidErr.Index)
}

func TestClassifier_EmptyHitList(t *testing.T) {
	c := NewClassifier(policy.Default())

	dispositions, err := c.Classify(model.Supplier{Name: "Clean Corp"}, nil)
	require.NoError(t, err)
	assert.Empty(t, dispositions)

	verdict := Aggregate(model.Supplier{Name: "Clean Corp"}, dispositions)
	assert.Equal(t, model.Clear, verdict.Worst)
	assert.Equal(t, 0, verdict.HitCount)
}
