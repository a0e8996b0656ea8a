package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfaid/vetflow/internal/model"
	"github.com/surfaid/vetflow/internal/policy"
)

// mockScreeningClient returns canned hits per supplier name.
type mockScreeningClient struct {
	hits  map[string][]model.ScreeningHit
	fails map[string]error
	calls atomic.Int64
}

func (m *mockScreeningClient) Screen(_ context.Context, supplier model.Supplier) ([]model.ScreeningHit, error) {
	m.calls.Add(1)
	if err, ok := m.fails[supplier.Name]; ok {
		return nil, err
	}
	return m.hits[supplier.Name], nil
}

func TestEngine_Run(t *testing.T) {
	client := &mockScreeningClient{
		hits: map[string][]model.ScreeningHit{
			"Jan de Vries": {
				{MatchedName: "Jan de Vries", Country: "BE"},
			},
			"Osama Ahmed": {
				{MatchedName: "Osama Ahmed", Aliases: []string{"O. Ahmed"}},
			},
			"Clean Corp": nil,
		},
		fails: map[string]error{
			"Flaky Inc": errors.New("connection reset"),
		},
	}

	suppliers := []model.Supplier{
		{Name: "Jan de Vries", Country: "NL"},
		{Name: "Osama Ahmed"},
		{Name: "Clean Corp"},
		{Name: "Flaky Inc"},
	}

	eng := NewWithConfig(client, NewClassifier(policy.Default()), Config{Workers: 3})

	var notified atomic.Int64
	eng.OnResult = func(model.SupplierResult) { notified.Add(1) }

	results, summary, err := eng.Run(context.Background(), suppliers)
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Results come back in input order regardless of worker scheduling.
	assert.Equal(t, "Jan de Vries", results[0].Supplier.Name)
	assert.Equal(t, "Osama Ahmed", results[1].Supplier.Name)
	assert.Equal(t, "Clean Corp", results[2].Supplier.Name)
	assert.Equal(t, "Flaky Inc", results[3].Supplier.Name)

	assert.Equal(t, model.FalsePositive, results[0].Verdict.Worst)
	assert.Equal(t, model.TruePositive, results[1].Verdict.Worst)
	assert.Equal(t, model.Clear, results[2].Verdict.Worst)
	assert.Error(t, results[3].Err)

	// One supplier failing never aborts the rest of the batch.
	assert.Equal(t, 1, summary.Errored)
	assert.Equal(t, 4, summary.Suppliers)
	assert.Equal(t, 1, summary.Clear)
	assert.Equal(t, 1, summary.FalsePositives)
	assert.Equal(t, 1, summary.TruePositives)
	assert.Equal(t, 1, summary.SuppressedHits)

	assert.Equal(t, int64(4), notified.Load())
	assert.Equal(t, int64(4), client.calls.Load())
}

func TestEngine_Run_InvalidHitIsolatedToOneSupplier(t *testing.T) {
	client := &mockScreeningClient{
		hits: map[string][]model.ScreeningHit{
			"Broken": {{MatchedName: ""}},
			"Fine":   {{MatchedName: "Fine", Country: "NL"}},
		},
	}

	suppliers := []model.Supplier{
		{Name: "Broken"},
		{Name: "Fine", Country: "NL"},
	}

	eng := New(client, NewClassifier(policy.Default()))
	results, summary, err := eng.Run(context.Background(), suppliers)
	require.NoError(t, err)

	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, model.TruePositive, results[1].Verdict.Worst)
	assert.Equal(t, 1, summary.Errored)
	assert.Equal(t, 1, summary.TruePositives)
}

func TestEngine_Run_EmptyBatch(t *testing.T) {
	eng := New(&mockScreeningClient{}, NewClassifier(policy.Default()))

	results, summary, err := eng.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, summary.Suppliers)
}
