package routing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBatchMatchesIndividualQueries(t *testing.T) {
	g := sixNodeNetwork(t)
	engine := newTestEngine()

	queries := []Query{
		{Source: "A", Destination: "F", Filter: NewFilter()},
		{Source: "A", Destination: "F", Filter: NewFilter().WithTerrainCeiling(1)},
		{Source: "A", Destination: "F", Filter: NewFilter().WithMaxEdgeCost(400)},
		{Source: "B", Destination: "E", Filter: NewFilter()},
		{Source: "C", Destination: "C", Filter: NewFilter()},
		{Source: "", Destination: "F", Filter: NewFilter()},
	}

	batch, err := engine.FindMinCostPaths(context.Background(), g, queries)
	require.NoError(t, err)
	require.Len(t, batch, len(queries))

	for i, q := range queries {
		single, err := engine.FindMinCostPath(context.Background(), g, q.Source, q.Destination, q.Filter)
		require.NoError(t, err)

		require.Equal(t, single.GetStatus(), batch[i].GetStatus(), "query %d", i)
		require.InDelta(t, single.GetCost(), batch[i].GetCost(), 1e-9, "query %d", i)
		require.Equal(t, len(single.GetEdges()), len(batch[i].GetEdges()), "query %d", i)
	}
}

func TestBatchEmpty(t *testing.T) {
	g := sixNodeNetwork(t)
	engine := newTestEngine()

	results, err := engine.FindMinCostPaths(context.Background(), g, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestBatchCancelled(t *testing.T) {
	g := sixNodeNetwork(t)
	engine := newTestEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.FindMinCostPaths(ctx, g, []Query{
		{Source: "A", Destination: "F", Filter: NewFilter()},
	})
	require.ErrorIs(t, err, context.Canceled)
}
