package costmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeEdge struct {
	distance     float64
	materialRate float64
	laborRate    float64
	terrain      int
}

func (f fakeEdge) GetDistance() float64     { return f.distance }
func (f fakeEdge) GetMaterialRate() float64 { return f.materialRate }
func (f fakeEdge) GetLaborRate() float64    { return f.laborRate }
func (f fakeEdge) GetTerrain() int          { return f.terrain }

func TestConstructionCostFunction(t *testing.T) {
	cf := NewConstructionCostFunction()

	testCases := []struct {
		name     string
		edge     fakeEdge
		expected float64
	}{
		{
			name:     "riverside segment",
			edge:     fakeEdge{distance: 5, materialRate: 70, laborRate: 40, terrain: 1},
			expected: 550,
		},
		{
			name:     "quarry segment",
			edge:     fakeEdge{distance: 7, materialRate: 65, laborRate: 35, terrain: 2},
			expected: 700,
		},
		{
			name:     "free labor",
			edge:     fakeEdge{distance: 10, materialRate: 12.5, laborRate: 0, terrain: 1},
			expected: 125,
		},
		{
			name:     "zero rates",
			edge:     fakeEdge{distance: 3, materialRate: 0, laborRate: 0, terrain: 1},
			expected: 0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := cf.GetWeight(tt.edge)
			require.InDelta(t, tt.expected, got, 1e-9)
			require.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestConstructionCostFunctionDeterministic(t *testing.T) {
	cf := NewConstructionCostFunction()
	e := fakeEdge{distance: 4, materialRate: 55, laborRate: 25, terrain: 3}

	first := cf.GetWeight(e)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, cf.GetWeight(e))
	}
}
