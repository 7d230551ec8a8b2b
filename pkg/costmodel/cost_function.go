package costmodel

// EdgeAttributes is the slice of an edge the cost model reads. The
// engine's edge type satisfies it; tests may use lighter fakes.
type EdgeAttributes interface {
	GetDistance() float64
	GetMaterialRate() float64
	GetLaborRate() float64
	GetTerrain() int
}

type CostFunction interface {
	GetWeight(e EdgeAttributes) float64
}

// ConstructionCostFunction weights an edge by its build cost:
// distance multiplied by the sum of the per-unit material and labor
// rates. Pure and deterministic; attribute validation happens at edge
// construction, so the function is total here.
type ConstructionCostFunction struct{}

func NewConstructionCostFunction() *ConstructionCostFunction {
	return &ConstructionCostFunction{}
}

func (cf *ConstructionCostFunction) GetWeight(e EdgeAttributes) float64 {
	return e.GetDistance() * (e.GetMaterialRate() + e.GetLaborRate())
}
