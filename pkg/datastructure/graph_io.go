package datastructure

import (
	"encoding/json"
	"os"

	"github.com/aryaseta/costroute/pkg/util"
)

type nodeRecord struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type edgeRecord struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	Distance     float64 `json:"distance"`
	Terrain      int     `json:"terrain"`
	MaterialRate float64 `json:"material_rate"`
	LaborRate    float64 `json:"labor_rate"`
}

type graphFile struct {
	Nodes []nodeRecord `json:"nodes"`
	Edges []edgeRecord `json:"edges"`
}

// ReadGraph loads a network snapshot from a JSON file. All edge and
// reference validation runs through NewGraph, so a malformed file
// fails here, before any query sees the snapshot.
func ReadGraph(path string) (*Graph, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "read network file %s", path)
	}

	var gf graphFile
	if err := json.Unmarshal(buf, &gf); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "parse network file %s", path)
	}

	nodes := make([]Node, 0, len(gf.Nodes))
	for _, nr := range gf.Nodes {
		nodes = append(nodes, NewNode(nr.Id, nr.Name))
	}

	edges := make([]Edge, 0, len(gf.Edges))
	for _, er := range gf.Edges {
		e, err := NewEdge(er.From, er.To, er.Distance, er.Terrain, er.MaterialRate, er.LaborRate)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return NewGraph(nodes, edges)
}
