// Package scenario loads search scenarios from YAML and runs them.
//
// A scenario names a graph, the endpoints and an optional beam. Two kinds
// exist:
//
//   - xy:   explicit nodes with coordinates and directed edges (xygraph).
//   - grid: a weighted terrain grid (gridgraph).
//
// Example:
//
//	name: thirteen
//	kind: xy
//	cost: product
//	start: 0
//	target: 12
//	nodes:
//	  - {id: 0, x: 0, y: 5, edges: [1, 2]}
//	  ...
//
// Grid endpoints are written as [x, y] pairs.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wayfind/xygraph"
)

// Sentinel errors returned by Parse and Validate.
var (
	ErrUnknownKind   = errors.New("scenario: unknown kind")
	ErrMissingNodes  = errors.New("scenario: no nodes or grid")
	ErrUnknownNode   = errors.New("scenario: unknown node")
	ErrDuplicateNode = errors.New("scenario: duplicate node")
	ErrUnknownCost   = errors.New("scenario: unknown cost model")
	ErrBadEndpoint   = errors.New("scenario: bad endpoint")
	ErrBadConn       = errors.New("scenario: connectivity must be 4 or 8")
	ErrBadBeam       = errors.New("scenario: beam max_frontier must be >= 0")
)

// Kind selects the graph model.
type Kind string

const (
	KindXY   Kind = "xy"
	KindGrid Kind = "grid"
)

// Cost models for KindXY.
const (
	CostProduct   = "product"
	CostManhattan = "manhattan"
)

// Scenario is one search problem.
type Scenario struct {
	Name   string   `yaml:"name"`
	Kind   Kind     `yaml:"kind"`
	Start  Endpoint `yaml:"start"`
	Target Endpoint `yaml:"target"`
	Beam   Beam     `yaml:"beam,omitempty"`

	// KindXY
	Cost  string     `yaml:"cost,omitempty"`
	Nodes []NodeSpec `yaml:"nodes,omitempty"`

	// KindGrid
	Grid          [][]int `yaml:"grid,omitempty"`
	Conn          int     `yaml:"conn,omitempty"`
	LandThreshold int     `yaml:"land_threshold,omitempty"`
}

// NodeSpec is one xy node and its outgoing edges.
type NodeSpec struct {
	ID    int   `yaml:"id"`
	X     int   `yaml:"x"`
	Y     int   `yaml:"y"`
	Edges []int `yaml:"edges,omitempty"`
}

// Beam configures the beam filter. Zero values disable each bound;
// a negative MaxFrontier is rejected by Validate.
type Beam struct {
	MaxFrontier  int  `yaml:"max_frontier,omitempty"`
	ScoreCeiling *int `yaml:"score_ceiling,omitempty"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	sc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes one YAML document from r and validates it. Unknown fields
// are rejected.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Validate checks the scenario for structural errors and fills defaults
// (cost "product", conn 4, land_threshold 1).
func (sc *Scenario) Validate() error {
	var err error
	switch sc.Kind {
	case KindXY:
		err = sc.validateXY()
	case KindGrid:
		err = sc.validateGrid()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, sc.Kind)
	}
	if err != nil {
		return err
	}
	if sc.Beam.MaxFrontier < 0 {
		return fmt.Errorf("%w: got %d", ErrBadBeam, sc.Beam.MaxFrontier)
	}

	return nil
}

func (sc *Scenario) validateXY() error {
	switch sc.Cost {
	case "":
		sc.Cost = CostProduct
	case CostProduct, CostManhattan:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCost, sc.Cost)
	}
	if len(sc.Nodes) == 0 {
		return ErrMissingNodes
	}
	ids := make(map[int]bool, len(sc.Nodes))
	for _, n := range sc.Nodes {
		if ids[n.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
		}
		ids[n.ID] = true
	}
	for _, n := range sc.Nodes {
		for _, to := range n.Edges {
			if !ids[to] {
				return fmt.Errorf("%w: edge %d→%d", ErrUnknownNode, n.ID, to)
			}
		}
	}
	for _, ep := range []struct {
		name string
		e    Endpoint
	}{{"start", sc.Start}, {"target", sc.Target}} {
		if !ep.e.set || ep.e.pair {
			return fmt.Errorf("%w: %s must be a node id", ErrBadEndpoint, ep.name)
		}
		if !ids[ep.e.ID] {
			return fmt.Errorf("%w: %s %d", ErrUnknownNode, ep.name, ep.e.ID)
		}
	}

	return nil
}

func (sc *Scenario) validateGrid() error {
	if len(sc.Grid) == 0 {
		return ErrMissingNodes
	}
	switch sc.Conn {
	case 0:
		sc.Conn = 4
	case 4, 8:
	default:
		return fmt.Errorf("%w: got %d", ErrBadConn, sc.Conn)
	}
	if sc.LandThreshold == 0 {
		sc.LandThreshold = 1
	}
	if !sc.Start.pair || !sc.Target.pair {
		return fmt.Errorf("%w: grid endpoints must be [x, y] pairs", ErrBadEndpoint)
	}

	return nil
}

// Thirteen returns the built-in 13-node fixture as an xy scenario from
// node 0 to node 12 under the product cost.
func Thirteen() *Scenario {
	sc := &Scenario{
		Name:   "thirteen",
		Kind:   KindXY,
		Cost:   CostProduct,
		Start:  NodeID(0),
		Target: NodeID(12),
	}
	for _, n := range xygraph.Thirteen().Nodes() {
		sc.Nodes = append(sc.Nodes, NodeSpec{ID: n.ID(), X: n.X(), Y: n.Y(), Edges: n.Adjacent()})
	}

	return sc
}
