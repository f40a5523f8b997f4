package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Endpoint is either a node ID (scalar) or a grid coordinate ([x, y]).
type Endpoint struct {
	ID   int
	X, Y int

	set  bool
	pair bool
}

// NodeID returns an Endpoint naming an xy node.
func NodeID(id int) Endpoint { return Endpoint{ID: id, set: true} }

// Point returns an Endpoint naming a grid cell.
func Point(x, y int) Endpoint { return Endpoint{X: x, Y: y, set: true, pair: true} }

// IsPoint reports whether e is a coordinate pair.
func (e Endpoint) IsPoint() bool { return e.pair }

// XY returns the coordinate pair.
func (e Endpoint) XY() [2]int { return [2]int{e.X, e.Y} }

// String renders e the way it is written in YAML.
func (e Endpoint) String() string {
	if e.pair {
		return fmt.Sprintf("[%d, %d]", e.X, e.Y)
	}

	return fmt.Sprint(e.ID)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Endpoint) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var id int
		if err := n.Decode(&id); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadEndpoint, n.Line, err)
		}
		*e = NodeID(id)

		return nil
	case yaml.SequenceNode:
		var xy []int
		if err := n.Decode(&xy); err != nil || len(xy) != 2 {
			return fmt.Errorf("%w: line %d: want [x, y]", ErrBadEndpoint, n.Line)
		}
		*e = Point(xy[0], xy[1])

		return nil
	}

	return fmt.Errorf("%w: line %d: want an id or [x, y]", ErrBadEndpoint, n.Line)
}

// MarshalYAML implements yaml.Marshaler.
func (e Endpoint) MarshalYAML() (any, error) {
	if e.pair {
		n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range e.XY() {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
		}

		return n, nil
	}

	return e.ID, nil
}
