// Package chip defines the data model the chain routers operate on: the
// pins of a die, the directed edges connecting them, and the chain
// graph that owns the free-pin pool and the edge set.
//
// A graph is built once from externally parsed records (see pkg/def)
// and then handed to exactly one router (pkg/router), which has
// exclusive access for the duration of its run.
package chip

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/geom"
)

// Pin is a named point on the routing grid. Identity is by name, which
// is unique across drivers and free pins alike.
type Pin struct {
	Name string
	At   geom.Point
}

// NewPin creates a pin at the given grid coordinates.
func NewPin(name string, x, y int) *Pin {
	return &Pin{Name: name, At: geom.Point{X: x, Y: y}}
}

func (p *Pin) String() string {
	return fmt.Sprintf("%s (%d, %d)", p.Name, p.At.X, p.At.Y)
}

// Edge is a directed connection between two pins. Direction is
// bookkeeping only; the routed net it represents is undirected.
// Chain is the index of the chain the edge belongs to.
type Edge struct {
	From  *Pin
	To    *Pin
	Dist  int
	Chain int
}

func (e *Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.From.Name, e.To.Name)
}
