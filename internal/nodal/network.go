// Package nodal solves circuits by modified nodal analysis. It exists as an
// independent check on the closed-form reductions in package circuit.
package nodal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeffreywbertke/DC/internal/circuit"
)

// NodeID indexes a circuit node. Ground is always node 0.
type NodeID int

// Ground is the reference node.
const Ground NodeID = 0

// positive is the node the source's + terminal connects to.
const positive NodeID = 1

// Branch is a resistor between two nodes.
type Branch struct {
	ID         string
	Label      string
	From, To   NodeID
	Resistance float64
}

// Network is a single-source resistor network.
type Network struct {
	Topology circuit.Topology
	Voltage  float64
	Nodes    int // non-ground nodes
	Branches []Branch
}

// Build maps c onto numbered nodes:
//
//	series:      1 -R1- 2 -R2- 3 -R3- 0
//	parallel:    1 -R1- 0, 1 -R2- 0
//	combination: 1 -R1- 2, 2 -R2- 0, 2 -R3- 0
func Build(c circuit.Circuit) (Network, error) {
	if err := c.Validate(); err != nil {
		return Network{}, fmt.Errorf("build network: %w", err)
	}

	n := Network{Topology: c.Topology, Voltage: c.Voltage}
	branch := func(comp circuit.Component, from, to NodeID) {
		n.Branches = append(n.Branches, Branch{
			ID:         comp.ID,
			Label:      comp.Label,
			From:       from,
			To:         to,
			Resistance: comp.Resistance,
		})
	}

	comps := c.Components
	switch c.Topology {
	case circuit.Series:
		node := positive
		for i, comp := range comps {
			next := node + 1
			if i == len(comps)-1 {
				next = Ground
			}
			branch(comp, node, next)
			node = next
		}
		n.Nodes = len(comps)
	case circuit.Parallel:
		for _, comp := range comps {
			branch(comp, positive, Ground)
		}
		n.Nodes = 1
	case circuit.Combination:
		branch(comps[0], positive, 2)
		branch(comps[1], 2, Ground)
		branch(comps[2], 2, Ground)
		n.Nodes = 2
	}
	return n, nil
}

// String renders n as a SPICE-style netlist.
func (n Network) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "* %s circuit\n", n.Topology)
	fmt.Fprintf(&b, "V1 %d %d %s\n", positive, Ground, formatValue(n.Voltage))
	for _, br := range n.Branches {
		fmt.Fprintf(&b, "%s %d %d %s\n", br.Label, br.From, br.To, formatValue(br.Resistance))
	}
	b.WriteString(".end\n")
	return b.String()
}

// Netlist renders the SPICE-style netlist of c.
func Netlist(c circuit.Circuit) (string, error) {
	n, err := Build(c)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
