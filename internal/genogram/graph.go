// Package genogram assembles the family graph consumed by the family-tree
// layout: one node per person with embedded parent and spouse ids.
package genogram

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/casetrail/internal/domain"
)

// Node is one person in the genogram. Parents and Spouses hold node keys.
type Node struct {
	Key     string        `json:"key"`
	Name    string        `json:"name"`
	Gender  domain.Gender `json:"gender"`
	Spouses []string      `json:"spouses"`
	Parents []string      `json:"parents"`
}

// Link is an explicit edge for relation kinds the node arrays cannot express.
type Link struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Category string `json:"category,omitempty"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Empty returns a graph with no nodes and no links. Both slices are non-nil
// so the JSON form is {"nodes":[],"links":[]}.
func Empty() Graph {
	return Graph{Nodes: []Node{}, Links: []Link{}}
}

// Node returns the node with the given key.
func (g Graph) Node(key string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.Key == key {
			return n, true
		}
	}
	return Node{}, false
}

// Verify checks the structural invariants of g: unique keys, no
// self-relations, symmetric spouses and no references to missing nodes.
// It returns one error per violation found.
func Verify(g Graph) []error {
	var errs []error

	keys := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		keys[n.Key]++
	}
	for _, n := range g.Nodes {
		if keys[n.Key] > 1 {
			errs = append(errs, fmt.Errorf("node %q appears %d times", n.Key, keys[n.Key]))
			keys[n.Key] = 1
		}
	}

	for _, n := range g.Nodes {
		if slices.Contains(n.Parents, n.Key) {
			errs = append(errs, fmt.Errorf("node %q lists itself as parent", n.Key))
		}
		if slices.Contains(n.Spouses, n.Key) {
			errs = append(errs, fmt.Errorf("node %q lists itself as spouse", n.Key))
		}
		for _, p := range n.Parents {
			if _, ok := keys[p]; !ok {
				errs = append(errs, fmt.Errorf("node %q references missing parent %q", n.Key, p))
			}
		}
		for _, s := range n.Spouses {
			other, ok := g.Node(s)
			if !ok {
				errs = append(errs, fmt.Errorf("node %q references missing spouse %q", n.Key, s))
				continue
			}
			if !slices.Contains(other.Spouses, n.Key) {
				errs = append(errs, fmt.Errorf("spouse link %q -> %q is not symmetric", n.Key, s))
			}
		}
	}

	return errs
}
