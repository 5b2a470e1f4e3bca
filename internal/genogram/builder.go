package genogram

import (
	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/alexanderramin/casetrail/internal/kinship"
	"github.com/alexanderramin/casetrail/internal/registry"
)

// Builder turns a case's current composition into a Graph.
type Builder struct {
	inferencer *kinship.Inferencer
}

// NewBuilder returns a Builder. A nil inferencer uses the default vocabulary.
func NewBuilder(inferencer *kinship.Inferencer) *Builder {
	if inferencer == nil {
		inferencer = kinship.NewInferencer(nil)
	}
	return &Builder{inferencer: inferencer}
}

// Build returns the genogram of the most recent composition snapshot of c.
// Older snapshots are not blended in. A nil case or a case without
// composition history yields Empty(). Links is always empty: the layout
// derives every edge from the node arrays.
func (b *Builder) Build(c *domain.Case) Graph {
	if c == nil || len(c.CompositionHistory) == 0 {
		return Empty()
	}
	snap := c.CurrentComposition()
	if snap == nil {
		return Empty()
	}

	reg := registry.Build(c, snap)
	rel := b.inferencer.Infer(snap.FamilyUnit)

	g := Graph{Nodes: make([]Node, 0, reg.Len()), Links: []Link{}}
	for _, rec := range reg.Members() {
		g.Nodes = append(g.Nodes, Node{
			Key:     rec.ID,
			Name:    rec.FullName,
			Gender:  rec.Gender.OrUnknown(),
			Spouses: cloneIDs(rel.SpousesOf(rec.ID)),
			Parents: cloneIDs(rel.ParentsOf(rec.ID)),
		})
	}
	return g
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
