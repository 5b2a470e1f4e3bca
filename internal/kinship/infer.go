package kinship

import (
	"slices"

	"github.com/alexanderramin/casetrail/internal/domain"
)

// Relations holds inferred edges keyed by person id. Slices are in family
// unit order and never contain duplicates or the key itself.
type Relations struct {
	Parents map[string][]string
	Spouses map[string][]string
}

// ParentsOf returns the inferred parents of id.
func (r Relations) ParentsOf(id string) []string {
	return r.Parents[id]
}

// SpousesOf returns the inferred spouses of id.
func (r Relations) SpousesOf(id string) []string {
	return r.Spouses[id]
}

// Inferencer derives parent and spouse edges from a family unit.
type Inferencer struct {
	vocab *Vocabulary
}

// NewInferencer returns an Inferencer using vocab, or the default vocabulary
// when vocab is nil.
func NewInferencer(vocab *Vocabulary) *Inferencer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Inferencer{vocab: vocab}
}

// Vocabulary returns the rule table in use.
func (in *Inferencer) Vocabulary() *Vocabulary {
	return in.vocab
}

// Infer links every child-labelled member to every parent-labelled member of
// the same unit, then marks two members as spouses iff they share a child.
// Partner labels are classified but not linked: they name no second party.
// Members with unknown roles simply get no edges.
func (in *Inferencer) Infer(members []domain.FamilyMember) Relations {
	rel := Relations{
		Parents: make(map[string][]string),
		Spouses: make(map[string][]string),
	}

	kinds := make([]Kind, len(members))
	for i, m := range members {
		kinds[i] = in.vocab.Classify(m.RelationshipToCaseHolder)
	}

	for i, child := range members {
		if kinds[i] != KindChild {
			continue
		}
		for j, parent := range members {
			if i == j || kinds[j] != KindParent || parent.ID == child.ID {
				continue
			}
			rel.Parents[child.ID] = appendUnique(rel.Parents[child.ID], parent.ID)
		}
	}

	ids := uniqueIDs(members)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			if !shareChild(rel.Parents, a, b) {
				continue
			}
			rel.Spouses[a] = appendUnique(rel.Spouses[a], b)
			rel.Spouses[b] = appendUnique(rel.Spouses[b], a)
		}
	}

	return rel
}

func shareChild(parents map[string][]string, a, b string) bool {
	for _, ps := range parents {
		if slices.Contains(ps, a) && slices.Contains(ps, b) {
			return true
		}
	}
	return false
}

func uniqueIDs(members []domain.FamilyMember) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = appendUnique(ids, m.ID)
	}
	return ids
}

func appendUnique(s []string, id string) []string {
	if slices.Contains(s, id) {
		return s
	}
	return append(s, id)
}
