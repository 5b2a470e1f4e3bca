package timeline

import (
	"strings"

	"github.com/alexanderramin/casetrail/internal/registry"
	"github.com/alexanderramin/casetrail/internal/textfold"
)

type mentionTarget struct {
	person RelatedPerson
	folded string
}

// MentionMatcher finds known people whose full name occurs in free text.
type MentionMatcher struct {
	targets []mentionTarget
}

// NewMentionMatcher indexes people by folded full name. People with a blank
// name are skipped: an empty name would match every text.
func NewMentionMatcher(people []registry.Record) *MentionMatcher {
	m := &MentionMatcher{}
	for _, p := range people {
		folded := textfold.Fold(p.FullName)
		if folded == "" {
			continue
		}
		m.targets = append(m.targets, mentionTarget{
			person: RelatedPerson{ID: p.ID, FullName: p.FullName, Relationship: p.Label()},
			folded: folded,
		})
	}
	return m
}

// Find returns every person mentioned in any of texts, in registry order,
// each at most once.
func (m *MentionMatcher) Find(texts ...string) []RelatedPerson {
	folded := make([]string, 0, len(texts))
	for _, t := range texts {
		if f := textfold.Fold(t); f != "" {
			folded = append(folded, f)
		}
	}
	if len(folded) == 0 {
		return nil
	}

	var out []RelatedPerson
	seen := make(map[string]bool)
	for _, target := range m.targets {
		if seen[target.person.ID] {
			continue
		}
		for _, text := range folded {
			if strings.Contains(text, target.folded) {
				out = append(out, target.person)
				seen[target.person.ID] = true
				break
			}
		}
	}
	return out
}
