// Package kinship infers parent and spouse relations from the free-text role
// labels captured at intake. The label vocabulary (policy) is kept apart from
// the inference (mechanism) so it can be extended or localized.
package kinship

import (
	"strings"

	"github.com/alexanderramin/casetrail/internal/textfold"
)

// Kind is the relation a role label expresses towards the case holder.
type Kind int

const (
	KindUnknown Kind = iota
	KindChild
	KindParent
	KindPartner
)

func (k Kind) String() string {
	switch k {
	case KindChild:
		return "child"
	case KindParent:
		return "parent"
	case KindPartner:
		return "partner"
	default:
		return "unknown"
	}
}

// MatchMode selects how a rule label is compared against a role.
type MatchMode int

const (
	MatchExact MatchMode = iota
	MatchSubstring
)

// Rule maps one role label to a relation kind.
type Rule struct {
	Label string
	Kind  Kind
	Match MatchMode
}

// Vocabulary is an ordered, immutable rule table.
type Vocabulary struct {
	rules []Rule
}

// NewVocabulary returns a vocabulary over the given rules. Labels are folded
// once here so classification only folds the role.
func NewVocabulary(rules ...Rule) *Vocabulary {
	v := &Vocabulary{rules: make([]Rule, 0, len(rules))}
	for _, r := range rules {
		r.Label = textfold.Fold(r.Label)
		if r.Label == "" || r.Kind == KindUnknown {
			continue
		}
		v.rules = append(v.rules, r)
	}
	return v
}

// DefaultVocabulary returns the Spanish intake vocabulary.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(
		Rule{Label: "hijo/a", Kind: KindChild},
		Rule{Label: "hijo", Kind: KindChild},
		Rule{Label: "hija", Kind: KindChild},
		Rule{Label: "padre", Kind: KindParent},
		Rule{Label: "madre", Kind: KindParent},
		Rule{Label: "progenitor", Kind: KindParent},
		Rule{Label: "cónyuge", Kind: KindPartner},
		Rule{Label: "pareja", Kind: KindPartner},
		Rule{Label: "esposo", Kind: KindPartner},
		Rule{Label: "esposa", Kind: KindPartner},
		Rule{Label: "esposo/a", Kind: KindPartner},
	)
}

// With returns a copy of v extended with extra rules.
func (v *Vocabulary) With(rules ...Rule) *Vocabulary {
	out := &Vocabulary{rules: make([]Rule, len(v.rules))}
	copy(out.rules, v.rules)
	out.rules = append(out.rules, NewVocabulary(rules...).rules...)
	return out
}

// WithLabels extends v with exact-match labels of one kind, as read from
// comma-separated configuration.
func (v *Vocabulary) WithLabels(kind Kind, labels []string) *Vocabulary {
	rules := make([]Rule, 0, len(labels))
	for _, l := range labels {
		if strings.TrimSpace(l) == "" {
			continue
		}
		rules = append(rules, Rule{Label: l, Kind: kind})
	}
	return v.With(rules...)
}

// Rules returns a copy of the rule table with folded labels.
func (v *Vocabulary) Rules() []Rule {
	out := make([]Rule, len(v.rules))
	copy(out, v.rules)
	return out
}

// Classify returns the kind of role. Exact rules are tried before substring
// rules; within each pass the first matching rule wins.
func (v *Vocabulary) Classify(role string) Kind {
	r := textfold.Fold(role)
	if r == "" {
		return KindUnknown
	}
	for _, rule := range v.rules {
		if rule.Match == MatchExact && rule.Label == r {
			return rule.Kind
		}
	}
	for _, rule := range v.rules {
		if rule.Match == MatchSubstring && strings.Contains(r, rule.Label) {
			return rule.Kind
		}
	}
	return KindUnknown
}
