// Package registry deduplicates the people of a composition snapshot into one
// canonical table keyed by person id.
package registry

import "github.com/alexanderramin/casetrail/internal/domain"

// Origin records which composition units a person was found in.
type Origin int

const (
	OriginFamily Origin = iota + 1
	OriginHousehold
	OriginBoth
	OriginCaseHolder
)

func (o Origin) String() string {
	switch o {
	case OriginFamily:
		return "family"
	case OriginHousehold:
		return "household"
	case OriginBoth:
		return "both"
	case OriginCaseHolder:
		return "case_holder"
	default:
		return "unknown"
	}
}

// FamilyLabel is shown for family members whose role is not recorded.
const FamilyLabel = "Familiar"

// Record is the canonical view of one person in a case.
type Record struct {
	domain.Person
	Origin            Origin
	Role              string // role relative to the case holder; empty for household-only people
	IsFamily          bool
	CohabitationNotes string
}

// Label returns the relationship text attached to the person on timeline
// events: the role, else "Familiar" for family, else the cohabitation notes.
func (r Record) Label() string {
	if r.Role != "" {
		return r.Role
	}
	if r.IsFamily {
		return FamilyLabel
	}
	return r.CohabitationNotes
}

// Registry is a flat id → record table plus an insertion-order index.
// It is built fresh per call and never shared.
type Registry struct {
	records      map[string]*Record
	order        []string
	caseHolderID string
}

// Build inserts every family member, then merges in every household member,
// then synthesizes the case-holder pseudo-person unless a record with that id
// already exists. A nil snapshot yields a registry holding only the case
// holder; a nil case yields an empty registry.
func Build(c *domain.Case, snap *domain.CompositionSnapshot) *Registry {
	r := &Registry{records: make(map[string]*Record)}

	if snap != nil {
		for _, fm := range snap.FamilyUnit {
			if _, ok := r.records[fm.ID]; ok {
				continue
			}
			r.insert(&Record{
				Person:   fm.Person,
				Origin:   OriginFamily,
				Role:     fm.RelationshipToCaseHolder,
				IsFamily: true,
			})
		}
		for _, hm := range snap.HouseholdUnit {
			if existing, ok := r.records[hm.ID]; ok {
				merged := merge(*existing, hm)
				*existing = merged
				continue
			}
			r.insert(&Record{
				Person:            hm.Person,
				Origin:            OriginHousehold,
				IsFamily:          hm.IsFamilyMember,
				CohabitationNotes: hm.CohabitationNotes,
			})
		}
	}

	if c != nil {
		r.caseHolderID = c.CaseHolderID()
		if _, ok := r.records[r.caseHolderID]; !ok {
			r.records[r.caseHolderID] = &Record{
				Person:   domain.Person{ID: r.caseHolderID, FullName: c.ClientName},
				Origin:   OriginCaseHolder,
				Role:     domain.CaseHolderRole,
				IsFamily: true,
			}
		}
	}

	return r
}

func (r *Registry) insert(rec *Record) {
	r.records[rec.ID] = rec
	r.order = append(r.order, rec.ID)
}

// merge folds a household entry into an existing record. The existing role
// label is kept; optional fields are backfilled only where still empty.
func merge(existing Record, hm domain.HouseholdMember) Record {
	switch existing.Origin {
	case OriginFamily:
		existing.Origin = OriginBoth
	case OriginHousehold, OriginBoth, OriginCaseHolder:
		// origin unchanged
	}
	existing.FullName = domain.CoalesceStr(existing.FullName, hm.FullName)
	existing.DateOfBirth = domain.CoalesceStr(existing.DateOfBirth, hm.DateOfBirth)
	existing.Gender = domain.CoalesceGender(existing.Gender, hm.Gender)
	existing.CohabitationNotes = domain.CoalesceStr(existing.CohabitationNotes, hm.CohabitationNotes)
	if existing.Origin == OriginHousehold {
		existing.IsFamily = existing.IsFamily || hm.IsFamilyMember
	}
	return existing
}

// Get returns the record for id.
func (r *Registry) Get(id string) (Record, bool) {
	rec, ok := r.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Len returns the number of snapshot members (the synthesized case holder
// is not counted).
func (r *Registry) Len() int {
	return len(r.order)
}

// Members returns the snapshot members in insertion order: family unit
// first, then household-only people.
func (r *Registry) Members() []Record {
	out := make([]Record, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.records[id])
	}
	return out
}

// All returns the members followed by the synthesized case holder, if any.
func (r *Registry) All() []Record {
	out := r.Members()
	if holder, ok := r.records[r.caseHolderID]; ok && holder.Origin == OriginCaseHolder {
		out = append(out, *holder)
	}
	return out
}

// CaseHolder returns the case-holder record. ok is false for a registry
// built without a case.
func (r *Registry) CaseHolder() (Record, bool) {
	if r.caseHolderID == "" {
		return Record{}, false
	}
	return r.Get(r.caseHolderID)
}
