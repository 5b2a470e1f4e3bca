package domain

type Person struct {
	ID          string
	FullName    string
	DateOfBirth string // YYYY-MM-DD, optional
	Gender      Gender // optional
}

// FamilyMember is a person listed in a snapshot's family unit, with a
// free-text role relative to the case holder ("hijo/a", "madre", ...).
type FamilyMember struct {
	Person
	RelationshipToCaseHolder string
}

// HouseholdMember is a person living in the case holder's household.
// CohabitationNotes is only meaningful when IsFamilyMember is false.
type HouseholdMember struct {
	Person
	IsFamilyMember    bool
	CohabitationNotes string
}

// CompositionSnapshot is an immutable point-in-time record of who is family
// and who shares the household. Later snapshots supersede earlier ones.
type CompositionSnapshot struct {
	RecordID      string
	EffectiveDate string
	FamilyUnit    []FamilyMember
	HouseholdUnit []HouseholdMember
	Notes         string
}

// LatestSnapshot returns the snapshot with the greatest parseable
// EffectiveDate, the earlier entry winning ties. If no date parses the first
// entry is returned. Returns nil for an empty history.
func LatestSnapshot(history []CompositionSnapshot) *CompositionSnapshot {
	if len(history) == 0 {
		return nil
	}
	best := -1
	for i := range history {
		at, ok := ParseDate(history[i].EffectiveDate)
		if !ok {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		bestAt, _ := ParseDate(history[best].EffectiveDate)
		if at.After(bestAt) {
			best = i
		}
	}
	if best == -1 {
		best = 0
	}
	return &history[best]
}
