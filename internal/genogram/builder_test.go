package genogram

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/alexanderramin/casetrail/internal/kinship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fam(id, name, role string) domain.FamilyMember {
	return domain.FamilyMember{Person: domain.Person{ID: id, FullName: name}, RelationshipToCaseHolder: role}
}

func caseWith(snaps ...domain.CompositionSnapshot) *domain.Case {
	return &domain.Case{ID: "c1", ClientName: "Ana", CompositionHistory: snaps}
}

func TestBuild_NilCase(t *testing.T) {
	g := NewBuilder(nil).Build(nil)
	assert.Equal(t, Empty(), g)
}

func TestBuild_NoCompositionHistory(t *testing.T) {
	g := NewBuilder(nil).Build(caseWith())

	assert.NotNil(t, g.Nodes)
	assert.NotNil(t, g.Links)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Links)

	out, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes":[],"links":[]}`, string(out))
}

func TestBuild_MotherAndChild(t *testing.T) {
	g := NewBuilder(nil).Build(caseWith(domain.CompositionSnapshot{
		RecordID:      "r1",
		EffectiveDate: "2024-01-01",
		FamilyUnit:    []domain.FamilyMember{fam("p1", "Ana", "madre"), fam("p2", "Luis", "hijo/a")},
	}))

	require.Len(t, g.Nodes, 2)
	p1, ok := g.Node("p1")
	require.True(t, ok)
	p2, ok := g.Node("p2")
	require.True(t, ok)

	assert.Equal(t, []string{"p1"}, p2.Parents)
	assert.Equal(t, []string{}, p1.Parents)
	assert.Empty(t, p1.Spouses)
	assert.Equal(t, "Ana", p1.Name)
	assert.Equal(t, domain.GenderUnknown, p1.Gender)
}

func TestBuild_CoParentsAreSpouses(t *testing.T) {
	g := NewBuilder(nil).Build(caseWith(domain.CompositionSnapshot{
		RecordID:      "r1",
		EffectiveDate: "2024-01-01",
		FamilyUnit: []domain.FamilyMember{
			fam("p1", "Ana", "madre"),
			fam("p2", "Luis", "hijo"),
			fam("p3", "Pedro", "padre"),
		},
	}))

	p1, _ := g.Node("p1")
	p3, _ := g.Node("p3")
	assert.Contains(t, p1.Spouses, "p3")
	assert.Contains(t, p3.Spouses, "p1")
	assert.Empty(t, Verify(g))
}

func TestBuild_IncludesHouseholdOnlyPeopleOnce(t *testing.T) {
	hmShared := domain.HouseholdMember{Person: domain.Person{ID: "p1", FullName: "Ana", Gender: domain.GenderFemale}, IsFamilyMember: true}
	hmLodger := domain.HouseholdMember{Person: domain.Person{ID: "p9", FullName: "Iván", Gender: domain.GenderMale}, CohabitationNotes: "Inquilino"}

	g := NewBuilder(nil).Build(caseWith(domain.CompositionSnapshot{
		RecordID:      "r1",
		EffectiveDate: "2024-01-01",
		FamilyUnit:    []domain.FamilyMember{fam("p1", "Ana", "madre")},
		HouseholdUnit: []domain.HouseholdMember{hmShared, hmLodger},
	}))

	require.Len(t, g.Nodes, 2)
	p1, _ := g.Node("p1")
	assert.Equal(t, domain.GenderFemale, p1.Gender, "gender backfilled from household entry")
	p9, ok := g.Node("p9")
	require.True(t, ok)
	assert.Empty(t, p9.Parents)
	assert.Empty(t, p9.Spouses)
}

func TestBuild_UsesLatestSnapshotOnly(t *testing.T) {
	old := domain.CompositionSnapshot{
		RecordID:      "old",
		EffectiveDate: "2020-01-01",
		FamilyUnit:    []domain.FamilyMember{fam("x1", "Antiguo", "padre")},
	}
	current := domain.CompositionSnapshot{
		RecordID:      "new",
		EffectiveDate: "2024-06-01",
		FamilyUnit:    []domain.FamilyMember{fam("p1", "Ana", "madre")},
	}

	g := NewBuilder(nil).Build(caseWith(old, current))

	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "p1", g.Nodes[0].Key)
}

func TestBuild_CaseHolderIsNotANode(t *testing.T) {
	g := NewBuilder(nil).Build(caseWith(domain.CompositionSnapshot{
		RecordID:      "r1",
		EffectiveDate: "2024-01-01",
		FamilyUnit:    []domain.FamilyMember{fam("p1", "Ana", "madre")},
	}))

	_, ok := g.Node("caseholder-c1")
	assert.False(t, ok)
}

func TestBuild_UnrecognizedRoleKeptAsBareNode(t *testing.T) {
	g := NewBuilder(nil).Build(caseWith(domain.CompositionSnapshot{
		RecordID:      "r1",
		EffectiveDate: "2024-01-01",
		FamilyUnit:    []domain.FamilyMember{fam("p1", "Rosa", "bisabuela"), fam("p2", "Sin rol", "")},
	}))

	require.Len(t, g.Nodes, 2)
	for _, n := range g.Nodes {
		assert.Empty(t, n.Parents)
		assert.Empty(t, n.Spouses)
	}
}

func TestBuild_CustomVocabulary(t *testing.T) {
	vocab := kinship.DefaultVocabulary().WithLabels(kinship.KindParent, []string{"tutora"})
	g := NewBuilder(kinship.NewInferencer(vocab)).Build(caseWith(domain.CompositionSnapshot{
		RecordID:      "r1",
		EffectiveDate: "2024-01-01",
		FamilyUnit:    []domain.FamilyMember{fam("t1", "Elena", "Tutora"), fam("c1", "Leo", "hijo")},
	}))

	c1, _ := g.Node("c1")
	assert.Equal(t, []string{"t1"}, c1.Parents)
}

func TestBuild_ResultDoesNotAliasAcrossCalls(t *testing.T) {
	c := caseWith(domain.CompositionSnapshot{
		RecordID:      "r1",
		EffectiveDate: "2024-01-01",
		FamilyUnit:    []domain.FamilyMember{fam("p1", "Ana", "madre"), fam("p2", "Luis", "hijo")},
	})
	b := NewBuilder(nil)

	first := b.Build(c)
	first.Nodes[1].Parents[0] = "mutated"
	second := b.Build(c)

	p2, _ := second.Node("p2")
	assert.Equal(t, []string{"p1"}, p2.Parents)
}
