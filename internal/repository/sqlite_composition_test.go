package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/alexanderramin/casetrail/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	c := testutil.NewTestCase("Ana")
	require.NoError(t, NewSQLiteCaseRepo(db).Create(ctx, c))
	repo := NewSQLiteCompositionRepo(db)

	snap := testutil.NewTestSnapshot("2024-02-01",
		testutil.WithFamilyMember("p1", "Rosa", "madre"),
		testutil.WithFamilyMember("p2", "Luis", "hijo/a"),
		testutil.WithHouseholdMember("p2", "Luis", true, ""),
		testutil.WithHouseholdMember("h1", "Pedro", false, "Inquilino"),
		testutil.WithSnapshotNotes("Nacimiento"),
	)
	snap.FamilyUnit[0].Gender = domain.GenderFemale
	snap.FamilyUnit[0].DateOfBirth = "1980-05-04"
	require.NoError(t, repo.Create(ctx, c.ID, &snap))

	got, err := repo.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, snap, got[0])
}

func TestCompositionRepo_KeepsInsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	c := testutil.NewTestCase("Ana")
	require.NoError(t, NewSQLiteCaseRepo(db).Create(ctx, c))
	repo := NewSQLiteCompositionRepo(db)

	late := testutil.NewTestSnapshot("2024-06-01", testutil.WithFamilyMember("p1", "Rosa", "madre"))
	early := testutil.NewTestSnapshot("2023-01-01")
	require.NoError(t, repo.Create(ctx, c.ID, &late))
	require.NoError(t, repo.Create(ctx, c.ID, &early))

	got, err := repo.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, late.RecordID, got[0].RecordID)
	assert.Equal(t, early.RecordID, got[1].RecordID)
	assert.Empty(t, got[1].FamilyUnit)
}

func TestCompositionRepo_EmptyHistory(t *testing.T) {
	db := testutil.NewTestDB(t)

	got, err := NewSQLiteCompositionRepo(db).ListByCase(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCompositionRepo_RequiresExistingCase(t *testing.T) {
	db := testutil.NewTestDB(t)

	snap := testutil.NewTestSnapshot("2024-01-01")
	assert.Error(t, NewSQLiteCompositionRepo(db).Create(context.Background(), "missing", &snap))
}
