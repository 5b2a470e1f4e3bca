package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Layouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-10", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"2024-01-10T09:30", time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)},
		{"2024-01-10T09:30:15", time.Date(2024, 1, 10, 9, 30, 15, 0, time.UTC)},
		{"2024-01-10T09:30:15Z", time.Date(2024, 1, 10, 9, 30, 15, 0, time.UTC)},
		{"2024-01-10T10:30:15+01:00", time.Date(2024, 1, 10, 9, 30, 15, 0, time.UTC)},
		{" 2024-01-10 ", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		require.True(t, ok, "should parse %q", tc.in)
		assert.True(t, tc.want.Equal(got), "%q: want %s got %s", tc.in, tc.want, got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "ayer", "2024-13-40", "10/01/2024"} {
		_, ok := ParseDate(in)
		assert.False(t, ok, "should reject %q", in)
	}
}

func TestParseGender(t *testing.T) {
	assert.Equal(t, GenderMale, ParseGender("Male"))
	assert.Equal(t, GenderFemale, ParseGender(" female "))
	assert.Equal(t, GenderOther, ParseGender("Other"))
	assert.Equal(t, GenderUnknown, ParseGender("Unknown"))
	assert.Equal(t, GenderUnknown, ParseGender("x"))
	assert.Equal(t, Gender(""), ParseGender(""))
}

func TestGender_OrUnknown(t *testing.T) {
	assert.Equal(t, GenderUnknown, Gender("").OrUnknown())
	assert.Equal(t, GenderFemale, GenderFemale.OrUnknown())
}

func TestLatestSnapshot_Empty(t *testing.T) {
	assert.Nil(t, LatestSnapshot(nil))
}

func TestLatestSnapshot_PicksGreatestDate(t *testing.T) {
	history := []CompositionSnapshot{
		{RecordID: "r1", EffectiveDate: "2023-05-01"},
		{RecordID: "r2", EffectiveDate: "2024-02-01"},
		{RecordID: "r3", EffectiveDate: "2023-12-31"},
	}
	got := LatestSnapshot(history)
	require.NotNil(t, got)
	assert.Equal(t, "r2", got.RecordID)
}

func TestLatestSnapshot_TieKeepsEarlierEntry(t *testing.T) {
	history := []CompositionSnapshot{
		{RecordID: "r1", EffectiveDate: "2024-02-01"},
		{RecordID: "r2", EffectiveDate: "2024-02-01"},
	}
	assert.Equal(t, "r1", LatestSnapshot(history).RecordID)
}

func TestLatestSnapshot_UnparsableDatesIgnored(t *testing.T) {
	history := []CompositionSnapshot{
		{RecordID: "bad", EffectiveDate: "pronto"},
		{RecordID: "good", EffectiveDate: "2020-01-01"},
	}
	assert.Equal(t, "good", LatestSnapshot(history).RecordID)
}

func TestLatestSnapshot_AllUnparsableFallsBackToFirst(t *testing.T) {
	history := []CompositionSnapshot{
		{RecordID: "a", EffectiveDate: ""},
		{RecordID: "b", EffectiveDate: "nunca"},
	}
	assert.Equal(t, "a", LatestSnapshot(history).RecordID)
}

func TestCaseHolderID(t *testing.T) {
	c := &Case{ID: "c42"}
	assert.Equal(t, "caseholder-c42", c.CaseHolderID())
}

func TestTask_IsCompleted(t *testing.T) {
	assert.True(t, (&Task{Status: TaskCompleted}).IsCompleted())
	assert.False(t, (&Task{Status: TaskPending}).IsCompleted())
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "  ", "b", "c"))
	assert.Equal(t, "", CoalesceStr("", ""))
}

func TestCoalesceGender(t *testing.T) {
	assert.Equal(t, GenderFemale, CoalesceGender("", GenderFemale, GenderMale))
	assert.Equal(t, Gender(""), CoalesceGender())
}
