package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ev(id string, at time.Time, cat Category) Event {
	return Event{ID: id, Date: at, Category: cat}
}

func day(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

func ids(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestConsolidate_OrdersAcrossBatches(t *testing.T) {
	a := []Event{ev("a3", day(3), CategoryCaseActions), ev("a1", day(1), CategoryCaseActions)}
	b := []Event{ev("b2", day(2), CategoryPersonal), ev("bx", time.Time{}, CategoryPersonal)}
	c := []Event{ev("cx", time.Time{}, CategoryFamilyUnit), ev("c1", day(1), CategoryFamilyUnit)}

	got := Consolidate(a, b, c)

	assert.Equal(t, []string{"a1", "c1", "b2", "a3", "bx", "cx"}, ids(got))
}

func TestConsolidate_Empty(t *testing.T) {
	got := Consolidate()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestConsolidate_DoesNotMutateInput(t *testing.T) {
	batch := []Event{ev("late", day(9), CategoryPersonal), ev("early", day(1), CategoryPersonal)}

	Consolidate(batch)

	assert.Equal(t, []string{"late", "early"}, ids(batch))
}

func TestFilterByCategory(t *testing.T) {
	events := []Event{
		ev("1", day(1), CategoryCaseActions),
		ev("2", day(2), CategoryPersonal),
		ev("3", day(3), CategoryDocumentation),
	}

	assert.Equal(t, events, FilterByCategory(events))
	assert.Equal(t, []string{"2"}, ids(FilterByCategory(events, CategoryPersonal)))
	assert.Equal(t, []string{"1", "3"}, ids(FilterByCategory(events, CategoryDocumentation, CategoryCaseActions)))
	assert.Empty(t, FilterByCategory(events, CategoryFamilyUnit))
}

func TestConsolidate_ZeroInstantIsDated(t *testing.T) {
	epoch := Event{ID: "epoch", RawDate: "0001-01-01T00:00:00Z", Category: CategoryCaseActions}
	undated := Event{ID: "undated", RawDate: "pronto", Category: CategoryCaseActions}
	require.True(t, epoch.HasDate())
	require.False(t, undated.HasDate())

	got := Consolidate([]Event{undated, ev("d1", day(1), CategoryCaseActions), epoch})

	assert.Equal(t, []string{"epoch", "d1", "undated"}, ids(got))
}
