package timeline

import "sort"

// Consolidate concatenates the batches in order and sorts the result by date
// ascending. The sort is stable: events sharing an instant keep their
// concatenation order, and undated events go last in their original order.
func Consolidate(batches ...[]Event) []Event {
	total := 0
	for _, b := range batches {
		total += len(b)
	}
	out := make([]Event, 0, total)
	for _, b := range batches {
		out = append(out, b...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return before(out[i], out[j])
	})
	return out
}

func before(a, b Event) bool {
	if a.HasDate() != b.HasDate() {
		return a.HasDate()
	}
	return a.Date.Before(b.Date)
}

// FilterByCategory keeps the events whose category is in cats. With no
// categories every event is kept.
func FilterByCategory(events []Event, cats ...Category) []Event {
	if len(cats) == 0 {
		return events
	}
	want := make(map[Category]bool, len(cats))
	for _, c := range cats {
		want[c] = true
	}
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if want[e.Category] {
			out = append(out, e)
		}
	}
	return out
}
