package shows

import (
	"reflect"
	"testing"
)

func TestSeatMapConflicts(t *testing.T) {
	t.Parallel()

	m := SeatMap{}.Occupy([]string{"A1", "B2"})

	t.Run("reports every overlapping label", func(t *testing.T) {
		t.Parallel()

		got := m.Conflicts([]string{"A1", "A2", "B2"})
		want := []string{"A1", "B2"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Conflicts() = %v, want %v", got, want)
		}
	})

	t.Run("returns nothing for free labels", func(t *testing.T) {
		t.Parallel()

		if got := m.Conflicts([]string{"C1", "C2"}); len(got) != 0 {
			t.Errorf("Conflicts() = %v, want none", got)
		}
	})

	t.Run("nil map has no conflicts", func(t *testing.T) {
		t.Parallel()

		var nilMap SeatMap
		if got := nilMap.Conflicts([]string{"A1"}); len(got) != 0 {
			t.Errorf("Conflicts() = %v, want none", got)
		}
	})
}

func TestSeatMapOccupyAndRelease(t *testing.T) {
	t.Parallel()

	var m SeatMap
	m = m.Occupy([]string{"A1", "A2"})

	for _, seat := range []string{"A1", "A2"} {
		if !m.IsOccupied(seat) {
			t.Errorf("seat %s not occupied after Occupy", seat)
		}
	}

	m.Release([]string{"A1"})
	if m.IsOccupied("A1") {
		t.Error("seat A1 still occupied after Release")
	}
	if !m.IsOccupied("A2") {
		t.Error("seat A2 released by an unrelated Release")
	}

	// Releasing an unknown label is a no-op
	m.Release([]string{"Z9"})
	if !m.IsOccupied("A2") {
		t.Error("seat A2 lost by releasing an unknown label")
	}
}

func TestSeatMapRoundTrip(t *testing.T) {
	t.Parallel()

	original := SeatMap{}.Occupy([]string{"A1", "C3"})

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var restored SeatMap
	if err := restored.Scan(value.([]byte)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if !reflect.DeepEqual(restored, original) {
		t.Errorf("round trip = %v, want %v", restored, original)
	}
}
