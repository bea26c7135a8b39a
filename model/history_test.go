package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	u := newDeadUniverse(t, 6, 6)
	Stamp(u, Block, 2, 2)
	h := NewHistory(0)

	stagnant := false
	for range 4 {
		hash := u.Hash()
		stagnant = h.IsStagnant(hash)
		h.Record(hash)
		u.Tick()
	}
	if !stagnant {
		t.Fatalf("block was not reported stagnant")
	}
}

func TestHistoryDetectsBlinker(t *testing.T) {
	u := newDeadUniverse(t, 5, 5)
	Stamp(u, Blinker, 2, 1)
	h := NewHistory(0)

	for gen := range 5 {
		hash := u.Hash()
		stagnant := h.IsStagnant(hash)
		if gen < 3 && stagnant {
			t.Fatalf("generation %d reported stagnant before three states were recorded", gen)
		}
		if gen >= 3 && !stagnant {
			t.Fatalf("generation %d of a blinker not reported stagnant", gen)
		}
		h.Record(hash)
		u.Tick()
	}
}

func TestHistoryIgnoresGlider(t *testing.T) {
	u := newDeadUniverse(t, 12, 12)
	Stamp(u, Glider, 0, 0)
	h := NewHistory(0)
	for gen := range 10 {
		hash := u.Hash()
		if h.IsStagnant(hash) {
			t.Fatalf("glider reported stagnant at generation %d", gen)
		}
		h.Record(hash)
		u.Tick()
	}
}

func TestHistorySizeAndReset(t *testing.T) {
	h := NewHistory(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		h.Record(s)
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, expected 3", h.Len())
	}
	if !h.IsStagnant("c") || h.IsStagnant("a") {
		t.Fatalf("history kept the wrong entries")
	}
	h.Reset()
	if h.Len() != 0 || h.IsStagnant("e") {
		t.Fatalf("Reset did not clear history")
	}
}
