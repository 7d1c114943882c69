package rubik

import "testing"

func TestTrackerReset(t *testing.T) {
	c := New()
	tr := NewTracker(c)
	defer tr.Close()

	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	c.PerformMove(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}
	if tr.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", tr.Moves())
	}

	c.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if tr.Moves() != 0 {
		t.Errorf("Moves() = %d after reset, want 0", tr.Moves())
	}
}

func TestTrackerSolvedCallback(t *testing.T) {
	c := New(WithSeed(8))
	tr := NewTracker(c)
	defer tr.Close()

	var solvedAfter []int
	tr.OnSolved(func(moves int) {
		solvedAfter = append(solvedAfter, moves)
	})

	c.Scramble(12)
	if len(solvedAfter) != 0 || tr.Moves() != 0 {
		t.Fatalf("scramble: callback calls %v, moves %d", solvedAfter, tr.Moves())
	}
	c.Reset()

	c.Apply(SexyMove...)
	if len(solvedAfter) != 0 {
		t.Fatalf("unsolved moves fired callback: %v", solvedAfter)
	}
	c.Apply(InvertMoves(SexyMove)...)
	if len(solvedAfter) != 1 || solvedAfter[0] != 8 {
		t.Errorf("callback calls = %v, want [8]", solvedAfter)
	}

	// Reset into solved is not a solve
	c.PerformMove(F)
	c.Reset()
	if len(solvedAfter) != 1 {
		t.Errorf("reset fired callback: %v", solvedAfter)
	}

	// Undo back into solved is
	c.PerformMove(D)
	c.Undo()
	if len(solvedAfter) != 2 || solvedAfter[1] != 2 {
		t.Errorf("callback calls = %v after undo", solvedAfter)
	}
}

func TestTrackerClose(t *testing.T) {
	c := New()
	tr := NewTracker(c)
	tr.Close()
	tr.Close()

	c.PerformMove(U)
	if tr.Moves() != 0 {
		t.Error("closed tracker should not count moves")
	}
}
