package rubik

// Tracker watches a Cube and detects when it becomes solved.
type Tracker struct {
	cube           *Cube
	unsubscribe    func()
	wasSolved      bool
	moves          int // Moves and undos since the last scramble or reset
	solvedCallback func(moves int)
}

// NewTracker starts tracking cube.
func NewTracker(cube *Cube) *Tracker {
	t := &Tracker{
		cube:      cube,
		wasSolved: cube.IsSolved(),
	}
	t.unsubscribe = cube.Subscribe(t.onChange)
	return t
}

// OnSolved sets a callback that fires when a move or undo solves the cube.
// It receives the number of turns made since the last scramble or reset.
// The callback runs inside the cube's notification and must not mutate the cube.
func (t *Tracker) OnSolved(cb func(moves int)) {
	t.solvedCallback = cb
}

// Close stops tracking.
func (t *Tracker) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
}

func (t *Tracker) onChange(ch Change) {
	solved := t.cube.IsSolved()

	switch ch.Kind {
	case ChangeReset, ChangeScramble:
		t.moves = 0
	case ChangeMove, ChangeUndo:
		t.moves++
		// Only fire on the transition into solved
		if solved && !t.wasSolved && t.solvedCallback != nil {
			t.solvedCallback(t.moves)
		}
	}

	t.wasSolved = solved
}

// Moves returns the number of turns since the last scramble or reset.
func (t *Tracker) Moves() int {
	return t.moves
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.wasSolved
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
