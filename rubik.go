// Package rubik models the logical state of a 3x3x3 Rubik's cube and the
// twelve quarter-turn moves that transform it.
//
// The cube is 26 cubies. Each cubie has a grid Position and six facelet
// colors; a move turns the nine cubies of one layer, cycling their colors
// and permuting their positions in one step, so colors always agree with
// geometry.
//
// # Quick Start
//
//	cube := rubik.New()
//
//	// Apply moves using predefined constants
//	cube.Apply(rubik.R, rubik.U, rubik.RPrime, rubik.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # History
//
// Every PerformMove is recorded. Undo reverts the last recorded move and
// drops it from the history. Scramble replaces the history with the
// scramble sequence; Reset clears it.
//
// # Observing Changes
//
// Renderers subscribe and re-read the whole cube after each change:
//
//	unsubscribe := cube.Subscribe(func(ch rubik.Change) {
//	    redraw(cube.Cubies())
//	})
//	defer unsubscribe()
//
// A Cube is single-threaded. A corrupted state (a cubie off the grid, a
// face without nine cubies) panics with an error wrapping ErrInvariant.
package rubik
