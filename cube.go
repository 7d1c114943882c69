package rubik

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Cube is the 3x3x3 puzzle: 26 cubies plus the history of moves applied
// since the last reset or scramble.
//
// A Cube is not safe for concurrent use. Callers that drive it from
// several goroutines, or from an animation queue, must serialize calls.
type Cube struct {
	id      uuid.UUID
	cubies  [NumCubies]Cubie
	history []MoveEvent

	rng    *rand.Rand
	now    func() time.Time
	logger *slog.Logger

	subscribers []subscriber
	nextSubID   int
	busy        bool
}

// ChangeKind says which operation produced a Change.
type ChangeKind int

const (
	ChangeMove ChangeKind = iota
	ChangeUndo
	ChangeReset
	ChangeScramble
	ChangeRestore
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeMove:
		return "move"
	case ChangeUndo:
		return "undo"
	case ChangeReset:
		return "reset"
	case ChangeScramble:
		return "scramble"
	case ChangeRestore:
		return "restore"
	default:
		return "unknown"
	}
}

// Change is delivered to subscribers once per completed mutation.
// It carries no state; subscribers read the cube again.
type Change struct {
	Kind ChangeKind
}

type subscriber struct {
	id int
	fn func(Change)
}

// layerTurn describes how one face's layer turns.
type layerTurn struct {
	rotate func(c *Cubie, clockwise bool)
	// mirrored is set when the color cycle's clockwise runs against the
	// face's clockwise, i.e. the table is defined looking from the other side.
	mirrored bool
	cw, ccw  func(p Position) Position
}

var layerTurns = [6]layerTurn{
	Top: {
		rotate:   (*Cubie).RotateY,
		mirrored: true,
		cw:       func(p Position) Position { return Position{X: 2 - p.Z, Y: p.Y, Z: p.X} },
		ccw:      func(p Position) Position { return Position{X: p.Z, Y: p.Y, Z: 2 - p.X} },
	},
	Bottom: {
		rotate: (*Cubie).RotateY,
		cw:     func(p Position) Position { return Position{X: p.Z, Y: p.Y, Z: 2 - p.X} },
		ccw:    func(p Position) Position { return Position{X: 2 - p.Z, Y: p.Y, Z: p.X} },
	},
	Front: {
		rotate: (*Cubie).RotateZ,
		cw:     func(p Position) Position { return Position{X: p.Y, Y: 2 - p.X, Z: p.Z} },
		ccw:    func(p Position) Position { return Position{X: 2 - p.Y, Y: p.X, Z: p.Z} },
	},
	Back: {
		rotate:   (*Cubie).RotateZ,
		mirrored: true,
		cw:       func(p Position) Position { return Position{X: 2 - p.Y, Y: p.X, Z: p.Z} },
		ccw:      func(p Position) Position { return Position{X: p.Y, Y: 2 - p.X, Z: p.Z} },
	},
	Right: {
		rotate: (*Cubie).RotateX,
		cw:     func(p Position) Position { return Position{X: p.X, Y: p.Z, Z: 2 - p.Y} },
		ccw:    func(p Position) Position { return Position{X: p.X, Y: 2 - p.Z, Z: p.Y} },
	},
	Left: {
		rotate:   (*Cubie).RotateX,
		mirrored: true,
		cw:       func(p Position) Position { return Position{X: p.X, Y: 2 - p.Z, Z: p.Y} },
		ccw:      func(p Position) Position { return Position{X: p.X, Y: p.Z, Z: 2 - p.Y} },
	},
}

// New creates a solved cube with standard orientation:
// white on top, green in front.
func New(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{
		id:     uuid.New(),
		rng:    cfg.rng,
		now:    cfg.now,
		logger: cfg.logger,
	}
	c.build()
	return c
}

// build lays out the 26 cubies in their solved slots.
// IDs follow x, then y, then z order, skipping the core.
func (c *Cube) build() {
	id := 0
	for x := 0; x <= 2; x++ {
		for y := 0; y <= 2; y++ {
			for z := 0; z <= 2; z++ {
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				c.cubies[id] = newCubie(id, Position{X: x, Y: y, Z: z})
				id++
			}
		}
	}
}

// ID returns the identifier of this cube instance.
func (c *Cube) ID() uuid.UUID {
	return c.id
}

// Subscribe registers fn to be called once after every completed mutation.
// Callbacks run synchronously and may read the cube, but must not mutate it.
// The returned function removes the subscription.
func (c *Cube) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := c.nextSubID
	c.nextSubID++
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range c.subscribers {
			if s.id == id {
				c.subscribers = append(c.subscribers[:i:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

// mutate runs fn as one indivisible change, then notifies subscribers.
func (c *Cube) mutate(kind ChangeKind, fn func()) {
	if c.busy {
		invariant("%s started while another mutation is in flight", kind)
	}
	c.busy = true
	defer func() { c.busy = false }()

	fn()

	subs := append([]subscriber(nil), c.subscribers...)
	for _, s := range subs {
		s.fn(Change{Kind: kind})
	}
}

// Reset rebuilds the solved cube and clears the history.
func (c *Cube) Reset() {
	c.mutate(ChangeReset, func() {
		c.build()
		c.history = nil
	})
	c.logger.Debug("cube reset", "cube", c.id)
}

// PerformMove turns one layer and records the move in the history.
func (c *Cube) PerformMove(m MoveType) {
	if !m.Valid() {
		invariant("unknown move %d", int(m))
	}
	c.mutate(ChangeMove, func() {
		c.turn(m)
		c.record(m)
	})
	c.logger.Debug("move", "cube", c.id, "move", m.Notation(), "history", len(c.history))
}

// Apply performs moves in order.
func (c *Cube) Apply(moves ...MoveType) {
	for _, m := range moves {
		c.PerformMove(m)
	}
}

// ApplyNotation parses a move sequence and performs it.
// Nothing is applied if the notation is invalid.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// Undo reverts the most recent move and removes it from the history.
// It returns the undone move, or false when the history is empty.
func (c *Cube) Undo() (MoveType, bool) {
	if len(c.history) == 0 {
		return 0, false
	}

	last := c.history[len(c.history)-1].Move
	c.mutate(ChangeUndo, func() {
		c.history = c.history[:len(c.history)-1]
		c.turn(last.Inverse())
	})
	c.logger.Debug("undo", "cube", c.id, "move", last.Notation(), "history", len(c.history))
	return last, true
}

// Scramble clears the history and performs n random moves. Each move is
// drawn uniformly from the 12, but never equals the previous move or its
// inverse. Scramble(0) does nothing. The generated sequence is returned.
func (c *Cube) Scramble(n int) []MoveType {
	if n <= 0 {
		return nil
	}

	seq := make([]MoveType, 0, n)
	c.mutate(ChangeScramble, func() {
		c.history = nil
		for len(seq) < n {
			m := AllMoves[c.rng.IntN(numMoves)]
			if len(seq) > 0 {
				prev := seq[len(seq)-1]
				if m == prev || m == prev.Inverse() {
					continue
				}
			}
			c.turn(m)
			c.record(m)
			seq = append(seq, m)
		}
	})
	c.logger.Debug("scramble", "cube", c.id, "moves", FormatMoves(seq))
	return seq
}

// turn rotates the layer under m's face: colors first, then positions.
func (c *Cube) turn(m MoveType) {
	face := m.Face()
	lt := layerTurns[face]
	clockwise := m.Clockwise()
	colorClockwise := clockwise != lt.mirrored

	layer := c.layer(face)
	for _, i := range layer {
		lt.rotate(&c.cubies[i], colorClockwise)
	}
	for _, i := range layer {
		p := c.cubies[i].Position
		if clockwise {
			p = lt.cw(p)
		} else {
			p = lt.ccw(p)
		}
		c.cubies[i].Position = p.mustValid()
	}
}

func (c *Cube) record(m MoveType) {
	c.history = append(c.history, MoveEvent{Move: m, Time: c.now()})
}

// layer returns the indices of the 9 cubies on face f.
func (c *Cube) layer(f Face) [9]int {
	var idx [9]int
	n := 0
	for i := range c.cubies {
		if !c.cubies[i].Position.OnFace(f) {
			continue
		}
		if n == len(idx) {
			invariant("face %s has more than 9 cubies", f)
		}
		idx[n] = i
		n++
	}
	if n != len(idx) {
		invariant("face %s has %d cubies, want 9", f, n)
	}
	return idx
}

// IsSolved reports whether every face shows a single color.
// Which color ends up on which face does not matter.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		layer := c.layer(face)
		want := c.cubies[layer[0]].Colors[face]
		for _, i := range layer[1:] {
			if c.cubies[i].Colors[face] != want {
				return false
			}
		}
	}
	return true
}

// Cubies returns a copy of all 26 cubies, indexed by ID.
func (c *Cube) Cubies() []Cubie {
	out := make([]Cubie, NumCubies)
	copy(out, c.cubies[:])
	return out
}

// Cubie returns the cubie with the given ID.
func (c *Cube) Cubie(id int) (Cubie, bool) {
	if id < 0 || id >= NumCubies {
		return Cubie{}, false
	}
	return c.cubies[id], true
}

// CubiesOnFace returns copies of the 9 cubies currently on face f.
func (c *Cube) CubiesOnFace(f Face) []Cubie {
	layer := c.layer(f)
	out := make([]Cubie, 0, len(layer))
	for _, i := range layer {
		out = append(out, c.cubies[i])
	}
	return out
}

// History returns a copy of the recorded moves, oldest first.
func (c *Cube) History() []MoveEvent {
	out := make([]MoveEvent, len(c.history))
	copy(out, c.history)
	return out
}

// Moves returns the recorded move types, oldest first.
func (c *Cube) Moves() []MoveType {
	out := make([]MoveType, len(c.history))
	for i, e := range c.history {
		out[i] = e.Move
	}
	return out
}

// Snapshot is an independent copy of every cubie. It does not include history.
type Snapshot struct {
	cubies [NumCubies]Cubie
}

// Cubies returns the cubies held by the snapshot.
func (s Snapshot) Cubies() []Cubie {
	out := make([]Cubie, NumCubies)
	copy(out, s.cubies[:])
	return out
}

// Snapshot captures the current positions and colors.
func (c *Cube) Snapshot() Snapshot {
	return Snapshot{cubies: c.cubies}
}

// Restore replaces positions and colors with those in s. History is kept.
// A snapshot that was not produced by Snapshot is rejected.
func (c *Cube) Restore(s Snapshot) error {
	if err := s.validate(); err != nil {
		return err
	}
	c.mutate(ChangeRestore, func() {
		c.cubies = s.cubies
	})
	c.logger.Debug("restore", "cube", c.id)
	return nil
}

func (s Snapshot) validate() error {
	seen := make(map[Position]bool, NumCubies)
	for i, cb := range s.cubies {
		if cb.ID != i {
			return fmt.Errorf("%w: cubie %d has ID %d", ErrInvalidSnapshot, i, cb.ID)
		}
		if !cb.Position.Valid() {
			return fmt.Errorf("%w: cubie %d at %v", ErrInvalidSnapshot, i, cb.Position)
		}
		if seen[cb.Position] {
			return fmt.Errorf("%w: two cubies at %v", ErrInvalidSnapshot, cb.Position)
		}
		seen[cb.Position] = true
	}
	return nil
}

// String returns the facelet net of the cube.
func (c *Cube) String() string {
	return c.Net().String()
}
