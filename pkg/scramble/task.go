package scramble

import "strings"

// State is the phase of a cell on a given frame.
type State int

const (
	// Pending cells still show their source glyph.
	Pending State = iota
	// Scrambling cells show a noise glyph.
	Scrambling
	// Settled cells show their target glyph for the rest of the task.
	Settled
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Scrambling:
		return "scrambling"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Cell is the animation state of one character position.
type Cell struct {
	From  string // source glyph, "" past the end of the source text
	To    string // target glyph, "" past the end of the target text
	Start int    // first scrambling frame
	End   int    // first settled frame; End >= Start
	Noise string // current noise glyph, "" until the cell first scrambles
}

// State reports the cell's phase on frame f.
func (c Cell) State(f int) State {
	switch {
	case f >= c.End:
		return Settled
	case f >= c.Start:
		return Scrambling
	default:
		return Pending
	}
}

// Glyph is one rendered unit of a frame.
type Glyph struct {
	Text  string
	Noise bool
}

// Frame is the composed output of one tick, in cell order.
type Frame []Glyph

// String concatenates the frame's glyphs without markup.
func (f Frame) String() string {
	var b strings.Builder
	for _, g := range f {
		b.WriteString(g.Text)
	}
	return b.String()
}

// Settled returns the frame text with noise glyphs dropped.
func (f Frame) Settled() string {
	var b strings.Builder
	for _, g := range f {
		if !g.Noise {
			b.WriteString(g.Text)
		}
	}
	return b.String()
}

// NoiseCount returns how many glyphs in the frame are noise.
func (f Frame) NoiseCount() int {
	n := 0
	for _, g := range f {
		if g.Noise {
			n++
		}
	}
	return n
}

// Task is one source-to-target transition.
//
// A Task is not safe for concurrent use; Animator serializes access to it.
type Task struct {
	source string
	target string
	cells  []Cell
	frame  int
	opts   Options

	finished bool
}

// NewTask builds the cells for a transition from source to target. Positions
// are runes, so multi-byte characters scramble as a single cell.
func NewTask(source, target string, opts Options) *Task {
	opts = opts.normalized()
	from, to := []rune(source), []rune(target)
	n := max(len(from), len(to))

	cells := make([]Cell, n)
	for i := range cells {
		start := opts.intn(opts.MaxStart)
		cells[i] = Cell{
			From:  runeAt(from, i),
			To:    runeAt(to, i),
			Start: start,
			End:   start + opts.intn(opts.MaxDwell),
		}
	}

	return &Task{source: source, target: target, cells: cells, opts: opts}
}

func runeAt(rs []rune, i int) string {
	if i < len(rs) {
		return string(rs[i])
	}
	return ""
}

// Source returns the text the task animates from.
func (t *Task) Source() string { return t.source }

// Target returns the text the task animates to.
func (t *Task) Target() string { return t.target }

// Frame returns the index of the next frame Tick will render.
func (t *Task) Frame() int { return t.frame }

// Len returns the number of cells.
func (t *Task) Len() int { return len(t.cells) }

// Cells returns a copy of the current cell states.
func (t *Task) Cells() []Cell {
	out := make([]Cell, len(t.cells))
	copy(out, t.cells)
	return out
}

// LastFrame returns the frame on which the final cell settles.
func (t *Task) LastFrame() int {
	last := 0
	for _, c := range t.cells {
		last = max(last, c.End)
	}
	return last
}

// Done reports whether the task has rendered a frame with every cell settled.
func (t *Task) Done() bool { return t.finished }

// Tick renders the current frame and reports whether it was the last one.
// When it was not, the frame counter advances so the next call renders the
// following frame. Ticking a finished task re-renders the final frame.
func (t *Task) Tick() (Frame, bool) {
	f := t.frame
	out := make(Frame, 0, len(t.cells))
	settled := 0

	for i := range t.cells {
		c := &t.cells[i]
		switch c.State(f) {
		case Settled:
			settled++
			out = append(out, Glyph{Text: c.To})
		case Scrambling:
			if c.Noise == "" || t.opts.Rand.Float64() < t.opts.RerollChance {
				c.Noise = t.opts.noise()
			}
			out = append(out, Glyph{Text: c.Noise, Noise: true})
		default:
			out = append(out, Glyph{Text: c.From})
		}
	}

	if settled == len(t.cells) {
		t.finished = true
	} else {
		t.frame++
	}
	return out, t.finished
}
