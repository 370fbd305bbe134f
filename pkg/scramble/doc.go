// Package scramble animates text from one string to another by scrambling
// each character position through random noise glyphs before it settles.
//
// # Overview
//
// A transition is modelled as a [Task]: one [Cell] per character position,
// each with its own reveal window. On every frame a cell is in exactly one of
// three states:
//
//   - pending: the frame is before the cell's start; it shows the old glyph
//   - scrambling: the frame is inside the window; it shows a noise glyph
//   - settled: the frame is at or past the window's end; it shows the new glyph
//
// Settled cells stay settled. Because every window has End >= Start and the
// frame counter only moves forward, every task terminates; with the default
// options the last cell settles by frame index 78, so a
// task renders at most 79 frames.
//
// # Pure ticking
//
// [Task.Tick] renders the current frame and advances the counter. It needs no
// display or scheduler, which makes it the building block for hosts with their
// own event loop (for example a bubbletea model that schedules frames with
// tea.Tick):
//
//	task := scramble.NewTask("", "Hello", scramble.DefaultOptions())
//	for {
//	    frame, done := task.Tick()
//	    fmt.Println(frame)
//	    if done {
//	        break
//	    }
//	}
//
// # Animator
//
// [Animator] binds a task to a [Surface] and a frame [Scheduler], mirroring a
// browser's requestAnimationFrame loop:
//
//	a := scramble.New(surface, scramble.NewTickerScheduler(ctx, 60))
//	done := a.SetText("Hello, I'm Cynthia Motaung")
//	if err := done.Wait(ctx); err != nil {
//	    return err
//	}
//
// Calling [Animator.SetText] again while a transition is running abandons the
// running task: its pending frame is cancelled and its [Completion] never
// resolves. Each call carries a generation number, so a frame callback that
// was already in flight for an older task is a no-op.
//
// # Markup
//
// A [Frame] is a sequence of [Glyph] values. [Render] turns it into markup via
// a [Markup] implementation: [HTML] wraps noise glyphs in a styled span, and
// [Styled] applies a lipgloss style for terminals.
package scramble
