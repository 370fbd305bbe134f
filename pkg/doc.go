// Package pkg holds folio's importable libraries.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [scramble] - The text-scramble animation engine: tasks, the Animator,
//     frame schedulers, surfaces and markup.
//  2. [content] - Portfolio content decoded from TOML, with an embedded default.
//  3. [prefs] - Key-value preference stores (file, memory, Redis) and the theme
//     helpers built on them.
//  4. [errors] - Coded errors and input validation shared by every surface.
//  5. [observability] - Hooks for animation and preference events.
//  6. [buildinfo] - Version information injected at build time.
//
// # Architecture
//
// A surface asks an Animator for a new text; the Animator renders frames on
// the surface, one per scheduler tick, until every character settles:
//
//	SetText(target)
//	     ↓
//	[scramble] Task (per-character windows)
//	     ↓
//	Scheduler tick → Task.Tick → Surface.Render(frame)
//	     ↓
//	Markup (HTML spans, lipgloss styles, plain text)
//
// The terminal UI in internal/tui and the SSE server in internal/web are two
// such surfaces; cmd/folio wires them to the command line.
//
// # Quick Start
//
//	surface := scramble.NewBufferSurface("")
//	sched := scramble.NewTickerScheduler(ctx, 60)
//	defer sched.Stop()
//
//	done := scramble.New(surface, sched).SetText("Hello, world")
//	if err := done.Wait(ctx); err != nil {
//	    return err
//	}
//	fmt.Println(surface.Text())
package pkg
