package scramble

import "sync"

// BufferSurface is an in-memory Surface that keeps the latest frame.
type BufferSurface struct {
	mu       sync.Mutex
	text     string
	frame    Frame
	frames   int
	markup   Markup
	onRender func(rendered string)
}

// NewBufferSurface creates a surface initially displaying text.
func NewBufferSurface(text string) *BufferSurface {
	return &BufferSurface{text: text, markup: PlainMarkup{}}
}

// WithMarkup sets the markup used by Rendered and OnRender.
func (s *BufferSurface) WithMarkup(m Markup) *BufferSurface {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markup = m
	return s
}

// OnRender registers fn to receive the marked-up content of every frame.
func (s *BufferSurface) OnRender(fn func(rendered string)) *BufferSurface {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRender = fn
	return s
}

// Text implements Surface. Noise glyphs on screen count as text.
func (s *BufferSurface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Render implements Surface.
func (s *BufferSurface) Render(frame Frame) {
	s.mu.Lock()
	s.frame = frame
	s.text = frame.String()
	s.frames++
	fn, m := s.onRender, s.markup
	s.mu.Unlock()

	if fn != nil {
		fn(Render(frame, m))
	}
}

// Frame returns the most recently rendered frame.
func (s *BufferSurface) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Frames returns how many frames have been rendered.
func (s *BufferSurface) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Rendered returns the latest frame with markup applied.
func (s *BufferSurface) Rendered() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Render(s.frame, s.markup)
}

var _ Surface = (*BufferSurface)(nil)
