// Package surface binds the renderer to a live drawing surface and owns the
// re-render triggering policy.
package surface

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/litescript/skychart/internal/catalog"
	"github.com/litescript/skychart/internal/logging"
	"github.com/litescript/skychart/internal/projection"
	"github.com/litescript/skychart/internal/render"
)

// Binding owns the surface identity and the mutable current ViewState. Every
// setter performs an explicit equality check and triggers one full render
// pass on change. A pass observes one consistent snapshot of the view and
// catalog for its whole duration; updates arriving mid-pass are queued and
// applied after the in-flight pass completes.
type Binding struct {
	mu        sync.Mutex
	rendering bool
	pending   *projection.ViewState
	dirty     bool

	view    projection.ViewState
	style   render.Style
	backend render.Backend
	catalog *catalog.Collection

	limiter *rate.Limiter
	log     *logging.Logger
	frames  uint64
}

// Option configures a Binding.
type Option func(*Binding)

// WithLogger sets the binding's logger.
func WithLogger(l *logging.Logger) Option {
	return func(b *Binding) { b.log = l }
}

// WithStyle overrides the default drawing style.
func WithStyle(s render.Style) Option {
	return func(b *Binding) { b.style = s }
}

// WithRedrawLimit caps render passes per second. Hosts that hammer the
// setters get coalesced frames; a skipped frame is marked dirty and drawn by
// the next Redraw.
func WithRedrawLimit(perSecond float64) Option {
	return func(b *Binding) {
		b.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// New creates a binding over a backend and a catalog. The catalog is treated
// as immutable for the binding's lifetime.
func New(backend render.Backend, col *catalog.Collection, opts ...Option) *Binding {
	b := &Binding{
		backend: backend,
		catalog: col,
		style:   render.DefaultStyle(),
		log:     logging.Discard(),
		view: projection.ViewState{
			Opacity: 1,
			Visible: true,
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ViewState returns the current view parameters.
func (b *Binding) ViewState() projection.ViewState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view
}

// Frames returns the number of completed render passes.
func (b *Binding) Frames() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames
}

// SetViewState replaces the view parameters. Unchanged values are a no-op;
// a change triggers a render pass (or queues one if a pass is in flight).
func (b *Binding) SetViewState(v projection.ViewState) {
	b.mu.Lock()
	if v == b.view && !b.dirty {
		b.mu.Unlock()
		return
	}
	if b.rendering {
		pv := v
		b.pending = &pv
		b.mu.Unlock()
		return
	}
	b.view = v
	b.renderLocked()
}

// Resize updates the surface dimensions. The surface must match the view
// before the next render, so resizing is itself a render trigger.
func (b *Binding) Resize(widthPx, heightPx int) {
	v := b.ViewState()
	v.WidthPx = widthPx
	v.HeightPx = heightPx
	b.SetViewState(v)
}

// SetRotation updates the additive RA rotation in radians.
func (b *Binding) SetRotation(rad float64) {
	v := b.ViewState()
	v.Rotation = rad
	b.SetViewState(v)
}

// SetRefDec updates the reference declination in radians.
func (b *Binding) SetRefDec(rad float64) {
	v := b.ViewState()
	v.RefDec = rad
	b.SetViewState(v)
}

// SetOpacity updates the layer opacity.
func (b *Binding) SetOpacity(opacity float64) {
	v := b.ViewState()
	v.Opacity = opacity
	b.SetViewState(v)
}

// SetVisible toggles the layer on or off.
func (b *Binding) SetVisible(visible bool) {
	v := b.ViewState()
	v.Visible = visible
	b.SetViewState(v)
}

// SetStyle replaces the drawing style and triggers a render pass.
func (b *Binding) SetStyle(s render.Style) {
	b.mu.Lock()
	b.style = s
	if b.rendering {
		pv := b.view
		b.pending = &pv
		b.mu.Unlock()
		return
	}
	b.renderLocked()
}

// Redraw forces a render pass with the current parameters, bypassing the
// change check (but not the consistency guarantees).
func (b *Binding) Redraw() {
	b.mu.Lock()
	if b.rendering {
		pv := b.view
		b.pending = &pv
		b.mu.Unlock()
		return
	}
	b.renderLocked()
}

// renderLocked runs render passes until no pending update remains. The mutex
// is held on entry and released on return; it is dropped for the duration of
// each pass so the pass works from an immutable snapshot.
func (b *Binding) renderLocked() {
	for {
		if b.limiter != nil && !b.limiter.Allow() {
			b.dirty = true
			b.log.Debug("Redraw rate-limited after frame %d, marked dirty", b.frames)
			b.mu.Unlock()
			return
		}
		b.dirty = false
		b.rendering = true
		view := b.view
		style := b.passStyle(view)
		backend := b.backend
		col := b.catalog
		log := b.log
		b.mu.Unlock()

		if !view.Usable() {
			log.Warn("Viewport %dx%d is unusable, clearing only", view.WidthPx, view.HeightPx)
		}
		renderPass(backend, col, view, style)

		b.mu.Lock()
		b.rendering = false
		b.frames++
		b.log.Debug("Render pass %d complete (%dx%d, rot=%.3f)", b.frames, view.WidthPx, view.HeightPx, view.Rotation)
		if b.pending == nil {
			b.mu.Unlock()
			return
		}
		b.view = *b.pending
		b.pending = nil
	}
}

// passStyle folds the view's opacity and visibility into the base style for
// one pass.
func (b *Binding) passStyle(view projection.ViewState) render.Style {
	s := b.style
	s.Opacity *= view.Opacity
	s.Visible = s.Visible && view.Visible
	return s
}

// renderPass executes one full synchronous pass. A zero-sized viewport
// disables the pass: the surface is cleared and nothing is drawn.
func renderPass(backend render.Backend, col *catalog.Collection, view projection.ViewState, style render.Style) {
	if !view.Usable() {
		backend.Clear()
		return
	}
	frame := render.ProjectCollection(col, view)
	render.Render(backend, frame, style)
}
