package charts

import "sync"

// Handle is a live chart bound to one canvas. Disposing it makes the chart
// data unreachable; the registry disposes the previous handle for a canvas
// before installing a replacement, so a canvas never has two live charts.
type Handle struct {
	canvas string
	kind   Kind
	series *Series

	mu       sync.Mutex
	disposed bool
}

// Canvas returns the canvas identifier the handle is bound to.
func (h *Handle) Canvas() string { return h.canvas }

// Spec returns the chart kind and series, or false after disposal.
func (h *Handle) Spec() (Kind, *Series, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return "", nil, false
	}
	return h.kind, h.series, true
}

// Dispose releases the handle. Safe to call more than once.
func (h *Handle) Dispose() {
	h.mu.Lock()
	h.disposed = true
	h.mu.Unlock()
}

// Disposed reports whether the handle has been released.
func (h *Handle) Disposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}

// Registry tracks the live chart per canvas identifier.
type Registry struct {
	mu     sync.Mutex
	charts map[string]*Handle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{charts: make(map[string]*Handle)}
}

// Acquire installs a new chart on a canvas, disposing any prior chart for
// that canvas first.
func (r *Registry) Acquire(canvas string, kind Kind, series *Series) *Handle {
	h := &Handle{canvas: canvas, kind: kind, series: series}

	r.mu.Lock()
	if prev, ok := r.charts[canvas]; ok {
		prev.Dispose()
	}
	r.charts[canvas] = h
	r.mu.Unlock()
	return h
}

// Get returns the live handle for a canvas.
func (r *Registry) Get(canvas string) (*Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.charts[canvas]
	return h, ok
}

// Release disposes and removes the chart on a canvas, if any.
func (r *Registry) Release(canvas string) {
	r.mu.Lock()
	if h, ok := r.charts[canvas]; ok {
		h.Dispose()
		delete(r.charts, canvas)
	}
	r.mu.Unlock()
}

// Live counts registered, undisposed charts.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, h := range r.charts {
		if !h.Disposed() {
			n++
		}
	}
	return n
}
