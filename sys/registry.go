// Package sys implements the SYS call dispatch layer: a registry mapping
// numeric operation codes to native handlers, invoked by the bytecode
// interpreter.
package sys

// Handler is the native callback signature for one operation code.
// Arguments are typically device identity (kind, role, index) or packed
// operation parameters; the result is operation-specific.
type Handler func(op uint16, arg0, arg1, arg2 int32) int32

// ErrNoHandler is the dispatch-layer sentinel returned by Invoke when no
// handler is registered. It is reserved: in-band handlers signal their own
// failures with 0 and must never return it.
const ErrNoHandler int32 = -1

// Registry maps operation codes to handlers. Each interpreter instance
// owns one Registry. Registration happens during startup; the dispatch
// path itself never mutates, so no locking is carried.
type Registry struct {
	handlers map[uint16]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[uint16]Handler)}
}

// Register installs h for op, replacing any existing handler.
// It reports false (and changes nothing) only when h is nil.
func (r *Registry) Register(op uint16, h Handler) bool {
	if h == nil {
		return false
	}
	if r.handlers == nil {
		r.handlers = make(map[uint16]Handler)
	}
	r.handlers[op] = h
	return true
}

// Unregister removes the handler for op. Absent is a no-op.
func (r *Registry) Unregister(op uint16) {
	delete(r.handlers, op)
}

// Lookup returns the handler for op, or nil.
func (r *Registry) Lookup(op uint16) Handler {
	return r.handlers[op]
}

// Invoke dispatches op to its handler, or returns ErrNoHandler.
func (r *Registry) Invoke(op uint16, arg0, arg1, arg2 int32) int32 {
	h := r.handlers[op]
	if h == nil {
		return ErrNoHandler
	}
	return h(op, arg0, arg1, arg2)
}

// Clear removes every registration; used for reinitialization and tests.
func (r *Registry) Clear() {
	clear(r.handlers)
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	return len(r.handlers)
}
