package core

import (
	"fmt"
	"io"
	"log/slog"
)

// Tracer observes node teardown.
type Tracer interface {
	Teardown(n Node, children int)
}

// TracerFunc adapts a function to a Tracer.
type TracerFunc func(n Node, children int)

func (f TracerFunc) Teardown(n Node, children int) {
	f(n, children)
}

// WriterTracer writes one line per torn down node.
type WriterTracer struct {
	W io.Writer
}

func (t WriterTracer) Teardown(_ Node, children int) {
	fmt.Fprintf(t.W, "Destroying node with %d children.\n", children)
}

// SlogTracer logs teardown at debug level.
type SlogTracer struct {
	Logger *slog.Logger
}

func (t SlogTracer) Teardown(n Node, children int) {
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{"children", children}
	if e, ok := n.(Entry); ok {
		attrs = append(attrs, "name", e.Name())
	}
	logger.Debug("node torn down", attrs...)
}

// Release drops one claim on n. When the last claim goes away, the children
// of n are released first and then tr is told about n. A node that was
// never attached anywhere is torn down by a single Release. Releasing an
// already torn down node does nothing. tr may be nil.
func Release(n Node, tr Tracer) {
	b := n.node()
	if b.released {
		return
	}
	if b.claims > 1 {
		b.claims--
		return
	}
	b.claims = 0
	b.released = true

	for _, child := range b.children {
		Release(child, tr)
	}
	if tr != nil {
		tr.Teardown(n, len(b.children))
	}
}

// Retain takes an extra claim on n, for callers that keep a node alive
// independently of the parents it is attached to.
func Retain(n Node) {
	n.node().claims++
}
