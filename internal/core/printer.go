package core

import "io"

// DefaultWidth is the field width entries are right-aligned to.
const DefaultWidth = 20

// Printer displays the entries of a tree in post-order.
type Printer struct {
	w     io.Writer
	width int
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, width: DefaultWidth}
}

// WithWidth sets the field width. Non-positive widths disable alignment.
func (p *Printer) WithWidth(width int) *Printer {
	p.width = max(width, 0)
	return p
}

// Traverse displays every entry below n and then n itself. Nodes that are
// not entries are walked through but print nothing.
func (p *Printer) Traverse(n Node) {
	TraversePostOrder(n, p.Traverse, p.display)
}

func (p *Printer) display(n Node) {
	if e, ok := n.(Entry); ok {
		e.Display(p.w, p.width)
	}
}
