// Package demo walks through the value semantics of entry trees: copying a
// directory, growing the copy and the original independently, assigning one
// over the other and tearing both down.
package demo

import (
	"fmt"
	"io"

	"entrytree/internal/core"
)

// Run writes the walkthrough to w. Teardown traces go to tr, which may
// write to w as well to get them interleaved with the listings.
func Run(w io.Writer, tr core.Tracer, width int) {
	show := func(label string, d *core.Dir) {
		fmt.Fprintf(w, "%s:\n", label)
		core.NewPrinter(w).WithWidth(width).Traverse(d)
	}

	fmt.Fprintln(w, "START")
	dir1 := core.NewDir("Dir1")

	dir3 := dir1.Copy()
	dir3.SetName("Dir3")
	dir1.AddChild(core.NewFile("File1"))
	dir3.AddChild(core.NewFile("File4"))
	dir1.AddChild(core.NewFile("File5"))

	show("dir1", dir1)
	show("dir3", dir3)

	fmt.Fprintln(w, "assigning dir1 to dir3")
	dir3.Assign(dir1, tr)
	show("dir3", dir3)

	fmt.Fprintln(w, "releasing dir3")
	core.Release(dir3, tr)

	show("dir1 after dir3 is released", dir1)
	core.Release(dir1, tr)
}
