package core

import (
	"fmt"
	"io"
)

// Entry is a named node that knows how to display itself.
type Entry interface {
	Node
	Path() string
	Name() string
	SetName(name string)
	Display(w io.Writer, width int)
}

type entry struct {
	TreeNode
	path string
	name string
}

func (e *entry) Path() string {
	return e.path
}

func (e *entry) Name() string {
	return e.name
}

func (e *entry) SetName(name string) {
	e.name = name
}

func (e *entry) copy() entry {
	c := entry{path: e.path, name: e.name}
	c.copyChildren(&e.TreeNode)
	return c
}

func (e *entry) swap(other *entry) {
	e.TreeNode.swap(&other.TreeNode)
	e.path, other.path = other.path, e.path
	e.name, other.name = other.name, e.name
}

// File is a leaf entry.
type File struct {
	entry
}

// NewFile creates a file entry that exists only in memory.
func NewFile(name string) *File {
	return &File{entry: entry{name: name}}
}

func (f *File) Clone() Node {
	return f.Copy()
}

// Copy returns an independent deep copy of f.
func (f *File) Copy() *File {
	return &File{entry: f.copy()}
}

// Assign makes f a deep copy of src. The state f held before is released
// through tr after the new state is in place.
func (f *File) Assign(src *File, tr Tracer) {
	tmp := src.Copy()
	f.swap(&tmp.entry)
	Release(tmp, tr)
}

// Display writes the name tagged with F, right-aligned to width.
func (f *File) Display(w io.Writer, width int) {
	fmt.Fprintf(w, "%*s\n", width, f.name+"\tF")
}

// PrintTraverse prints f and everything below it in post-order.
func (f *File) PrintTraverse(w io.Writer) {
	NewPrinter(w).Traverse(f)
}

// Dir is a composite entry.
type Dir struct {
	entry
}

// NewDir creates an empty directory entry that exists only in memory.
func NewDir(name string) *Dir {
	return &Dir{entry: entry{name: name}}
}

func (d *Dir) Clone() Node {
	return d.Copy()
}

// Copy returns an independent deep copy of d and its subtree.
func (d *Dir) Copy() *Dir {
	return &Dir{entry: d.copy()}
}

// Assign makes d a deep copy of src. The subtree d held before is released
// through tr after the new one is in place.
func (d *Dir) Assign(src *Dir, tr Tracer) {
	tmp := src.Copy()
	d.swap(&tmp.entry)
	Release(tmp, tr)
}

// Display writes the name tagged with |, right-aligned to width, followed by
// the current number of children.
func (d *Dir) Display(w io.Writer, width int) {
	fmt.Fprintf(w, "%*s %d\n", width, d.name+"\t|", d.Len())
}

// PrintTraverse prints the subtree rooted at d in post-order.
func (d *Dir) PrintTraverse(w io.Writer) {
	NewPrinter(w).Traverse(d)
}
