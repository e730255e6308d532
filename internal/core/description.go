package core

import "fmt"

// Entry kinds used in descriptions.
const (
	KindFile = "file"
	KindDir  = "dir"
)

// Description is the JSON form of an entry tree.
type Description struct {
	Name     string        `json:"name"`
	Kind     string        `json:"kind,omitempty"`
	Children []Description `json:"children,omitempty"`
}

// ResolvedKind returns Kind, or infers it when empty: a description with
// children is a directory, one without is a file.
func (d Description) ResolvedKind() string {
	if d.Kind != "" {
		return d.Kind
	}
	if len(d.Children) > 0 {
		return KindDir
	}
	return KindFile
}

// Build creates the entry tree d describes.
func (d Description) Build() (Entry, error) {
	var e Entry
	switch kind := d.ResolvedKind(); kind {
	case KindFile:
		e = NewFile(d.Name)
	case KindDir:
		e = NewDir(d.Name)
	default:
		return nil, fmt.Errorf("unknown entry kind %q for %q", kind, d.Name)
	}

	for _, child := range d.Children {
		c, err := child.Build()
		if err != nil {
			return nil, err
		}
		e.AddChild(c)
	}
	return e, nil
}

// Describe returns the description of the tree rooted at e. Children that
// are not entries are skipped.
func Describe(e Entry) Description {
	d := Description{Name: e.Name(), Kind: kindOf(e)}
	for _, child := range e.Children() {
		if ce, ok := child.(Entry); ok {
			d.Children = append(d.Children, Describe(ce))
		}
	}
	return d
}
