package core

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// Filetree is an entry tree scanned from a filesystem.
type Filetree struct {
	Root Entry
}

// BuildFiletree scans paths on fsys. A single path becomes the root; several
// paths are gathered under a virtual directory.
func BuildFiletree(fsys afero.Fs, paths []ParsedPath) (*Filetree, error) {
	var rootNodes []Entry

	for _, parsedPath := range paths {
		if parsedPath.Kind == PathDir {
			dirNode, err := buildDirTree(fsys, parsedPath.FullPath)
			if err != nil {
				return nil, err
			}
			rootNodes = append(rootNodes, dirNode)
		} else {
			rootNodes = append(rootNodes, newScannedFile(parsedPath.FullPath))
		}
	}

	if len(rootNodes) == 0 {
		return nil, fmt.Errorf("no valid paths provided")
	}

	// determine root
	var root Entry
	if len(rootNodes) == 1 {
		root = rootNodes[0]
	} else {
		root = createVirtualRoot(rootNodes)
	}

	return &Filetree{Root: root}, nil
}

// FlattenTree lists every node of the tree in post-order.
func (ft *Filetree) FlattenTree() []Node {
	return Flatten(ft.Root)
}

func newScannedFile(path string) *File {
	return &File{entry: entry{path: path, name: filepath.Base(path)}}
}

func buildDirTree(fsys afero.Fs, dirPath string) (*Dir, error) {
	dir := &Dir{entry: entry{path: dirPath, name: filepath.Base(dirPath)}}

	infos, err := afero.ReadDir(fsys, dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	for _, info := range infos {
		childPath := filepath.Join(dirPath, info.Name())

		if info.IsDir() {
			childDir, err := buildDirTree(fsys, childPath)
			if err != nil {
				return nil, err
			}
			dir.AddChild(childDir)
		} else {
			dir.AddChild(newScannedFile(childPath))
		}
	}

	return dir, nil
}

func createVirtualRoot(children []Entry) *Dir {
	name := fmt.Sprintf("upload_%s", time.Now().Format("2006_01_02_150405"))
	virtualRoot := NewDir(name)
	for _, child := range children {
		virtualRoot.AddChild(child)
	}
	return virtualRoot
}
