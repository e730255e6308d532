package core

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"

	"github.com/spf13/afero"
)

// ToZipBytes archives the layout of the tree. Directories become directory
// records; files scanned from fsys carry their content, in-memory files are
// stored empty.
func (ft *Filetree) ToZipBytes(fsys afero.Fs) ([]byte, error) {
	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	if err := compressNode(zipWriter, fsys, ft.Root, ""); err != nil {
		zipWriter.Close()
		return nil, err
	}

	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zip writer: %w", err)
	}

	return buf.Bytes(), nil
}

func compressNode(zw *zip.Writer, fsys afero.Fs, node Node, basePath string) error {
	e, ok := node.(Entry)
	if !ok {
		return nil
	}
	archivePath := path.Join(basePath, e.Name())

	switch n := e.(type) {
	case *File:
		return addFileToZip(zw, fsys, n, archivePath)
	case *Dir:
		if _, err := zw.Create(archivePath + "/"); err != nil {
			return fmt.Errorf("failed to create zip directory %s: %w", archivePath, err)
		}
		for _, child := range n.children {
			if err := compressNode(zw, fsys, child, archivePath); err != nil {
				return err
			}
		}
	}
	return nil
}

func addFileToZip(zw *zip.Writer, fsys afero.Fs, f *File, archivePath string) error {
	header := &zip.FileHeader{Name: archivePath, Method: zip.Deflate}

	if f.path == "" {
		if _, err := zw.CreateHeader(header); err != nil {
			return fmt.Errorf("failed to create zip entry: %w", err)
		}
		return nil
	}

	file, err := fsys.Open(f.path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", f.path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	header, err = zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("failed to create zip header: %w", err)
	}
	header.Name = archivePath
	header.Method = zip.Deflate

	writer, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create zip entry: %w", err)
	}

	if _, err := io.Copy(writer, file); err != nil {
		return fmt.Errorf("failed to write file to zip: %w", err)
	}

	return nil
}

// GetUncompressedSize sums the sizes of the scanned files in the tree.
func (ft *Filetree) GetUncompressedSize(fsys afero.Fs) (int64, error) {
	var totalSize int64

	for _, node := range ft.FlattenTree() {
		if file, ok := node.(*File); ok && file.path != "" {
			info, err := fsys.Stat(file.path)
			if err != nil {
				return 0, err
			}
			totalSize += info.Size()
		}
	}

	return totalSize, nil
}
