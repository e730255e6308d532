package core

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
)

// helpers

func verifyZipContents(t *testing.T, zipBytes []byte, expectedFiles map[string]string) {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		t.Fatalf("failed to create zip reader: %v", err)
	}

	if len(reader.File) != len(expectedFiles) {
		t.Errorf("expected %d entries in zip, got %d", len(expectedFiles), len(reader.File))
	}

	for _, f := range reader.File {
		expectedContent, exists := expectedFiles[f.Name]
		if !exists {
			t.Errorf("unexpected entry in zip: %s", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			t.Errorf("failed to open entry %s in zip: %v", f.Name, err)
			continue
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Errorf("failed to read entry %s: %v", f.Name, err)
			continue
		}

		if string(content) != expectedContent {
			t.Errorf("entry %s: expected content %q, got %q", f.Name, expectedContent, string(content))
		}
	}
}

// Tests

func TestFiletree_ToZipBytes(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		fsys := setupTestFs(t, map[string]string{"/data/test.txt": "hello world"})
		tree, err := BuildFiletree(fsys, []ParsedPath{{FullPath: "/data/test.txt", Kind: PathFile}})
		if err != nil {
			t.Fatal(err)
		}

		zipBytes, err := tree.ToZipBytes(fsys)
		if err != nil {
			t.Fatalf("failed to compress: %v", err)
		}

		verifyZipContents(t, zipBytes, map[string]string{
			"test.txt": "hello world",
		})
	})

	t.Run("directory with nested files", func(t *testing.T) {
		fsys := setupTestFs(t, map[string]string{
			"/data/mydir/file1.txt":     "content1",
			"/data/mydir/sub/file2.txt": "content2",
		})
		tree, err := BuildFiletree(fsys, []ParsedPath{{FullPath: "/data/mydir", Kind: PathDir}})
		if err != nil {
			t.Fatal(err)
		}

		zipBytes, err := tree.ToZipBytes(fsys)
		if err != nil {
			t.Fatalf("failed to compress: %v", err)
		}

		verifyZipContents(t, zipBytes, map[string]string{
			"mydir/":              "",
			"mydir/file1.txt":     "content1",
			"mydir/sub/":          "",
			"mydir/sub/file2.txt": "content2",
		})
	})

	t.Run("in-memory tree stores empty files", func(t *testing.T) {
		tree := &Filetree{Root: newTestDir("Dir1", NewFile("File1"), newTestDir("empty"))}

		zipBytes, err := tree.ToZipBytes(afero.NewMemMapFs())
		if err != nil {
			t.Fatalf("failed to compress: %v", err)
		}

		verifyZipContents(t, zipBytes, map[string]string{
			"Dir1/":       "",
			"Dir1/File1":  "",
			"Dir1/empty/": "",
		})
	})

	t.Run("scanned file removed before archiving", func(t *testing.T) {
		fsys := setupTestFs(t, map[string]string{"/data/gone.txt": "x"})
		tree, err := BuildFiletree(fsys, []ParsedPath{{FullPath: "/data/gone.txt", Kind: PathFile}})
		if err != nil {
			t.Fatal(err)
		}
		if err := fsys.Remove("/data/gone.txt"); err != nil {
			t.Fatal(err)
		}

		if _, err := tree.ToZipBytes(fsys); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func TestFiletree_GetUncompressedSize(t *testing.T) {
	fsys := setupTestFs(t, map[string]string{
		"/data/d/a.txt":     "12345",
		"/data/d/sub/b.txt": "1234567890",
	})
	tree, err := BuildFiletree(fsys, []ParsedPath{{FullPath: "/data/d", Kind: PathDir}})
	if err != nil {
		t.Fatal(err)
	}

	size, err := tree.GetUncompressedSize(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 15 {
		t.Errorf("expected 15 bytes, got %d", size)
	}
}
