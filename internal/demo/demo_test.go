package demo

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"entrytree/internal/core"
)

func TestRun(t *testing.T) {
	t.Run("transcript with teardown traces", func(t *testing.T) {
		var buf bytes.Buffer
		Run(&buf, core.WriterTracer{W: &buf}, core.DefaultWidth)

		file := func(name string) string { return fmt.Sprintf("%20s", name+"\tF") }
		dir := func(name string, n int) string { return fmt.Sprintf("%20s %d", name+"\t|", n) }
		destroy := func(n int) string { return fmt.Sprintf("Destroying node with %d children.", n) }

		want := strings.Join([]string{
			"START",
			"dir1:",
			file("File1"),
			file("File5"),
			dir("Dir1", 2),
			"dir3:",
			file("File4"),
			dir("Dir3", 1),
			"assigning dir1 to dir3",
			destroy(0),
			destroy(1),
			"dir3:",
			file("File1"),
			file("File5"),
			dir("Dir1", 2),
			"releasing dir3",
			destroy(0),
			destroy(0),
			destroy(2),
			"dir1 after dir3 is released:",
			file("File1"),
			file("File5"),
			dir("Dir1", 2),
			destroy(0),
			destroy(0),
			destroy(2),
		}, "\n") + "\n"

		if buf.String() != want {
			t.Errorf("unexpected transcript:\n%s\nwant:\n%s", buf.String(), want)
		}
	})

	t.Run("nil tracer prints listings only", func(t *testing.T) {
		var buf bytes.Buffer
		Run(&buf, nil, 0)

		if strings.Contains(buf.String(), "Destroying") {
			t.Error("expected no teardown lines")
		}
		if !strings.Contains(buf.String(), "File4\tF\n") {
			t.Errorf("expected unpadded File4 line, got:\n%s", buf.String())
		}
	})
}
