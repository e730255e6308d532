package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"entrytree/internal/config"
	"entrytree/internal/core"
	"entrytree/internal/demo"

	"github.com/spf13/afero"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	if err := run(os.Args[1:], os.Stdout, afero.NewOsFs(), cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run scans the given paths, or runs the walkthrough when there are none.
// The scanned tree is always released before run returns.
func run(args []string, stdout io.Writer, fsys afero.Fs, cfg *config.Config, logger *slog.Logger) error {
	flags := flag.NewFlagSet("entrytree", flag.ContinueOnError)
	width := flags.Int("width", cfg.FieldWidth, "field width entries are right-aligned to")
	zipPath := flags.String("zip", "", "also write the scanned tree as a zip archive to this file")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [flags] [paths...]\n\n", flags.Name())
		fmt.Fprintln(flags.Output(), "Without paths, runs the copy/assign walkthrough.")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.NArg() == 0 {
		var tr core.Tracer
		if cfg.TraceTeardown {
			tr = core.WriterTracer{W: stdout}
		}
		demo.Run(stdout, tr, *width)
		return nil
	}

	parsedPaths, err := core.ParseArgs(fsys, flags.Args())
	if err != nil {
		return err
	}

	filetree, err := core.BuildFiletree(fsys, parsedPaths)
	if err != nil {
		return fmt.Errorf("failed to build filetree: %w", err)
	}
	defer core.Release(filetree.Root, core.SlogTracer{Logger: logger})

	core.NewPrinter(stdout).WithWidth(*width).Traverse(filetree.Root)

	var counter core.Counter
	counter.Traverse(filetree.Root)
	size, err := filetree.GetUncompressedSize(fsys)
	if err != nil {
		logger.Warn("failed to measure tree", "error", err)
	}
	logger.Info("tree scanned",
		"root", filetree.Root.Name(),
		"nodes", counter.Count(),
		"uncompressed_bytes", size,
		"fingerprint", core.Fingerprint(filetree.Root),
	)

	if *zipPath == "" {
		return nil
	}

	zipBytes, err := filetree.ToZipBytes(fsys)
	if err != nil {
		return fmt.Errorf("failed to compress: %w", err)
	}
	if err := afero.WriteFile(fsys, *zipPath, zipBytes, 0644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Archived %d nodes to %s (%d bytes)\n", counter.Count(), *zipPath, len(zipBytes))
	return nil
}
