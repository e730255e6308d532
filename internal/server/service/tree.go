package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"entrytree/internal/config"
	"entrytree/internal/core"
	"entrytree/internal/demo"

	"github.com/spf13/afero"
)

// Sentinel errors for the service layer.
var (
	ErrInvalidTree  = errors.New("invalid tree description")
	ErrTooManyNodes = errors.New("tree has too many nodes")
	ErrTooDeep      = errors.New("tree is nested too deeply")
	ErrUnknownKind  = errors.New("unknown entry kind")
)

// RenderResult describes one tree.
type RenderResult struct {
	Listing     []string `json:"listing"`
	Count       int      `json:"count"`
	Fingerprint string   `json:"fingerprint"`
	Teardown    []string `json:"teardown,omitempty"`
}

// CloneRequest asks for a copy of Tree, renamed to Rename when set, with Add
// attached to the copy only.
type CloneRequest struct {
	Tree   core.Description   `json:"tree"`
	Rename string             `json:"rename,omitempty"`
	Add    []core.Description `json:"add,omitempty"`
}

// CloneResult holds the original and the copy after the copy was changed.
type CloneResult struct {
	Original *RenderResult `json:"original"`
	Clone    *RenderResult `json:"clone"`
	Equal    bool          `json:"equal"`
}

// TreeService builds entry trees from descriptions and runs policies over
// them. Every call works on its own tree.
type TreeService struct {
	cfg *config.Config
}

// NewTreeService creates a new tree service.
func NewTreeService(cfg *config.Config) *TreeService {
	return &TreeService{cfg: cfg}
}

// Render prints the tree, counts and fingerprints it, then releases it.
func (s *TreeService) Render(ctx context.Context, desc core.Description) (*RenderResult, error) {
	root, err := s.build(ctx, desc)
	if err != nil {
		return nil, err
	}

	result := s.describe(root)
	result.Teardown = s.release(root)

	slog.Info("tree rendered",
		"root", root.Name(),
		"nodes", result.Count,
		"fingerprint", result.Fingerprint,
	)
	return result, nil
}

// Clone copies the requested tree, applies the rename and additions to the
// copy and reports both trees.
func (s *TreeService) Clone(ctx context.Context, req CloneRequest) (*CloneResult, error) {
	if err := validateName(req.Rename, true); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var nodes int
	if err := s.validate(req.Tree, 1, &nodes); err != nil {
		return nil, err
	}
	// Additions hang directly under the clone root.
	for i, add := range req.Add {
		if err := s.validate(add, 2, &nodes); err != nil {
			return nil, fmt.Errorf("add[%d]: %w", i, err)
		}
	}

	original, err := buildEntry(req.Tree)
	if err != nil {
		return nil, err
	}
	defer s.release(original)

	clone := original.Clone().(core.Entry)
	defer s.release(clone)

	if req.Rename != "" {
		clone.SetName(req.Rename)
	}
	for i, add := range req.Add {
		child, err := buildEntry(add)
		if err != nil {
			return nil, fmt.Errorf("add[%d]: %w", i, err)
		}
		clone.AddChild(child)
	}

	return &CloneResult{
		Original: s.describe(original),
		Clone:    s.describe(clone),
		Equal:    core.Equal(original, clone),
	}, nil
}

// Archive returns a zip of the tree layout with empty files.
func (s *TreeService) Archive(ctx context.Context, desc core.Description) ([]byte, error) {
	root, err := s.build(ctx, desc)
	if err != nil {
		return nil, err
	}
	defer s.release(root)

	tree := &core.Filetree{Root: root}
	data, err := tree.ToZipBytes(afero.NewMemMapFs())
	if err != nil {
		return nil, fmt.Errorf("failed to archive tree: %w", err)
	}
	return data, nil
}

// Demo returns the walkthrough transcript with teardown traces interleaved.
func (s *TreeService) Demo(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	var tr core.Tracer
	if s.cfg.TraceTeardown {
		tr = core.WriterTracer{W: &buf}
	}
	demo.Run(&buf, tr, s.cfg.FieldWidth)
	return buf.String(), nil
}

// --- Helpers ---

func (s *TreeService) build(ctx context.Context, desc core.Description) (core.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var nodes int
	if err := s.validate(desc, 1, &nodes); err != nil {
		return nil, err
	}
	return buildEntry(desc)
}

func buildEntry(desc core.Description) (core.Entry, error) {
	root, err := desc.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTree, err)
	}
	return root, nil
}

func (s *TreeService) validate(desc core.Description, depth int, nodes *int) error {
	if depth > s.cfg.MaxDepth {
		return ErrTooDeep
	}
	*nodes++
	if *nodes > s.cfg.MaxNodes {
		return ErrTooManyNodes
	}
	if err := validateName(desc.Name, false); err != nil {
		return err
	}
	switch desc.ResolvedKind() {
	case core.KindFile, core.KindDir:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, desc.Kind)
	}
	for _, child := range desc.Children {
		if err := s.validate(child, depth+1, nodes); err != nil {
			return err
		}
	}
	return nil
}

func (s *TreeService) describe(root core.Entry) *RenderResult {
	var buf bytes.Buffer
	core.NewPrinter(&buf).WithWidth(s.cfg.FieldWidth).Traverse(root)

	var c core.Counter
	c.Traverse(root)

	return &RenderResult{
		Listing:     splitLines(buf.String()),
		Count:       c.Count(),
		Fingerprint: core.Fingerprint(root),
	}
}

func (s *TreeService) release(root core.Entry) []string {
	if !s.cfg.TraceTeardown {
		core.Release(root, nil)
		return nil
	}
	var buf bytes.Buffer
	core.Release(root, core.WriterTracer{W: &buf})
	return splitLines(buf.String())
}

// validateName accepts a single path segment: no separators, not "." or "..".
func validateName(name string, allowEmpty bool) error {
	if name == "" {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: empty name", ErrInvalidTree)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: invalid name %q", ErrInvalidTree, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: name must not contain path separators: %q", ErrInvalidTree, name)
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
