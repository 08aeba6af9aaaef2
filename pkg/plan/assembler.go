// pkg/plan/assembler.go
package plan

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/arc-language/rivelink/pkg/catalog"
	"github.com/arc-language/rivelink/pkg/features"
	"github.com/arc-language/rivelink/pkg/layout"
	"github.com/arc-language/rivelink/pkg/manifest"
	"github.com/arc-language/rivelink/pkg/naming"
	"github.com/arc-language/rivelink/pkg/target"
)

// ErrDuplicateLibrary is returned when two resolved libraries collide
var ErrDuplicateLibrary = errors.New("duplicate library")

// Assembler turns target descriptors into build plans. It holds no
// mutable state and is safe for concurrent use.
type Assembler struct {
	moduleDir  string
	projectDir string
	logger     *slog.Logger
	abs        func(string) (string, error)
}

// Option configures an Assembler
type Option func(*Assembler)

// WithModuleDir sets the SDK module root (the directory holding Includes/ and Libraries/)
func WithModuleDir(dir string) Option {
	return func(a *Assembler) { a.moduleDir = dir }
}

// WithProjectDir sets the consuming project root manifest paths are relative to
func WithProjectDir(dir string) Option {
	return func(a *Assembler) { a.projectDir = dir }
}

// WithLogger sets the logger used for debug tracing
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an Assembler. Both directories default to ".".
func New(opts ...Option) *Assembler {
	a := &Assembler{
		moduleDir:  ".",
		projectDir: ".",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		abs:        filepath.Abs,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Unsupported returns the terminal plan of a target the SDK does not ship for
func Unsupported(d target.Descriptor) *BuildPlan {
	return &BuildPlan{
		target:      d,
		definitions: features.Derive(catalog.Entry{}, false),
	}
}

// Assemble resolves d. An unsupported target is not an error: the
// returned plan has Supported() == false. Errors are configuration or
// programming errors and must not be retried.
func (a *Assembler) Assemble(d target.Descriptor) (*BuildPlan, error) {
	log := a.logger.With("target", d.String())

	entry, ok := catalog.Lookup(d.Platform)
	if !ok {
		log.Debug("unsupported platform")
		return Unsupported(d), nil
	}

	libDir, err := layout.EntryDirectory(a.moduleDir, entry, d.Arch)
	if err != nil {
		log.Debug("unsupported target", "error", err)
		return Unsupported(d), nil
	}

	reqs, _ := catalog.Required(d.Platform, d.Arch)
	opts := naming.Options{
		Debug:     d.DebugPolicyActive(),
		Simulator: d.Arch == target.Simulator,
	}

	p := &BuildPlan{
		target:             d,
		supported:          true,
		includeDirs:        []string{layout.IncludeDirectory(a.moduleDir)},
		libraries:          make([]Library, 0, len(reqs)),
		systemLibraries:    clone(entry.SystemLibraries),
		frameworks:         clone(entry.Frameworks),
		engineDependencies: clone(entry.EngineDependencies),
	}

	for _, r := range reqs {
		opts.Codec = r.Codec
		file := entry.Rule.Render(r.Name, opts)
		lib := Library{Name: r.Name, Path: filepath.Join(libDir, file)}
		log.Debug("resolved library", "name", lib.Name, "path", lib.Path)
		p.libraries = append(p.libraries, lib)
	}

	if entry.RuntimeSearch {
		p.runtimeLibraryPaths = []string{libDir}
	}

	p.definitions = features.Derive(entry, true)
	if marker, ok := features.ArchMarker(d.Platform, d.Arch); ok {
		p.definitions = append(p.definitions, marker)
	}

	if entry.Manifest {
		mp, err := a.manifestPath()
		if err != nil {
			return nil, fmt.Errorf("binding manifest for %s: %w", d, err)
		}
		p.manifestPath = mp
	}

	if err := checkUnique(p.libraries); err != nil {
		return nil, fmt.Errorf("assembling %s: %w", d, err)
	}

	return p, nil
}

// manifestPath relates the manifest to the project root. Roots that cannot
// be related as given, such as an absolute module under the default ".",
// are retried against the working directory.
func (a *Assembler) manifestPath() (string, error) {
	mp, err := manifest.Path(a.moduleDir, a.projectDir)
	if err == nil || (filepath.IsAbs(a.moduleDir) && filepath.IsAbs(a.projectDir)) {
		return mp, err
	}

	module, err := a.abs(a.moduleDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", manifest.ErrRelativize, err)
	}
	project, err := a.abs(a.projectDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", manifest.ErrRelativize, err)
	}
	a.logger.Debug("manifest roots made absolute", "module_dir", module, "project_dir", project)
	return manifest.Path(module, project)
}

func checkUnique(libs []Library) error {
	names := make(map[string]bool, len(libs))
	paths := make(map[string]bool, len(libs))
	for _, l := range libs {
		if names[l.Name] {
			return fmt.Errorf("%w: name %q", ErrDuplicateLibrary, l.Name)
		}
		if paths[l.Path] {
			return fmt.Errorf("%w: path %q", ErrDuplicateLibrary, l.Path)
		}
		names[l.Name] = true
		paths[l.Path] = true
	}
	return nil
}
