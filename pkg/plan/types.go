// pkg/plan/types.go
package plan

import (
	"github.com/arc-language/rivelink/pkg/features"
	"github.com/arc-language/rivelink/pkg/target"
)

// Library is one resolved static archive
type Library struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Path string `json:"path" yaml:"path" toml:"path"`
}

// BuildPlan is everything the host compile and link steps need for one
// target. It is never modified after assembly; the accessors return copies.
type BuildPlan struct {
	target    target.Descriptor
	supported bool

	includeDirs         []string
	libraries           []Library
	systemLibraries     []string
	frameworks          []string
	engineDependencies  []string
	runtimeLibraryPaths []string
	definitions         []features.Definition
	manifestPath        string
}

// Target returns the descriptor the plan was resolved for
func (p *BuildPlan) Target() target.Descriptor { return p.target }

// Supported reports whether the SDK is available for the target. When it
// is false the host must not link and should compile out dependent code.
func (p *BuildPlan) Supported() bool { return p.supported }

func (p *BuildPlan) IncludeDirs() []string         { return clone(p.includeDirs) }
func (p *BuildPlan) Libraries() []Library          { return clone(p.libraries) }
func (p *BuildPlan) SystemLibraries() []string     { return clone(p.systemLibraries) }
func (p *BuildPlan) Frameworks() []string          { return clone(p.frameworks) }
func (p *BuildPlan) EngineDependencies() []string  { return clone(p.engineDependencies) }
func (p *BuildPlan) RuntimeLibraryPaths() []string { return clone(p.runtimeLibraryPaths) }

// Definitions returns the preprocessor definitions in emission order
func (p *BuildPlan) Definitions() []features.Definition { return clone(p.definitions) }

// ManifestPath returns the manifest fragment path relative to the project
func (p *BuildPlan) ManifestPath() (string, bool) {
	return p.manifestPath, p.manifestPath != ""
}

// Definition returns the value of one preprocessor definition
func (p *BuildPlan) Definition(name string) (int, bool) {
	return features.Lookup(p.definitions, name)
}

// LibraryPaths returns only the paths of Libraries, in link order
func (p *BuildPlan) LibraryPaths() []string {
	out := make([]string, len(p.libraries))
	for i, l := range p.libraries {
		out[i] = l.Path
	}
	return out
}

func clone[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	copy(out, s)
	return out
}
