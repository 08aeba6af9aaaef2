// pkg/plan/snapshot.go
package plan

import (
	"encoding/json"

	"zombiezen.com/go/nix"

	"github.com/arc-language/rivelink/pkg/features"
)

// Snapshot is the serializable form of a BuildPlan
type Snapshot struct {
	Target              string                `json:"target" yaml:"target" toml:"target"`
	Supported           bool                  `json:"supported" yaml:"supported" toml:"supported"`
	IncludeDirs         []string              `json:"include_dirs,omitempty" yaml:"include_dirs,omitempty" toml:"include_dirs,omitempty"`
	Libraries           []Library             `json:"libraries,omitempty" yaml:"libraries,omitempty" toml:"libraries,omitempty"`
	SystemLibraries     []string              `json:"system_libraries,omitempty" yaml:"system_libraries,omitempty" toml:"system_libraries,omitempty"`
	Frameworks          []string              `json:"frameworks,omitempty" yaml:"frameworks,omitempty" toml:"frameworks,omitempty"`
	EngineDependencies  []string              `json:"engine_dependencies,omitempty" yaml:"engine_dependencies,omitempty" toml:"engine_dependencies,omitempty"`
	RuntimeLibraryPaths []string              `json:"runtime_library_paths,omitempty" yaml:"runtime_library_paths,omitempty" toml:"runtime_library_paths,omitempty"`
	Definitions         []features.Definition `json:"definitions" yaml:"definitions" toml:"definitions"`
	ManifestPath        string                `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty" toml:"manifest_path,omitempty"`
	Digest              string                `json:"digest" yaml:"digest" toml:"digest"`
}

// Snapshot returns a detached, serializable copy of the plan
func (p *BuildPlan) Snapshot() Snapshot {
	s := p.snapshot()
	s.Digest = p.Digest()
	return s
}

func (p *BuildPlan) snapshot() Snapshot {
	return Snapshot{
		Target:              p.target.String(),
		Supported:           p.supported,
		IncludeDirs:         p.IncludeDirs(),
		Libraries:           p.Libraries(),
		SystemLibraries:     p.SystemLibraries(),
		Frameworks:          p.Frameworks(),
		EngineDependencies:  p.EngineDependencies(),
		RuntimeLibraryPaths: p.RuntimeLibraryPaths(),
		Definitions:         p.Definitions(),
		ManifestPath:        p.manifestPath,
	}
}

// Digest returns a content hash of the plan in nix sha256 notation. Equal
// plans have equal digests.
func (p *BuildPlan) Digest() string {
	// Snapshot only holds strings, bools, ints and slices of them.
	data, err := json.Marshal(p.snapshot())
	if err != nil {
		panic("plan: marshal snapshot: " + err.Error())
	}
	h := nix.NewHasher(nix.SHA256)
	h.Write(data)
	return h.SumHash().String()
}
