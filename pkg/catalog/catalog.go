// pkg/catalog/catalog.go
package catalog

import (
	"github.com/arc-language/rivelink/pkg/naming"
	"github.com/arc-language/rivelink/pkg/target"
)

// Requirement is one logical library a platform links
type Requirement struct {
	Name string
	// Codec places the library in the platform's alternate naming bucket
	Codec bool
}

// Kind reports the link layer of the requirement. Unknown names report
// KindUnknown; Validate rejects them.
func (r Requirement) Kind() Kind {
	if k, ok := libraries[r.Name]; ok {
		return k
	}
	return KindUnknown
}

// Entry is everything the catalog knows about one supported platform.
// Slices are shared with the table and must not be modified.
type Entry struct {
	Platform target.Platform

	// Dir is the platform directory under Libraries/
	Dir  string
	Rule naming.Rule

	// Archs maps each accepted architecture to its bucket directory under
	// Dir. An empty bucket means the platform uses a flat directory.
	Archs map[target.Architecture]string

	Libraries []Requirement

	// Audio reports whether the audio integration is linked on this platform
	Audio bool
	// ExternalAudio reports whether that integration is provided by the host
	// engine rather than bundled
	ExternalAudio bool

	SystemLibraries    []string
	Frameworks         []string
	EngineDependencies []string

	// RuntimeSearch adds the library directory to the runtime search path
	RuntimeSearch bool
	// Manifest reports whether the platform deploys a manifest fragment
	Manifest bool
}

// Accepts reports whether arch is shipped for this platform
func (e Entry) Accepts(arch target.Architecture) bool {
	_, ok := e.Archs[arch]
	return ok
}

// Bucket returns the architecture subdirectory, "" for flat layouts
func (e Entry) Bucket(arch target.Architecture) (string, bool) {
	b, ok := e.Archs[arch]
	return b, ok
}

// SortedArchs returns the accepted architectures in target.Architectures order
func (e Entry) SortedArchs() []target.Architecture {
	var out []target.Architecture
	for _, a := range target.Architectures {
		if e.Accepts(a) {
			out = append(out, a)
		}
	}
	return out
}

// Lookup returns the entry of a supported platform
func Lookup(p target.Platform) (Entry, bool) {
	e, ok := entries[p]
	return e, ok
}

// Required returns a copy of the ordered requirements for platform and arch.
// ok is false when the platform is unsupported or does not ship arch.
func Required(p target.Platform, arch target.Architecture) ([]Requirement, bool) {
	e, ok := entries[p]
	if !ok || !e.Accepts(arch) {
		return nil, false
	}
	out := make([]Requirement, len(e.Libraries))
	copy(out, e.Libraries)
	return out, true
}

// Supported lists every platform that has an entry, in target.Platforms order
func Supported() []target.Platform {
	var out []target.Platform
	for _, p := range target.Platforms {
		if _, ok := entries[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
