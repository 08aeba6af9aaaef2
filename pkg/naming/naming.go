// pkg/naming/naming.go
package naming

import "strings"

// Rule describes how one platform spells a library file
type Rule struct {
	Prefix    string // e.g. "lib" for archive-style platforms
	Extension string // ".lib", ".a"

	// DebugSuffix is inserted before the extension when the debug policy is active
	DebugSuffix string

	// CodecPrefix is prepended to libraries in the codec bucket
	CodecPrefix string

	// SimulatorSegment distinguishes simulator slices (e.g. ".sim" in "librive.sim.a").
	// Empty on platforms without a simulator.
	SimulatorSegment string
}

// Options carries the per-library and per-target switches for Render
type Options struct {
	Debug     bool
	Simulator bool
	Codec     bool
}

// Render returns the file name of the logical library name under the rule
func (r Rule) Render(name string, opts Options) string {
	var b strings.Builder
	b.WriteString(r.Prefix)
	if opts.Codec {
		b.WriteString(r.CodecPrefix)
	}
	b.WriteString(name)
	if opts.Debug {
		b.WriteString(r.DebugSuffix)
	}
	if opts.Simulator {
		b.WriteString(r.SimulatorSegment)
	}
	b.WriteString(r.Extension)
	return b.String()
}

// HasDebugSuffix reports whether file was rendered with the debug suffix
func (r Rule) HasDebugSuffix(file string, simulator bool) bool {
	if r.DebugSuffix == "" {
		return false
	}
	tail := r.DebugSuffix
	if simulator {
		tail += r.SimulatorSegment
	}
	return strings.HasSuffix(file, tail+r.Extension)
}

// Windows style: no prefix, .lib archives, codecs renamed into the SDK bucket
var Windows = Rule{
	Extension:   ".lib",
	DebugSuffix: "_d",
	CodecPrefix: "rive_",
}

// Archive style: lib prefix and .a archives
var Archive = Rule{
	Prefix:      "lib",
	Extension:   ".a",
	DebugSuffix: "_d",
}

// Apple device/simulator style
var Apple = Rule{
	Prefix:           "lib",
	Extension:        ".a",
	DebugSuffix:      "_d",
	SimulatorSegment: ".sim",
}

// Unix renames codecs into the SDK bucket like Windows does
var Unix = Rule{
	Prefix:      "lib",
	Extension:   ".a",
	DebugSuffix: "_d",
	CodecPrefix: "rive_",
}
