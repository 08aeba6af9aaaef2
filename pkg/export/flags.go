// pkg/export/flags.go
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/arc-language/rivelink/pkg/plan"
)

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -isystem flags
	DefineFlags  []string // -D flags
	LinkFlags    []string // archive paths, system libraries, frameworks
	RPathFlags   []string // -Wl,-rpath flags
}

// FlagsFor renders a plan as driver-style flags. Archives are kept in
// link order and precede system libraries.
func FlagsFor(p *plan.BuildPlan) CompilerFlags {
	var f CompilerFlags

	for _, dir := range p.IncludeDirs() {
		f.IncludeFlags = append(f.IncludeFlags, "-isystem", dir)
	}
	for _, d := range p.Definitions() {
		f.DefineFlags = append(f.DefineFlags, "-D"+d.String())
	}
	f.LinkFlags = append(f.LinkFlags, p.LibraryPaths()...)
	for _, lib := range p.SystemLibraries() {
		f.LinkFlags = append(f.LinkFlags, systemLibFlag(lib))
	}
	for _, fw := range p.Frameworks() {
		f.LinkFlags = append(f.LinkFlags, "-framework", fw)
	}
	for _, dir := range p.RuntimeLibraryPaths() {
		f.RPathFlags = append(f.RPathFlags, "-Wl,-rpath,"+dir)
	}

	return f
}

// All returns every flag in command line order
func (f CompilerFlags) All() []string {
	var out []string
	out = append(out, f.IncludeFlags...)
	out = append(out, f.DefineFlags...)
	out = append(out, f.LinkFlags...)
	out = append(out, f.RPathFlags...)
	return out
}

// systemLibFlag leaves MSVC style names alone and turns bare names into -l flags
func systemLibFlag(lib string) string {
	if strings.HasSuffix(lib, ".lib") {
		return lib
	}
	return "-l" + lib
}

func writeFlags(w io.Writer, f CompilerFlags) error {
	for _, group := range [][]string{f.IncludeFlags, f.DefineFlags, f.LinkFlags, f.RPathFlags} {
		if len(group) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w, strings.Join(group, " ")); err != nil {
			return err
		}
	}
	return nil
}
