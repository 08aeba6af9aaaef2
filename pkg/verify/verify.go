// pkg/verify/verify.go
package verify

import (
	"os"
	"path/filepath"

	"github.com/arc-language/rivelink/pkg/plan"
)

// Kind names what a missing path was expected to be
type Kind string

const (
	KindInclude  Kind = "include"
	KindLibrary  Kind = "library"
	KindManifest Kind = "manifest"
)

// Missing is one expected path that is not on disk
type Missing struct {
	Kind Kind
	Path string
}

// Plan stats every path of p and returns the ones that do not exist.
// projectDir anchors the relative manifest path. Unsupported plans have
// nothing to check.
func Plan(p *plan.BuildPlan, projectDir string) []Missing {
	var out []Missing

	for _, dir := range p.IncludeDirs() {
		if !dirExists(dir) {
			out = append(out, Missing{Kind: KindInclude, Path: dir})
		}
	}
	for _, lib := range p.Libraries() {
		if !fileExists(lib.Path) {
			out = append(out, Missing{Kind: KindLibrary, Path: lib.Path})
		}
	}
	if mp, ok := p.ManifestPath(); ok {
		path := filepath.Join(projectDir, mp)
		if !fileExists(path) {
			out = append(out, Missing{Kind: KindManifest, Path: path})
		}
	}

	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
