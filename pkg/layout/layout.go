// pkg/layout/layout.go
package layout

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/arc-language/rivelink/pkg/catalog"
	"github.com/arc-language/rivelink/pkg/target"
)

// Directory names of the installed SDK tree:
//
//	<root>/Includes/
//	<root>/Libraries/<Platform>[/<Arch bucket>]/
const (
	IncludesDir  = "Includes"
	LibrariesDir = "Libraries"
)

var (
	// ErrUnsupportedPlatform is returned for platforms without a catalog entry
	ErrUnsupportedPlatform = errors.New("platform not supported")

	// ErrUnsupportedArchitecture is returned when the platform does not ship the architecture
	ErrUnsupportedArchitecture = errors.New("architecture not supported")
)

// IncludeDirectory returns the system include directory; it does not
// depend on the platform
func IncludeDirectory(root string) string {
	return filepath.Join(root, IncludesDir)
}

// LibraryDirectory returns the directory holding the static archives for
// platform and arch
func LibraryDirectory(root string, p target.Platform, arch target.Architecture) (string, error) {
	e, ok := catalog.Lookup(p)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p)
	}
	return EntryDirectory(root, e, arch)
}

// EntryDirectory is LibraryDirectory for an entry already looked up
func EntryDirectory(root string, e catalog.Entry, arch target.Architecture) (string, error) {
	bucket, ok := e.Bucket(arch)
	if !ok {
		return "", fmt.Errorf("%w: %s on %s", ErrUnsupportedArchitecture, arch, e.Platform)
	}
	if bucket == "" {
		return filepath.Join(root, LibrariesDir, e.Dir), nil
	}
	return filepath.Join(root, LibrariesDir, e.Dir, bucket), nil
}
