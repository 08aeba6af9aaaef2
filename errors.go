// errors.go
package rivelink

import (
	"fmt"

	"github.com/arc-language/rivelink/pkg/catalog"
	"github.com/arc-language/rivelink/pkg/layout"
	"github.com/arc-language/rivelink/pkg/manifest"
	"github.com/arc-language/rivelink/pkg/plan"
)

var (
	// ErrUnsupportedPlatform indicates the SDK does not ship for the target.
	// Resolve never returns it; ResolveStrict does.
	ErrUnsupportedPlatform = layout.ErrUnsupportedPlatform

	// ErrPathRelativization indicates the manifest fragment cannot be reached
	// from the project; the installation layout is broken
	ErrPathRelativization = manifest.ErrRelativize

	// ErrCatalogInconsistency indicates a broken catalog table
	ErrCatalogInconsistency = catalog.ErrInconsistent

	// ErrDuplicateLibrary indicates two resolved libraries collide
	ErrDuplicateLibrary = plan.ErrDuplicateLibrary
)

// Error wraps an error with additional context
type Error struct {
	Op     string // Operation that failed
	Target string // Target descriptor if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
