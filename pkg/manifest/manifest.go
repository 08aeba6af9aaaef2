// pkg/manifest/manifest.go
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
)

// FileName is the deployment descriptor fragment shipped next to the SDK module
const FileName = "RiveLibrary_APL.xml"

// ErrRelativize is returned when the module cannot be reached from the project
var ErrRelativize = errors.New("cannot relativize manifest path")

// Path returns the location of the manifest fragment relative to projectRoot
func Path(moduleRoot, projectRoot string) (string, error) {
	rel, err := filepath.Rel(projectRoot, filepath.Join(moduleRoot, FileName))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRelativize, err)
	}
	return rel, nil
}
