// pkg/export/compress.go
package export

import (
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/arc-language/rivelink/pkg/plan"
)

// WriteMatrixXZ is WriteMatrix with the output xz-compressed
func WriteMatrixXZ(w io.Writer, plans []*plan.BuildPlan, f Format) error {
	xzWriter, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating xz writer: %w", err)
	}

	if err := WriteMatrix(xzWriter, plans, f); err != nil {
		xzWriter.Close()
		return err
	}

	if err := xzWriter.Close(); err != nil {
		return fmt.Errorf("closing xz stream: %w", err)
	}
	return nil
}

// ReadXZ returns a reader decompressing an xz stream written by WriteMatrixXZ
func ReadXZ(r io.Reader) (io.Reader, error) {
	xzReader, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating xz reader: %w", err)
	}
	return xzReader, nil
}
