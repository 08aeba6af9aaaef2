// internal/cli/matrix.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/rivelink"
	"github.com/arc-language/rivelink/pkg/export"
)

var (
	matrixDebugCRT bool
	matrixFormat   string
	matrixOutput   string
	matrixXZ       bool
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Resolve every shipped target",
	Long: `Resolve the build plan of every platform, architecture and configuration
the SDK ships for. Two runs over the same installation produce identical
output, which makes the matrix usable as a reproducibility snapshot.

Examples:
  rivelink matrix --format json
  rivelink matrix -o plans.yaml.xz`,
	Args: cobra.NoArgs,
	RunE: runMatrix,
}

func init() {
	matrixCmd.Flags().BoolVar(&matrixDebugCRT, "debug-crt", false, "debug builds link the debug runtime libraries")
	matrixCmd.Flags().StringVar(&matrixFormat, "format", "", "output format: yaml, json, toml, flags (default from config)")
	matrixCmd.Flags().StringVarP(&matrixOutput, "output", "o", "", "write to file instead of stdout")
	matrixCmd.Flags().BoolVar(&matrixXZ, "xz", false, "xz-compress the output (implied by a .xz output name)")
}

func runMatrix(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(matrixFormat)
	if err != nil {
		return err
	}

	debugCRT := config.DebugCRT
	if cmd.Flags().Changed("debug-crt") {
		debugCRT = matrixDebugCRT
	}

	plans, err := newResolver().ResolveAll(cmd.Context(), rivelink.Targets(debugCRT))
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(cmd, matrixOutput)
	if err != nil {
		return err
	}

	write := export.WriteMatrix
	if matrixXZ || strings.HasSuffix(matrixOutput, ".xz") {
		write = export.WriteMatrixXZ
	}
	if err := write(w, plans, format); err != nil {
		closeOut()
		return fmt.Errorf("writing matrix: %w", err)
	}

	logger.Info("matrix written", "plans", len(plans), "output", matrixOutput)
	return closeOut()
}
