// internal/cli/resolve.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/rivelink/pkg/export"
)

var (
	resolveTarget targetFlags
	resolveFormat string
	resolveOutput string
	resolveStrict bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the build plan of one target",
	Long: `Resolve the include directories, libraries and definitions for one target.

Examples:
  rivelink resolve --platform windows
  rivelink resolve --platform mac --arch x64 --format json
  rivelink resolve --platform ios --arch simulator --build-config debug --debug-crt
  rivelink resolve --platform android --format flags`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveTarget.register(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "", "output format: yaml, json, toml, flags (default from config)")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "", "write to file instead of stdout")
	resolveCmd.Flags().BoolVar(&resolveStrict, "strict", false, "fail when the SDK is not available for the target")
}

func runResolve(cmd *cobra.Command, args []string) error {
	d, err := resolveTarget.descriptor(cmd)
	if err != nil {
		return err
	}
	format, err := outputFormat(resolveFormat)
	if err != nil {
		return err
	}

	resolver := newResolver()
	resolve := resolver.Resolve
	if resolveStrict {
		resolve = resolver.ResolveStrict
	}

	p, err := resolve(d)
	if err != nil {
		return err
	}
	if !p.Supported() {
		logger.Warn("SDK unavailable for target, dependent code must be compiled out", "target", d.String())
	}

	w, closeOut, err := openOutput(cmd, resolveOutput)
	if err != nil {
		return err
	}
	if err := export.Write(w, p, format); err != nil {
		closeOut()
		return fmt.Errorf("writing plan: %w", err)
	}
	return closeOut()
}
