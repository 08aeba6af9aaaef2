// internal/cli/target.go
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/rivelink"
	"github.com/arc-language/rivelink/pkg/catalog"
	"github.com/arc-language/rivelink/pkg/export"
	"github.com/arc-language/rivelink/pkg/target"
)

// targetFlags are the descriptor flags shared by resolve and check
type targetFlags struct {
	platform string
	arch     string
	config   string
	debugCRT bool
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.platform, "platform", "", "target platform: windows, mac, ios, android, unix (default is the host)")
	cmd.Flags().StringVar(&f.arch, "arch", "", "target architecture: x64, arm64, simulator (default is the host or the platform's first)")
	cmd.Flags().StringVar(&f.config, "build-config", "development", "build configuration: debug, debuggame, development, test, shipping")
	cmd.Flags().BoolVar(&f.debugCRT, "debug-crt", false, "debug builds link the debug runtime libraries")
}

// descriptor builds the target from the flags, falling back to the host
// platform and then to the configured debug policy
func (f *targetFlags) descriptor(cmd *cobra.Command) (target.Descriptor, error) {
	c, err := target.ParseConfiguration(f.config)
	if err != nil {
		return target.Descriptor{}, err
	}

	d := target.Detect(c)
	if f.platform != "" {
		d.Platform = target.ParsePlatform(f.platform)
		d.Arch = defaultArch(d.Platform)
	}
	if f.arch != "" {
		a, err := target.ParseArchitecture(f.arch)
		if err != nil {
			return target.Descriptor{}, err
		}
		d.Arch = a
	}

	d.DebugCRT = config.DebugCRT
	if cmd.Flags().Changed("debug-crt") {
		d.DebugCRT = f.debugCRT
	}
	return d, nil
}

func defaultArch(p target.Platform) target.Architecture {
	if e, ok := catalog.Lookup(p); ok {
		if archs := e.SortedArchs(); len(archs) > 0 {
			return archs[0]
		}
	}
	return target.X64
}

func outputFormat(flag string) (export.Format, error) {
	if flag == "" {
		flag = config.Format
	}
	return export.ParseFormat(flag)
}

// openOutput returns the command output for "" and "-", a created file otherwise
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}
	return f, f.Close, nil
}

func newResolver() *rivelink.Resolver {
	return rivelink.NewResolver(config, logger)
}
