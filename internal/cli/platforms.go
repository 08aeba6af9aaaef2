// internal/cli/platforms.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/rivelink/pkg/catalog"
	"github.com/arc-language/rivelink/pkg/target"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Long:  `List every platform the SDK ships for, with its architectures and capabilities.`,
	Args:  cobra.NoArgs,
	RunE:  runPlatforms,
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	host := target.Detect(target.Development)

	for _, p := range catalog.Supported() {
		e, _ := catalog.Lookup(p)

		marker := " "
		if p == host.Platform {
			marker = "*"
		}

		archs := make([]string, 0, len(e.Archs))
		for _, a := range e.SortedArchs() {
			if b, _ := e.Bucket(a); b != "" {
				archs = append(archs, a.String()+"("+b+")")
			} else {
				archs = append(archs, a.String())
			}
		}

		audio := "no"
		if e.Audio {
			audio = "bundled"
			if e.ExternalAudio {
				audio = "external"
			}
		}

		fmt.Fprintf(out, "%s %-8s dir=%-8s archs=%s libs=%d audio=%s",
			marker, p, e.Dir, strings.Join(archs, ","), len(e.Libraries), audio)
		if e.Manifest {
			fmt.Fprint(out, " manifest")
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "\n* = host platform (%s)\n", host.Platform)
	return nil
}
