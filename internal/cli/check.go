// internal/cli/check.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/rivelink"
	"github.com/arc-language/rivelink/pkg/verify"
)

var checkTarget targetFlags

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the files of a build plan exist",
	Long: `Resolve the plan of one target and report every include directory,
library or manifest fragment missing from the installed SDK module.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkTarget.register(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	d, err := checkTarget.descriptor(cmd)
	if err != nil {
		return err
	}

	p, err := newResolver().ResolveStrict(d)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	missing := verify.Plan(p, config.ProjectDir)
	for _, m := range missing {
		fmt.Fprintf(out, "missing %-8s %s\n", m.Kind, m.Path)
	}
	if len(missing) > 0 {
		return &rivelink.Error{Op: "check", Target: d.String(), Err: fmt.Errorf("%d files missing", len(missing))}
	}

	fmt.Fprintf(out, "ok %s (%d libraries)\n", d, len(p.Libraries()))
	return nil
}
