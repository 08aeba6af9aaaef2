// internal/cli/root.go
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/rivelink/pkg/core"
)

var (
	cfgFile    string
	moduleDir  string
	projectDir string
	logLevel   string
	logFormat  string
	debug      bool
	config     *core.Config
	logger     *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rivelink",
	Short: "Resolve Rive SDK build plans",
	Long: `rivelink - Rive SDK link resolver

Computes the include directories, static libraries, system libraries and
preprocessor definitions needed to link the prebuilt Rive runtime into a
host build, for any supported platform, architecture and configuration.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rivelink/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&moduleDir, "module-dir", "", "SDK module directory holding Includes/ and Libraries/")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "consuming project directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig(cmd *cobra.Command) error {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if moduleDir != "" {
		config.ModuleDir = moduleDir
	}
	if projectDir != "" {
		config.ProjectDir = projectDir
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}
	if logFormat != "" {
		config.LogFormat = logFormat
	}
	if debug {
		config.LogLevel = "debug"
	}

	logger, err = newLogger(config.LogLevel, config.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "module_dir", config.ModuleDir, "project_dir", config.ProjectDir)
	return nil
}
