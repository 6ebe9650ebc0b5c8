package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmonari/syntaxdemo/internal/config"
	"github.com/mmonari/syntaxdemo/internal/demo"
	"github.com/mmonari/syntaxdemo/internal/logger"
)

var (
	debugLog = logger.New("cmd:root")
	version  = "dev" // Default version, overridden by SetVersion
)

// rootOptions carries the persistent flags and the config they produce to
// every subcommand.
type rootOptions struct {
	configFile string
	logDir     string

	cfg        *config.Config
	fileLogged bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "syntaxdemo",
		Short:   "Greeter and calculator demo",
		Version: version,
		Long: `syntaxdemo greets a name and runs a small calculator.

With no arguments it prints the built-in walkthrough:

  Hello, World!
  5 + 3 = 8
  4 * 7 = 28

The subcommands run each operation on its own or expose them as MCP tools.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			debugLog.Print("Running built-in walkthrough")
			return demo.Run(cmd.OutOrStdout(), demo.OptionsFromConfig(opts.cfg))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Path to a TOML or YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logDir, "log-dir", "", "Directory for the log file (file logging is off when empty)")

	rootCmd.AddCommand(newGreetCmd(opts))
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newMultiplyCmd())
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads the configuration and starts the file logger when asked to.
func (o *rootOptions) setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if o.configFile != "" {
		debugLog.Printf("Loading config from %s", o.configFile)
		loaded, err := config.LoadFromFile(o.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if o.logDir != "" {
		cfg.Log.Dir = o.logDir
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --log-dir: %w", err)
		}
	}
	if cfg.Log.Dir != "" {
		if err := logger.InitFileLogger(cfg.Log.Dir, cfg.Log.File); err != nil {
			return fmt.Errorf("failed to initialize file logger: %w", err)
		}
		o.fileLogged = true
		logger.LogInfo("startup", "syntaxdemo %s: command=%s", version, cmd.Name())
	}

	o.cfg = cfg
	return nil
}

func (o *rootOptions) teardown() error {
	if !o.fileLogged {
		return nil
	}
	o.fileLogged = false
	return logger.CloseGlobalLogger()
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logger.LogError("cmd", "%v", err)
		logger.CloseGlobalLogger()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}
