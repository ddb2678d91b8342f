// Package cmd provides the command-line interface for joinstart.
//
// Configuration System:
//
//	Settings are resolved from several sources, highest priority first:
//	1. Command-line flags (--config, --log-level, etc.)
//	2. JOINSTART_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (JOINSTART_LOG_LEVEL, etc.)
//	4. Configuration file (.joinstart.yml)
//
// Environment Variables:
//
//	JOINSTART_CONFIG_FILE: Path to custom configuration file
//	JOINSTART_LOG_LEVEL:   debug, info, warn or error
//	JOINSTART_LOG_FORMAT:  text or json
//	JOINSTART_DEPS_FORMAT: output format of the deps command
package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/joinstart/internal/bar"
	"github.com/conneroisu/joinstart/internal/config"
	"github.com/conneroisu/joinstart/internal/foo"
	"github.com/conneroisu/joinstart/internal/logging"
)

var cfgFile string

// rootCmd runs the foo target when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "joinstart",
	Short: "Join a fixed word list and print it from the foo and bar targets",
	Long: `joinstart joins the words foo, bar and baz with "-" and prints the
result twice: once from the foo entry target and once from the bar library
target it calls.

  $ joinstart
  Foo: Joined string: foo-bar-baz
  Bar: Joined string: foo-bar-baz

Other commands:
  joinstart deps       Show the resolved third-party packages of the targets
  joinstart version    Show version information`,
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	RunE:               runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .joinstart.yml, can also use JOINSTART_CONFIG_FILE env var)")
	flags.StringP("log-level", "l", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	v := viper.GetViper()
	cobra.CheckErr(config.BindFlag(v, config.KeyLogLevel, flags, "log-level"))
	cobra.CheckErr(config.BindFlag(v, config.KeyLogFormat, flags, "log-format"))
}

// initConfig picks the config file: --config, then JOINSTART_CONFIG_FILE,
// then .joinstart.yml in the working directory. A missing or unreadable file
// leaves defaults, environment and flags in effect.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv(config.EnvPrefix + "_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".joinstart")
	}

	config.BindEnv(viper.GetViper())

	_ = viper.ReadInConfig()
}

// newLogger builds the stderr logger from the loaded configuration. When the
// configuration is invalid the default logger is returned with the error.
func newLogger(cmd *cobra.Command) (logging.Logger, *config.Config, error) {
	loggerConfig := logging.DefaultConfig()
	loggerConfig.Output = cmd.ErrOrStderr()
	loggerConfig.Level = logging.LevelWarn

	cfg, err := config.Load()
	if err != nil {
		return logging.NewLogger(loggerConfig), nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return logging.NewLogger(loggerConfig), nil, err
	}
	loggerConfig.Level = level
	loggerConfig.Format = cfg.Log.Format

	logger := logging.NewLogger(loggerConfig)
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug(context.Background(), "using config file", "path", used)
	}
	return logger, cfg, nil
}

// runRoot prints the foo and bar lines. It always reports success; a failed
// write is only logged.
func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger, _, err := newLogger(cmd)
	if err != nil {
		logger.Warn(ctx, err, "invalid configuration, using defaults")
	}
	if len(args) > 0 {
		logger.Debug(ctx, "ignoring arguments", "args", strings.Join(args, " "))
	}

	out := cmd.OutOrStdout()
	if err := foo.Run(ctx, out, barPrinter(out), logger); err != nil {
		logger.Error(ctx, err, "print failed")
	}
	return nil
}

// barPrinter calls bar.PrintBar when the command writes to the process
// stdout and bar.Fprint for any other writer.
func barPrinter(out io.Writer) foo.Printer {
	if out == os.Stdout {
		return foo.PrinterFunc(func(io.Writer) error {
			bar.PrintBar()
			return nil
		})
	}
	return foo.PrinterFunc(bar.Fprint)
}
