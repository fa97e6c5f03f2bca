package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	szconfig "github.com/msto63/stringz/foundation/core/config"
	szerror "github.com/msto63/stringz/foundation/core/error"
	szerrors "github.com/msto63/stringz/foundation/core/errors"
	szlog "github.com/msto63/stringz/foundation/core/log"
	"github.com/msto63/stringz/foundation/utils/stringz"
)

// EnvPrefix prefixes environment overrides, e.g. STRINGZ_LOG_LEVEL
const EnvPrefix = "STRINGZ"

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

// app holds what every subcommand needs once setup has run
var app struct {
	config   *szconfig.Config
	logger   *szlog.Logger
	registry *stringz.Registry
}

var rootCmd = &cobra.Command{
	Use:   "stringz",
	Short: "String formatting and shaping utilities",
	Long: `stringz formats templates, pads, chops and fixes string widths,
and replaces or searches text literally.

Templates:
  %{0}, %{1}, ...  indexed argument
  %{s}             next argument in order
  %%{s}            literal %%{s}, consumes nothing

Operations that have nothing to return print "null".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints any error to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return szerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./stringz.toml or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text, console or logfmt")
}

// configDefaults are used for keys missing from the config file
func configDefaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  szlog.DefaultLevel().String(),
			"format": szlog.FormatText.String(),
		},
		"pad": map[string]interface{}{
			"char": stringz.DefaultPadChar,
		},
	}
}

var configRules = szconfig.ValidationRules{
	"log.level":  {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "off"}},
	"log.format": {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
	"pad.char":   {Type: "string", NonEmpty: true},
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	registry := stringz.NewRegistry(logger)
	stringz.InstallInto(registry)

	app.config = cfg
	app.logger = logger
	app.registry = registry

	logger.Debug("stringz ready",
		szlog.Field("command", cmd.Name()),
		szlog.Field("config", cfg.FilePath()))
	return nil
}

func loadConfig() (*szconfig.Config, error) {
	if cfgFile != "" {
		return szconfig.LoadWithOptions(cfgFile, szconfig.LoadOptions{
			Format:    szconfig.FormatAuto,
			EnvPrefix: EnvPrefix,
			Defaults:  configDefaults(),
		})
	}

	options := szconfig.DefaultDiscoveryOptions("stringz")
	options.EnvPrefix = EnvPrefix
	options.Defaults = configDefaults()
	return szconfig.Discover(options)
}

func newLogger(cfg *szconfig.Config, output io.Writer) (*szlog.Logger, error) {
	level, err := szlog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return nil, szerror.Wrap(err, "invalid log level").
			WithCode(szerror.CodeInvalidConfig).
			WithOperation("cli.setup")
	}
	if verbose {
		level = szlog.LevelDebug
	}

	formatName := cfg.GetString("log.format")
	if logFormat != "" {
		formatName = logFormat
	}
	format, err := szlog.ParseFormat(formatName)
	if err != nil {
		return nil, szerrors.InvalidArgument(szerrors.ModuleCLI, "setup", "log-format", formatName, "json, text, console or logfmt")
	}

	return szlog.NewWithConfig(szlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   "stringz",
	}).WithCorrelationID(uuid.NewString()), nil
}

// call dispatches a registry method and prints its result
func call(cmd *cobra.Command, method, receiver string, args ...string) error {
	app.logger.Debug("calling method",
		szlog.Field("method", method),
		szlog.Field("args", len(args)))

	v, err := app.registry.Call(method, receiver, args...)
	if err != nil {
		return err
	}
	if v.IsAbsent() {
		app.logger.Info("method returned no value", szlog.Field("method", method))
	}

	fmt.Fprintln(cmd.OutOrStdout(), v.String())
	return nil
}

// padChar returns the --char flag value or the configured pad character
func padChar(flag string) string {
	if flag != "" {
		return flag
	}
	return app.config.GetString("pad.char", stringz.DefaultPadChar)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if verbose && app.logger != nil {
		app.logger.LogError(err)
	}
}
