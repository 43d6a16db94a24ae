package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshuapare/ifrkit/pkg/ifr"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	strict  bool

	inputEncoding string
	cfgFile       string

	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "ifrctl",
	Short: "Inspect UEFI IFR dumps and build setup_var scripts",
	Long: `ifrctl parses verbose IFRExtractor dumps of UEFI firmware, lists the
BIOS settings they describe, and turns staged value changes into setup_var.efi
scripts that apply those changes from the UEFI shell.`,
	Version: "0.1.0",
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.ifrctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Treat defective records as fatal")
	rootCmd.PersistentFlags().
		StringVar(&inputEncoding, "input-encoding", "", "Dump text encoding (utf8, utf16le; default autodetect)")
}

// initConfig wires logging, then loads defaults from a config file and
// IFRCTL_* environment variables. Flags still win over both.
func initConfig() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}).
		Level(level).
		With().Timestamp().Logger()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".ifrctl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("IFRCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("export.command", "setup_var.efi")
	viper.SetDefault("export.encoding", "utf8")

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug().Str("config", viper.ConfigFileUsed()).Msg("loaded config file")
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOptions assembles the parse options shared by every dump-reading command.
func parseOptions() ifr.ParseOptions {
	return ifr.ParseOptions{
		InputEncoding: normalizeEncoding(inputEncoding),
		Strict:        strict,
	}
}

// normalizeEncoding maps the CLI spellings onto the codec names.
func normalizeEncoding(enc string) string {
	switch strings.ToLower(enc) {
	case "", "auto":
		return ""
	case "utf8", "utf-8":
		return "UTF-8"
	case "utf16le", "utf-16le", "utf16":
		return "UTF-16LE"
	default:
		return enc
	}
}

// openDump parses a dump and reports defective records up front, so every
// command shares the same partial-success behavior.
func openDump(path string) (*ifr.Catalog, error) {
	printVerbose("Parsing dump: %s\n", path)
	catalog, defects, err := ifr.ParseFile(path, parseOptions())
	if err != nil {
		return nil, err
	}
	for _, d := range defects {
		logger.Debug().Int("line", d.Line).Str("record", d.Snippet).Err(d.Err).Msg("skipped record")
	}
	if len(defects) > 0 {
		printVerbose("Skipped %d defective record(s); use --strict to fail instead\n", len(defects))
	}
	return catalog, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
