package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/twit/config"
	"github.com/s0up4200/twit/twit"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	cfgFile    string
	logLevel   string
	cfg        *config.Config
	logger     zerolog.Logger
	twitClient *twit.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "twit",
	Short: "A command-line client for the TWiT.tv API",
	Long: `twit queries the TWiT.tv API for shows, episodes, live streams and people
and prints a short summary of each response.

Credentials are read from credentials.yml:

  twit_api:
    app_id: your-app-id
    app_key: your-app-key
    base_url: https://twit.tv/api/v1.0   # optional`,
	Version:           fmt.Sprintf("%s (built %s)", version, buildTime),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version info
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "credentials file (default is ./credentials.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	// Override log level from command line if specified
	if cmd.Flags().Changed("log-level") {
		if err := config.ValidateLogLevel(logLevel); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.Logging.Level = logLevel
	}

	// Setup logger
	logger = setupLogger(cfg.Logging, os.Stderr)

	// Create TWiT client
	twitClient, err = twit.NewClient(cfg.TwitAPI.AppID, cfg.TwitAPI.AppKey, logger,
		twit.WithBaseURL(cfg.TwitAPI.BaseURL),
		twit.WithUserAgent("twit/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create TWiT client: %w", err)
	}

	logger.Debug().
		Str("base_url", twitClient.BaseURL()).
		Str("app_id", cfg.TwitAPI.AppID).
		Msg("TWiT client ready")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
