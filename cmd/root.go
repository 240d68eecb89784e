package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"plexcsv/config"
	"plexcsv/export"
	"plexcsv/lockfile"
	"plexcsv/plex"
)

// Exit codes surfaced to the invoking shell.
const (
	exitOK = iota
	exitError
	exitNetwork
	exitAlreadyExists
	exitUnsupported
)

var (
	cfgFile string
	quiet   bool

	cfg        *config.Config
	logger     zerolog.Logger
	plexClient *plex.Client
	lock       *lockfile.Lock

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "plexcsv",
	Short: "Export Plex library metadata to CSV files",
	Long: `plexcsv is a CLI tool that exports the catalog metadata of your Plex
libraries (movies, TV shows, music albums) to CSV files, one file per
library, fetching the server's collections page by page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion records the version information injected at build time.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	releaseLock()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, logger, client and the
// single-instance lock. Attached as PreRunE to the commands that talk
// to the server.
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Plex client
	plexClient, err = plex.NewClient(cfg.Plex.URL, cfg.Plex.Token, logger,
		plex.WithPageDelay(cfg.Export.PageDelay),
		plex.WithRetryDelay(cfg.Export.RetryDelay),
		plex.WithVersion(appVersion),
	)
	if err != nil {
		return fmt.Errorf("failed to create Plex client: %w", err)
	}

	// Only one instance may run at a time.
	lock = lockfile.New(cfg.Export.LockFile)
	if err := lock.Acquire(); err != nil {
		return err
	}
	releaseOnSignal()

	return nil
}

func releaseLock() {
	if lock != nil {
		lock.Release()
	}
}

// releaseOnSignal makes sure an interrupted run still drops the lock.
// In-flight writes are not rolled back.
func releaseOnSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		releaseLock()
		os.Exit(exitError)
	}()
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
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

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// exitCode maps an error to the documented result codes.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	switch {
	case errors.Is(err, export.ErrAlreadyExists):
		return exitAlreadyExists
	case errors.Is(err, export.ErrUnsupportedLibrary):
		return exitUnsupported
	case errors.Is(err, plex.ErrSizeUnavailable):
		return exitNetwork
	}

	var pageErr *plex.PageError
	if errors.As(err, &pageErr) {
		return exitNetwork
	}
	var apiErr *plex.APIError
	if errors.As(err, &apiErr) {
		return exitNetwork
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return exitNetwork
	}

	return exitError
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plexcsv %s (built %s)\n", appVersion, appBuildTime)
	},
}
