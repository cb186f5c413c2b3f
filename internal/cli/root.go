// Package cli wires the solar and lunar reports to cobra commands.
package cli

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/chrissnell/uplook/internal/ephemeris"
	"github.com/chrissnell/uplook/internal/log"
	"github.com/chrissnell/uplook/pkg/config"
	"github.com/chrissnell/uplook/pkg/lunar"
	"github.com/chrissnell/uplook/pkg/responseformat"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidChar     = errors.New("marker must be exactly one character")
	ErrMissingLocation = errors.New("latitude and longitude are required")
	ErrInvalidLocation = errors.New("location out of range")
	ErrInvalidType     = errors.New("invalid report type")
	ErrNoLunarData     = errors.New("lunar data unavailable")
)

// App carries the dependencies the commands take from outside
type App struct {
	Version string
	// Now is the clock used for the default date and the current hour.
	// Nil means time.Now.
	Now func() time.Time
	// NewProvider builds the ephemeris source. Nil means ephemeris.NewCalculator.
	NewProvider func(classifier lunar.Classifier, logger *zap.SugaredLogger) ephemeris.Provider
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now().UTC()
	}
	return a.Now().UTC()
}

func (a *App) provider(classifier lunar.Classifier) ephemeris.Provider {
	logger := log.Named("ephemeris")
	if a.NewProvider == nil {
		return ephemeris.NewCalculator(classifier, logger)
	}
	return a.NewProvider(classifier, logger)
}

// session is the state of one command invocation
type session struct {
	app *App

	configPath string
	logFile    string
	output     string
	date       string
	debug      bool

	cfg       *config.ConfigData
	formatter *responseformat.Formatter
	logger    *zap.SugaredLogger
}

// NewRootCommand builds the uplook command tree
func NewRootCommand(app *App) *cobra.Command {
	if app == nil {
		app = &App{}
	}
	s := &session{app: app}

	root := &cobra.Command{
		Use:   "uplook",
		Short: "Solar and lunar reports for the terminal",
		Long: `uplook prints the sun's path across a day as a summary, an ASCII chart
or a table, and the moon's phase as a summary line or a small glyph.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&s.configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/uplook/config.yaml)")
	flags.StringVar(&s.date, "date", "", "date in YYYY-MM-DD format (default is today in UTC)")
	flags.StringVarP(&s.output, "output", "o", responseformat.Text, "output format: text, json or msgpack")
	flags.BoolVar(&s.debug, "debug", false, "enable debug logging")
	flags.StringVar(&s.logFile, "log-file", "", "write logs to a rotated file instead of stderr")

	root.AddCommand(newSolarCommand(s), newLunarCommand(s))
	return root
}

func (s *session) setup(cmd *cobra.Command) error {
	if err := log.Init(log.Options{Debug: s.debug, File: s.logFile}); err != nil {
		return err
	}
	s.logger = log.Named("cli")

	cfg, err := loadConfig(s.configPath)
	if err != nil {
		return err
	}
	s.cfg = cfg

	output := cfg.Output
	if cmd.Flags().Changed("output") {
		output = s.output
	}
	s.formatter, err = responseformat.NewFormatter(output)
	if err != nil {
		return err
	}

	s.logger.Debugw("command ready",
		"command", cmd.Name(),
		"config", s.configPath,
		"output", s.formatter.Format())
	return nil
}

// loadConfig reads the config file. A missing file at the default path
// yields the built-in defaults; a missing explicit file is an error.
func loadConfig(path string) (*config.ConfigData, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Defaults(), nil
		}
		path = defaultPath
	}

	provider := config.NewYAMLProvider(path)
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		if errors.Is(err, config.ErrNoConfig) && !explicit {
			return config.Defaults(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveDate returns midnight UTC of the requested date and its
// YYYY-MM-DD form
func (s *session) resolveDate() (time.Time, string, error) {
	if s.date == "" {
		y, m, d := s.app.now().Date()
		date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return date, date.Format(time.DateOnly), nil
	}

	date, err := time.Parse(time.DateOnly, s.date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s.date)
	}
	return date, date.Format(time.DateOnly), nil
}

func validateChar(flag, value string) error {
	if utf8.RuneCountInString(value) != 1 {
		return fmt.Errorf("--%s %q: %w", flag, value, ErrInvalidChar)
	}
	return nil
}

// pick returns the flag value when the user set it, otherwise the configured one
func pick[T any](cmd *cobra.Command, flag string, flagValue, configured T) T {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}
	return configured
}
