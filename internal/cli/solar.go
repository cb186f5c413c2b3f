package cli

import (
	"fmt"

	"github.com/chrissnell/uplook/internal/ephemeris"
	"github.com/chrissnell/uplook/pkg/lunar"
	"github.com/chrissnell/uplook/pkg/solar"
	"github.com/spf13/cobra"
)

// Solar report types
const (
	solarSummary = "summary"
	solarChart   = "chart"
	solarTable   = "table"
)

type solarOptions struct {
	latitude    float64
	longitude   float64
	reportType  string
	rows        int
	dataChar    string
	currentChar string
}

func newSolarCommand(s *session) *cobra.Command {
	opts := &solarOptions{}

	cmd := &cobra.Command{
		Use:   "solar",
		Short: "Report the sun's elevation over a day",
		Long: `Print sunrise, zenith and sunset for a location, optionally followed by
an ASCII chart or a table of the hourly solar elevation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runSolar(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.latitude, "lat", 0, "latitude in decimal degrees, north positive (e.g. 51.51)")
	flags.Float64Var(&opts.longitude, "lon", 0, "longitude in decimal degrees, east positive (e.g. -0.12)")
	flags.StringVarP(&opts.reportType, "type", "t", solarSummary, "report type: summary, chart or table")
	flags.IntVar(&opts.rows, "rows", solar.DefaultChartRows, "chart height in rows, clamped to [2, 30]")
	flags.StringVar(&opts.dataChar, "data-char", solar.DefaultDataChar, "character marking the sun's position")
	flags.StringVar(&opts.currentChar, "current-char", solar.DefaultCurrentChar, "character marking the current hour")

	return cmd
}

func (s *session) runSolar(cmd *cobra.Command, opts *solarOptions) error {
	switch opts.reportType {
	case solarSummary, solarChart, solarTable:
	default:
		return fmt.Errorf("%w %q: use summary, chart or table", ErrInvalidType, opts.reportType)
	}

	loc, err := s.resolveLocation(cmd, opts)
	if err != nil {
		return err
	}
	date, dateStr, err := s.resolveDate()
	if err != nil {
		return err
	}

	provider := s.app.provider(lunar.DefaultClassifier())
	summary, ok := provider.DailySummary(date, loc)
	lines := solar.RenderSummary(summary, ok, loc.Latitude, loc.Longitude, dateStr)

	report := solarReport{
		Date:     dateStr,
		Type:     opts.reportType,
		Location: loc,
	}
	if ok {
		report.Summary = &summary
	}

	switch opts.reportType {
	case solarChart:
		chartCfg := solar.ChartConfig{
			Rows:        pick(cmd, "rows", opts.rows, s.cfg.Solar.Rows),
			DataChar:    pick(cmd, "data-char", opts.dataChar, s.cfg.Solar.DataChar),
			CurrentChar: pick(cmd, "current-char", opts.currentChar, s.cfg.Solar.CurrentChar),
			CurrentHour: s.app.now().Hour(),
		}
		if err := validateChar("data-char", chartCfg.DataChar); err != nil {
			return err
		}
		if err := validateChar("current-char", chartCfg.CurrentChar); err != nil {
			return err
		}
		if clamped := solar.ClampRows(chartCfg.Rows); clamped != chartCfg.Rows {
			s.logger.Debugw("chart rows clamped", "requested", chartCfg.Rows, "rows", clamped)
		}

		report.Profile = provider.DailyProfile(date, loc)
		lines = append(lines, solar.RenderChart(report.Profile, chartCfg)...)
	case solarTable:
		report.Profile = provider.DailyProfile(date, loc)
		lines = append(lines, solar.RenderTable(report.Profile)...)
	}

	report.Lines = lines
	return s.formatter.WriteResponse(cmd.OutOrStdout(), lines, report)
}

// resolveLocation combines --lat/--lon with the configured location, flags
// taking precedence per coordinate
func (s *session) resolveLocation(cmd *cobra.Command, opts *solarOptions) (ephemeris.Location, error) {
	latSet := cmd.Flags().Changed("lat")
	lonSet := cmd.Flags().Changed("lon")

	var loc ephemeris.Location
	if s.cfg.Location != nil {
		loc = ephemeris.Location{
			Latitude:  s.cfg.Location.Latitude,
			Longitude: s.cfg.Location.Longitude,
		}
	} else if !latSet || !lonSet {
		return loc, fmt.Errorf("%w: pass --lat and --lon or set location in the config file", ErrMissingLocation)
	}

	if latSet {
		loc.Latitude = opts.latitude
	}
	if lonSet {
		loc.Longitude = opts.longitude
	}

	if !loc.Valid() {
		return loc, fmt.Errorf("%w: latitude %v, longitude %v", ErrInvalidLocation, loc.Latitude, loc.Longitude)
	}
	return loc, nil
}
