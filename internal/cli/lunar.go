package cli

import (
	"fmt"

	"github.com/chrissnell/uplook/pkg/lunar"
	"github.com/spf13/cobra"
)

// Lunar report types
const (
	lunarImage    = "image"
	lunarSummary  = "summary"
	lunarCombined = "combined"
)

type lunarOptions struct {
	reportType string
	char       string
	halfMoon   bool
}

func newLunarCommand(s *session) *cobra.Command {
	opts := &lunarOptions{}

	cmd := &cobra.Command{
		Use:   "lunar",
		Short: "Report the moon's phase for a date",
		Long: `Print the moon's phase and illuminated fraction at 00:00 UTC of a date,
as a summary line, an ASCII glyph, or both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runLunar(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.reportType, "type", "t", lunarSummary, "report type: image, summary or combined")
	flags.StringVar(&opts.char, "char", lunar.DefaultImageChar, "character used to draw the moon")
	flags.BoolVar(&opts.halfMoon, "half-moon", false, "report a narrow band around 50% illumination as Half Moon")

	return cmd
}

func (s *session) runLunar(cmd *cobra.Command, opts *lunarOptions) error {
	switch opts.reportType {
	case lunarImage, lunarSummary, lunarCombined:
	default:
		return fmt.Errorf("%w %q: use image, summary or combined", ErrInvalidType, opts.reportType)
	}

	char := pick(cmd, "char", opts.char, s.cfg.Lunar.Char)
	if err := validateChar("char", char); err != nil {
		return err
	}

	date, dateStr, err := s.resolveDate()
	if err != nil {
		return err
	}

	classifier := lunar.Classifier{
		FullMoonAge:  s.cfg.Lunar.FullMoonAge,
		HalfMoonBand: pick(cmd, "half-moon", opts.halfMoon, s.cfg.Lunar.HalfMoon),
	}
	moon, ok := s.app.provider(classifier).Moon(date)
	if !ok {
		return fmt.Errorf("%w for %s", ErrNoLunarData, dateStr)
	}

	var lines []string
	if opts.reportType != lunarImage {
		lines = append(lines, lunar.RenderSummary(moon.Phase, moon.Illumination, dateStr)...)
	}
	if opts.reportType != lunarSummary {
		image, err := lunar.RenderImage(moon.Phase, char)
		if err != nil {
			return err
		}
		lines = append(lines, image...)
	}

	return s.formatter.WriteResponse(cmd.OutOrStdout(), lines, lunarReport{
		Date:            dateStr,
		Type:            opts.reportType,
		Phase:           moon.Phase,
		Fraction:        moon.Illumination,
		Illuminated:     lunar.PercentString(moon.Illumination),
		AgeDays:         moon.AgeDays,
		Elongation:      moon.Elongation,
		Waxing:          moon.IsWaxing,
		PreviousNewMoon: moon.PreviousNewMoon,
		Lines:           lines,
	})
}
