// Package commands holds the cobra command tree of tempoctl.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
	"github.com/arloliu/tempo/internal/config"
	"github.com/arloliu/tempo/internal/logging"
	"github.com/arloliu/tempo/ranges"
)

// app is the state shared by every command, resolved before any of them runs.
type app struct {
	log      *zap.SugaredLogger
	unit     format.Unit
	rate     instant.FrameRate
	notation format.Notation
}

// NewRoot returns the tempoctl command tree.
func NewRoot() *cobra.Command {
	a := &app{log: logging.Nop()}

	root := &cobra.Command{
		Use:   "tempoctl",
		Short: "Evaluate frame and time interval expressions",
		Long: `tempoctl parses, combines and prints frame or time intervals.

Ranges use the annotation notation "12:19 24 30:100" or half-open pairs
"[12,20) [24,25)". Bitsets take non-negative inclusive frames "1:5, 9".

Examples:
  tempoctl span 11:20
  tempoctl range union "1:9, 30:31" "10:12"
  tempoctl range shift "1:9" 100
  tempoctl bitset split "1:5, 9, 12:20"
  tempoctl merge "1:9=a" "5:20=b"
  tempoctl convert --to time "1:30"
  tempoctl timecode 00:00:10:00`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (toml, yaml or json)")
	flags.String("unit", "frame", "axis unit: frame or time")
	flags.Int64("rate-frames", 30, "frame rate numerator, frames")
	flags.Int64("rate-seconds", 1, "frame rate denominator, seconds")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.Bool("log-json", false, "log JSON lines to stderr")
	flags.String("notation", "inclusive", "output notation: inclusive or halfopen")

	root.AddCommand(
		newSpanCmd(a),
		newRangeCmd(a),
		newBitsetCmd(a),
		newMergeCmd(a),
		newConvertCmd(a),
		newTimecodeCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	file, err := flags.GetString("config")
	if err != nil {
		return err
	}
	v, err := config.New(file)
	if err != nil {
		return err
	}
	if err := config.BindFlags(v, flags); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	if a.unit, err = cfg.AxisUnit(); err != nil {
		return err
	}
	if a.rate, err = cfg.FrameRate(); err != nil {
		return err
	}

	notation, err := flags.GetString("notation")
	if err != nil {
		return err
	}
	if a.notation, err = parseNotation(notation); err != nil {
		return err
	}

	log, err := logging.New(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	if err != nil {
		return err
	}
	a.log = log.With(logging.FieldCommand, cmd.CommandPath())
	a.log.Debugw("configured", logging.FieldUnit, a.unit, logging.FieldRate, a.rate.String())

	return nil
}

func parseNotation(s string) (format.Notation, error) {
	switch strings.ToLower(s) {
	case "inclusive", "i":
		return format.NotationInclusive, nil
	case "halfopen", "half-open", "h":
		return format.NotationHalfOpen, nil
	default:
		return 0, errors.Wrapf(errs.ErrInvalidOption, "notation %q", s)
	}
}

func (a *app) parseRange(s string) (*ranges.Range, error) {
	if a.unit == format.UnitTime {
		return ranges.ParseTimeRange(s)
	}

	return ranges.ParseFrameRange(s)
}

func (a *app) parseSpan(s string) (instant.Span, error) {
	if a.unit == format.UnitTime {
		return instant.ParseTimeSpan(s)
	}

	return instant.ParseFrameSpan(s)
}

func (a *app) parseInstant(s string) (instant.Instant, error) {
	if a.unit == format.UnitTime {
		return instant.ParseTime(s)
	}

	return instant.ParseFrame(s)
}

func (a *app) formatSpan(s instant.Span) string {
	return s.Format(a.notation)
}

func (a *app) printRange(w io.Writer, r *ranges.Range) error {
	_, err := fmt.Fprintln(w, r.Format(a.notation))
	return err
}
