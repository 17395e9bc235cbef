package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
	"github.com/arloliu/tempo/internal/logging"
	"github.com/arloliu/tempo/ranges"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		to        string
		timecodes bool
	)

	cmd := &cobra.Command{
		Use:   "convert RANGE",
		Short: "Convert a range between frames and microseconds at the configured rate",
		Long: `Convert reads RANGE in the configured unit and prints it in the unit named
by --to. With --timecode every span is printed as a pair of SMPTE timecodes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.parseRange(args[0])
			if err != nil {
				return err
			}

			if timecodes {
				splice, err := r.Splice(a.rate)
				if err != nil {
					return err
				}
				for _, sec := range splice {
					start, end := sec.Timecodes(a.rate.FPS())
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", start, end); err != nil {
						return err
					}
				}

				return nil
			}

			var conv func(instant.Span) (instant.Span, error)
			switch to {
			case "time":
				conv = a.rate.SpanAsTime
			case "frame":
				conv = a.rate.SpanAsFrame
			default:
				return errors.Wrapf(errs.ErrInvalidOption, "target unit %q", to)
			}

			out, err := convertRange(r, conv)
			if err != nil {
				return err
			}
			a.log.Debugw("convert", logging.FieldInput, args[0], logging.FieldRate, a.rate.String(), logging.FieldResult, out.String())

			return a.printRange(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&to, "to", "time", "target unit: frame or time")
	cmd.Flags().BoolVar(&timecodes, "timecode", false, "print spans as SMPTE timecodes")

	return cmd
}

func convertRange(r *ranges.Range, conv func(instant.Span) (instant.Span, error)) (*ranges.Range, error) {
	var out *ranges.Range
	for s := range r.All() {
		c, err := conv(s)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = ranges.Empty(c.Unit())
		}
		if _, err := out.Add(c); err != nil {
			return nil, err
		}
	}
	if out == nil {
		out = ranges.Empty(format.UnitNone)
	}

	return out, nil
}
