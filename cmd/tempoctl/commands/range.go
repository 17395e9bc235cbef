package commands

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/tempo/internal/logging"
	"github.com/arloliu/tempo/ranges"
)

func newRangeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Normalize and combine ranges",
	}

	binary := func(use, short string, op func(x, y *ranges.Range) (*ranges.Range, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " RANGE RANGE...",
			Short: short,
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				acc, err := a.parseRange(args[0])
				if err != nil {
					return err
				}
				for _, arg := range args[1:] {
					next, err := a.parseRange(arg)
					if err != nil {
						return err
					}
					if acc, err = op(acc, next); err != nil {
						return err
					}
				}
				a.log.Debugw(use, logging.FieldInput, args, logging.FieldSpans, acc.Len())

				return a.printRange(cmd.OutOrStdout(), acc)
			},
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "normalize RANGE",
			Short: "Print a range with overlapping and adjacent spans merged",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := a.parseRange(args[0])
				if err != nil {
					return err
				}
				a.log.Debugw("normalize", logging.FieldInput, args[0], logging.FieldSpans, r.Len())

				return a.printRange(cmd.OutOrStdout(), r)
			},
		},
		binary("union", "Print the union of ranges", (*ranges.Range).Union),
		binary("intersect", "Print the intersection of ranges", (*ranges.Range).Intersect),
		binary("minus", "Print the first range without the others", (*ranges.Range).Minus),
		&cobra.Command{
			Use:   "shift RANGE DELTA",
			Short: "Move every span of a range by DELTA",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := a.parseRange(args[0])
				if err != nil {
					return err
				}
				delta, err := a.parseInstant(args[1])
				if err != nil {
					return err
				}
				if err := r.Shift(delta); err != nil {
					return err
				}

				return a.printRange(cmd.OutOrStdout(), r)
			},
		},
		&cobra.Command{
			Use:   "crop RANGE SPAN",
			Short: "Keep only the part of a range inside SPAN",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := a.parseRange(args[0])
				if err != nil {
					return err
				}
				bound, err := a.parseSpan(args[1])
				if err != nil {
					return err
				}
				if err := r.Crop(bound); err != nil {
					return err
				}

				return a.printRange(cmd.OutOrStdout(), r)
			},
		},
	)

	return cmd
}
