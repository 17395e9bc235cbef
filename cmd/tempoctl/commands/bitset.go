package commands

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/arloliu/tempo/bitset"
	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/internal/logging"
)

func newBitsetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bitset",
		Short: "Combine non-negative frame sets held as bit vectors",
	}

	binary := func(use, short string, op func(x, y *bitset.Range) *bitset.Range) *cobra.Command {
		return &cobra.Command{
			Use:   use + " FRAMES FRAMES...",
			Short: short,
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				acc, err := bitset.Parse(args[0])
				if err != nil {
					return err
				}
				for _, arg := range args[1:] {
					next, err := bitset.Parse(arg)
					if err != nil {
						return err
					}
					acc = op(acc, next)
				}
				a.log.Debugw(use, logging.FieldInput, args, logging.FieldFrames, acc.NumFrames())

				_, err = fmt.Fprintln(cmd.OutOrStdout(), acc)

				return err
			},
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "normalize FRAMES",
			Short: "Print a frame set and its frame count",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := bitset.Parse(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", b, b.NumFrames())

				return err
			},
		},
		binary("union", "Print the union of frame sets", (*bitset.Range).Union),
		binary("intersect", "Print the intersection of frame sets", (*bitset.Range).Intersect),
		binary("minus", "Print the first frame set without the others", (*bitset.Range).Minus),
		&cobra.Command{
			Use:   "shift FRAMES DELTA",
			Short: "Move a frame set by DELTA frames",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := bitset.Parse(args[0])
				if err != nil {
					return err
				}
				delta, err := strconv.ParseInt(args[1], 10, 32)
				if err != nil {
					return errors.Wrapf(errs.ErrInvalidRange, "delta %q", args[1])
				}
				if err := b.Shift(int32(delta)); err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), b)

				return err
			},
		},
		&cobra.Command{
			Use:   "split FRAMES",
			Short: "Print each contiguous run of a frame set on its own line",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := bitset.Parse(args[0])
				if err != nil {
					return err
				}
				for _, part := range b.Split() {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), part); err != nil {
						return err
					}
				}

				return nil
			},
		},
	)

	return cmd
}
