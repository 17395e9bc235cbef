package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/tempo/instant"
	"github.com/arloliu/tempo/internal/logging"
)

func newTimecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timecode TIMECODE...",
		Short: "Resolve SMPTE timecodes to microseconds and frames",
		Long: `Each TIMECODE is HH:MM:SS:FF, HH:MM:SS;FF or HH:MM:SS. The output lists the
timecode, its time in microseconds and the frame holding it at the
configured rate.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tc := range args {
				t, err := instant.ParseTimecode(tc, a.rate)
				if err != nil {
					return err
				}
				f, err := a.rate.AsFrame(t)
				if err != nil {
					return err
				}
				a.log.Debugw("timecode", logging.FieldInput, tc, logging.FieldRate, a.rate.String())
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", tc, t, f); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
