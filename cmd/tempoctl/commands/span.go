package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/tempo/internal/logging"
)

func newSpanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "span SPAN...",
		Short: "Parse spans and print both notations and the width",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, arg := range args {
				s, err := a.parseSpan(arg)
				if err != nil {
					return err
				}
				a.log.Debugw("span", logging.FieldInput, arg, logging.FieldResult, s.HalfOpen())
				if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", s.String(), s.HalfOpen(), s.Width()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
