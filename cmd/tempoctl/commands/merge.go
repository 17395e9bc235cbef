package commands

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/internal/logging"
	"github.com/arloliu/tempo/multitrack"
	"github.com/arloliu/tempo/rlmap"
)

func newMergeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge TRACK...",
		Short: "Merge labelled tracks into homogeneous segments",
		Long: `Each TRACK is a list of SPAN=LABEL pairs separated by semicolons, such as
"1:9=a; 30:31=b". Later pairs overwrite earlier ones where they overlap.
Every output line is one segment followed by the label of each track, or "-"
where a track has none.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.Component(a.log, "merge")

			tracks := make([]multitrack.Track, len(args))
			for i, arg := range args {
				m, err := a.parseTrack(arg)
				if err != nil {
					log.Debugw("rejected track", logging.FieldInput, arg, logging.FieldError, err)
					return errors.Wrapf(err, "track %d", i+1)
				}
				tracks[i] = multitrack.FromMap(m)
			}

			merged, err := multitrack.New(tracks...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			n := 0
			for seg := range merged.All() {
				labels := make([]string, len(seg.Values))
				for i, v := range seg.Values {
					labels[i] = "-"
					if v != nil {
						labels[i] = fmt.Sprint(v)
					}
				}
				if _, err := fmt.Fprintf(w, "%s\t%s\n", a.formatSpan(seg.Span), strings.Join(labels, "\t")); err != nil {
					return err
				}
				n++
			}
			log.Debugw("merged", logging.FieldTracks, len(tracks), logging.FieldSegments, n)

			return nil
		},
	}
}

func (a *app) parseTrack(s string) (*rlmap.Map[string], error) {
	m, err := rlmap.New[string](rlmap.WithUnit(a.unit))
	if err != nil {
		return nil, err
	}

	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		text, label, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(label) == "" {
			return nil, errors.Wrapf(errs.ErrInvalidRange, "missing label in %q", pair)
		}
		span, err := a.parseSpan(text)
		if err != nil {
			return nil, err
		}
		if err := m.SetSpan(span, strings.TrimSpace(label)); err != nil {
			return nil, err
		}
	}

	return m, nil
}
