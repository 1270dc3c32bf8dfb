package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zoobzio/specql"
)

func newDialectsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROW LIMIT\tHAVING\tRIGHT/FULL JOIN\tDISTINCT+ORDER BY\tLIMIT NEEDS ORDER BY\tSTRICT GROUP BY")

			for _, d := range specql.Dialects() {
				r, err := specql.Lookup(d)
				if err != nil {
					return err
				}
				caps := r.Capabilities()

				rowLimit := "LIMIT n"
				if caps.RowLimit == specql.RowLimitTop {
					rowLimit = "TOP n"
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					d,
					rowLimit,
					yesNo(caps.Having),
					yesNo(caps.RightJoin && caps.FullJoin),
					yesNo(caps.DistinctWithOrderBy),
					yesNo(caps.LimitRequiresOrderBy),
					yesNo(caps.StrictGroupBy),
				)
			}

			a.logger.Debug("listed dialects", "count", len(specql.Dialects()))
			return w.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
