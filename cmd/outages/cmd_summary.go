package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"outageschedule/pkg/aggregator"
	api "outageschedule/pkg/api/aggregator"
	attr "outageschedule/pkg/api/attribute"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary FILE",
		Short: "Count outages and hours without power per street",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []api.StreetSummary
			err := a.withOutages(cmd.Context(), args[0], func(ctx context.Context, outages <-chan attr.Outage) error {
				var err error
				result, err = aggregator.NewOutagesByStreet(a.cfg.Parser.Workers).Process(ctx, outages)
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if result == nil {
					result = []api.StreetSummary{}
				}
				return enc.Encode(result)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STREET\tOUTAGES\tSPECS\tHOURS\tAVG HOURS")
			for _, s := range result {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", s.Street(), s.Outages(), s.Specs(), s.TotalHours(), s.AverageHours())
			}
			return tw.Flush()
		},
	}
}
