package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	attr "outageschedule/pkg/api/attribute"
)

func newScheduleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule FILE",
		Short: "Parse every row of an outage schedule file",
		Long: `Parse an outage schedule file whose records hold a date, a time
window ("08:30-14:00") and the affected addresses. Use "-" to read stdin.

Rows that cannot be parsed are logged and skipped. Output keeps file order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			return a.withOutages(cmd.Context(), args[0], func(ctx context.Context, outages <-chan attr.Outage) error {
				for o := range outages {
					if a.format == "json" {
						if err := enc.Encode(o); err != nil {
							return err
						}
						continue
					}
					if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", o.Date(), o.Window(), o.Addresses()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
