package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iota-uz/hrp/modules/hrp/presentation/mappers"
)

func newAppointeeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "appointee <netid|regid|employee-id>",
		Short: "Fetch an appointee and their appointments (v1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := a.client.Appointees().Get(cmd.Context(), args[0])
			if err != nil {
				return classify(err)
			}
			if ap == nil {
				return withCode(exitNotFound, fmt.Errorf("appointee %q has no person record", args[0]))
			}
			return a.write(cmd.OutOrStdout(), mappers.AppointeeToJSON(ap))
		},
	}
}
