package main

import (
	"github.com/spf13/cobra"

	"github.com/iota-uz/hrp/modules/hrp/presentation/mappers"
)

func newWorkerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "worker <netid|regid|employee-id>",
		Short: "Fetch a worker with their current positions (v2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.client.Workers().Get(cmd.Context(), args[0])
			if err != nil {
				return classify(err)
			}
			return a.write(cmd.OutOrStdout(), mappers.WorkerToJSON(w))
		},
	}
}
