package main

import (
	"github.com/spf13/cobra"

	"github.com/iota-uz/hrp/modules/hrp/presentation/mappers"
)

func newPersonCmd(a *app) *cobra.Command {
	var includeFuture bool

	cmd := &cobra.Command{
		Use:   "person <netid|regid|employee-id>",
		Short: "Fetch a person with their active worker details (v3)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.Persons().Get(cmd.Context(), args[0], includeFuture)
			if err != nil {
				return classify(err)
			}
			return a.write(cmd.OutOrStdout(), mappers.PersonToJSON(p))
		},
	}
	cmd.Flags().BoolVar(&includeFuture, "include-future", false, "include positions of a future worker record")
	return cmd
}
