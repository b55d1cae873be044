package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iota-uz/hrp/modules/hrp/presentation/mappers"
	"github.com/iota-uz/hrp/modules/hrp/services"
)

type searchFlags struct {
	changedSince   string
	costCenter     string
	location       string
	supOrg         string
	currentFaculty bool
	pageSize       int
}

func (f *searchFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.changedSince, "changed-since", "", "only records changed since YYYY-MM-DD")
	fs.StringVar(&f.costCenter, "cost-center", "", "cost center code")
	fs.StringVar(&f.location, "location", "", "work location name")
	fs.StringVar(&f.supOrg, "supervisory-organization", "", "supervisory organization name")
	fs.BoolVar(&f.currentFaculty, "current-faculty", false, "current faculty filter")
	fs.IntVar(&f.pageSize, "page-size", 0, "results per page (default from HRPWS_PAGE_SIZE)")
}

// boolFlag returns nil unless the flag was given, so unset filters stay out of the query.
func boolFlag(fs *pflag.FlagSet, name string, v bool) *bool {
	if !fs.Changed(name) {
		return nil
	}
	return &v
}

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search persons or workers",
	}
	cmd.AddCommand(newSearchPersonsCmd(a))
	cmd.AddCommand(newSearchWorkersCmd(a))
	return cmd
}

func newSearchPersonsCmd(a *app) *cobra.Command {
	var (
		flags             searchFlags
		activeAppointment bool
		futureWorker      bool
		workerWID         string
	)

	cmd := &cobra.Command{
		Use:   "persons",
		Short: "Search v3 persons, following every result page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			params := services.PersonSearchParams{
				ActiveAppointment:       boolFlag(fs, "active-appointment", activeAppointment),
				ChangedSinceDate:        flags.changedSince,
				CostCenter:              flags.costCenter,
				CurrentFaculty:          boolFlag(fs, "current-faculty", flags.currentFaculty),
				FutureWorker:            boolFlag(fs, "future-worker", futureWorker),
				Location:                flags.location,
				SupervisoryOrganization: flags.supOrg,
				WorkerWID:               workerWID,
				PageSize:                flags.pageSize,
			}
			persons, err := a.client.Persons().Search(cmd.Context(), params)
			if err != nil {
				return classify(err)
			}
			return a.write(cmd.OutOrStdout(), mappers.PersonsToJSON(persons))
		},
	}
	flags.bind(cmd.Flags())
	cmd.Flags().BoolVar(&activeAppointment, "active-appointment", false, "active appointment filter")
	cmd.Flags().BoolVar(&futureWorker, "future-worker", false, "future worker filter")
	cmd.Flags().StringVar(&workerWID, "worker-wid", "", "worker WID (32 hex characters)")
	return cmd
}

func newSearchWorkersCmd(a *app) *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "workers",
		Short: "Search v2 workers, following every result page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := services.WorkerSearchParams{
				ChangedSinceDate:        flags.changedSince,
				CostCenter:              flags.costCenter,
				CurrentFaculty:          boolFlag(cmd.Flags(), "current-faculty", flags.currentFaculty),
				Location:                flags.location,
				SupervisoryOrganization: flags.supOrg,
				PageSize:                flags.pageSize,
			}
			refs, err := a.client.Workers().Search(cmd.Context(), params)
			if err != nil {
				return classify(err)
			}
			return a.write(cmd.OutOrStdout(), mappers.WorkerRefsToJSON(refs))
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}
