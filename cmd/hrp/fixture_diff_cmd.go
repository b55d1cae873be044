package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wI2L/jsondiff"

	"github.com/iota-uz/hrp/modules/hrp"
)

// fixtureDiff is one resource compared between the mock files and the live service.
type fixtureDiff struct {
	Path       string         `json:"path" yaml:"path"`
	MockStatus int            `json:"mock_status" yaml:"mock_status"`
	LiveStatus int            `json:"live_status" yaml:"live_status"`
	Patch      jsondiff.Patch `json:"patch" yaml:"patch"`
}

func newFixtureDiffCmd(a *app) *cobra.Command {
	var failOnDiff bool

	cmd := &cobra.Command{
		Use:   "fixture-diff <resource-path>...",
		Short: "Compare mock resources with the live service as JSON patches (mock to live)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.NewEntry(a.conf.Logger())
			mock := hrp.NewMockFetcher(a.conf, logger)
			live, err := hrp.NewLiveFetcher(a.conf, logger)
			if err != nil {
				return withCode(exitValidation, wrapf(err, "build live fetcher"))
			}

			drifted := 0
			diffs := make([]fixtureDiff, 0, len(args))
			for _, path := range args {
				if !strings.HasPrefix(path, "/") {
					return withCode(exitUsage, fmt.Errorf("resource path %q must start with /", path))
				}
				mockResp, err := mock.GetURL(cmd.Context(), path)
				if err != nil {
					return withCode(exitUpstream, wrapf(err, "mock %s", path))
				}
				liveResp, err := live.GetURL(cmd.Context(), path)
				if err != nil {
					return withCode(exitUpstream, wrapf(err, "live %s", path))
				}

				d := fixtureDiff{Path: path, MockStatus: mockResp.Status, LiveStatus: liveResp.Status}
				if mockResp.Status == http.StatusOK && liveResp.Status == http.StatusOK {
					d.Patch, err = jsondiff.CompareJSON(mockResp.Body, liveResp.Body)
					if err != nil {
						return withCode(exitUpstream, wrapf(err, "compare %s", path))
					}
				}
				if len(d.Patch) > 0 || d.MockStatus != d.LiveStatus {
					drifted++
				}
				diffs = append(diffs, d)
			}

			if err := a.write(cmd.OutOrStdout(), diffs); err != nil {
				return err
			}
			if failOnDiff && drifted > 0 {
				return withCode(exitDrift, fmt.Errorf("%d of %d resources differ from the live service", drifted, len(args)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnDiff, "fail-on-diff", false, "exit non-zero when any resource differs")
	return cmd
}
