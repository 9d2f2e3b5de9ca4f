package cli

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/spf13/cobra"

	"weatherreport/manager"
)

type Reporter interface {
	Build(ctx context.Context) (manager.Report, error)
}

func New(reporter Reporter) (*cobra.Command, error) {
	var (
		asJSON  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "weather",
		Args:         cobra.NoArgs,
		Short:        "Show the current weather for your location",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := reporter.Build(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			writePanel(cmd.OutOrStdout(), report)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output raw JSON instead of a table")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")

	return cmd, nil
}

func writeJSON(w io.Writer, report manager.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	return encoder.Encode(report)
}
