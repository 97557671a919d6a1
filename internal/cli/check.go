package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkviz/pkg/detect"
	"github.com/matzehuels/linkviz/pkg/io"
)

// checkCommand creates the check command, which runs detection only.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <fixture>",
		Short: "Report list anomalies without rendering",
		Long: `Walk a list fixture and report cycles, self-loops, dangling and
suspicious links. With --strict the command fails when any anomaly is found,
which makes it usable in scripts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := io.ImportFixture(args[0])
			if err != nil {
				return err
			}

			report := detect.Run(loaded.Arena)
			printKeyValue("nodes", fmt.Sprintf("%d", report.Len()))
			printKeyValue("cycle", yesNo(report.HasCycle))
			printKeyValue("anomalies", fmt.Sprintf("%d", len(report.Anomalies)))
			printReport(report)

			if report.Healthy() {
				printSuccess("No anomalies")
				return nil
			}
			if strict {
				return fmt.Errorf("%s: %d anomalies detected", args[0], len(report.Anomalies))
			}
			return nil
		},
	}

	cmd.ValidArgsFunction = completeFixture
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when anomalies are found")
	return cmd
}

// printReport prints one warning per anomaly in discovery order.
func printReport(r *detect.Report) {
	for _, msg := range r.Messages() {
		printWarning("%s", msg)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
