package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkviz/pkg/detect"
	"github.com/matzehuels/linkviz/pkg/io"
	"github.com/matzehuels/linkviz/pkg/render/nodelink"
)

// dotCommand creates the dot command, which prints the DOT description.
func (c *CLI) dotCommand() *cobra.Command {
	var title string
	var detailed bool

	cmd := &cobra.Command{
		Use:     "dot <fixture>",
		Short:   "Print the DOT description of a list fixture",
		Example: `  linkviz dot list.json | dot -Tsvg > list.svg`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := io.ImportFixture(args[0])
			if err != nil {
				return err
			}
			if title == "" {
				title = loaded.Title
			}
			report := detect.Run(loaded.Arena)
			return nodelink.WriteDOT(c.Out, report, nodelink.Options{Title: title, Detailed: detailed})
		},
	}

	cmd.ValidArgsFunction = completeFixture
	cmd.Flags().StringVar(&title, "title", "", "graph title (default from fixture, then \"Linked List\")")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show node references in records")
	return cmd
}
