package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <note...>",
		Short: "Parse a raw intake note",
		Long: "Sends a raw intake note to the API server for LLM extraction and\n" +
			"normalization, and prints the resulting record with its economics.",
		Example: `  intakectl parse "Rick Owens ramones sz 12 condition 9 paid 300 sell 900"

  # Words are joined, so quoting is optional
  intakectl parse Maria consignment 70/30 split selling for 100`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.Parse(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			return printParseResult(result)
		},
	}
}
