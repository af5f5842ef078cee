package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "momoctl",
		Short: "Tools for the MoMo transactions dataset",
		Long: `momoctl prepares and inspects the transaction file served by the API.

Example Usage:
  momoctl sample-xml --output modified_sms_v2.xml
  momoctl import-xml --input modified_sms_v2.xml --output data/transactions.json
  momoctl bench --data data/transactions.json --format yaml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newImportCmd())
	root.AddCommand(newSampleCmd())
	root.AddCommand(newBenchCmd())
	return root
}
