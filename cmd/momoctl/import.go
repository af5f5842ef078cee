package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"momoapi/internal/logger"
	"momoapi/internal/store"
	"momoapi/internal/xmlimport"
)

type importOptions struct {
	input        string
	output       string
	createSample bool
	strict       bool
}

func newImportCmd() *cobra.Command {
	opts := importOptions{}

	cmd := &cobra.Command{
		Use:   "import-xml",
		Short: "Convert an SMS XML export into the transaction JSON file",
		Long: `import-xml reads every <sms> element of the input document and writes the
resulting transactions to the output file the API server loads at startup.

With --strict, records that fail transaction validation are left out and
reported instead of being written as parsed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "modified_sms_v2.xml", "SMS XML export to read")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "data/transactions.json", "Transaction JSON file to write")
	cmd.Flags().BoolVar(&opts.createSample, "create-sample", false, "Write the sample export first when the input file does not exist")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Drop records that fail validation")
	return cmd
}

func runImport(opts importOptions, out io.Writer) error {
	log := logger.Named("import")

	if _, err := os.Stat(opts.input); errors.Is(err, fs.ErrNotExist) && opts.createSample {
		log.Infow("input not found, creating sample", "path", opts.input)
		if err := writeSampleFile(opts.input); err != nil {
			return err
		}
	}

	f, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	records, err := xmlimport.Parse(f)
	if err != nil {
		return err
	}

	if opts.strict {
		admitted, rejected := xmlimport.Admit(records)
		for _, r := range rejected {
			log.Warnw("record rejected", "id", r.ID, "reason", r.Reason)
		}
		records = admitted
	}

	if err := store.NewJSONFilePersister(opts.output, "").Save(records); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Fprintf(out, "Parsed %d transactions\n", len(records))
	fmt.Fprintf(out, "Saved to %s\n", opts.output)
	return nil
}

func newSampleCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample-xml",
		Short: "Write a sample SMS XML export with 25 transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeSampleFile(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created sample XML: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "modified_sms_v2.xml", "File to write")
	return cmd
}

func writeSampleFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sample: %w", err)
	}
	if err := xmlimport.WriteSample(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write sample: %w", err)
	}
	return f.Close()
}
