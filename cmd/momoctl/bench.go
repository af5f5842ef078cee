package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"momoapi/internal/index"
	"momoapi/internal/store"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type benchOptions struct {
	data     string
	searches int
	format   string
	seed     int64
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare linear search with the hash index over a transaction file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "data/transactions.json", "Transaction JSON file to search")
	cmd.Flags().IntVarP(&opts.searches, "searches", "n", 1000, "Number of random lookups per strategy")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "Output format: text, json or yaml")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed for the lookup targets (0 uses the clock)")
	return cmd
}

func runBench(opts benchOptions, out io.Writer) error {
	switch opts.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	records, err := store.NewJSONFilePersister(opts.data, "").Load()
	if errors.Is(err, store.ErrSourceMissing) {
		return fmt.Errorf("data file %s not found", opts.data)
	}
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	metrics := index.Compare(records, opts.searches, rand.New(rand.NewSource(seed)))
	if metrics == nil {
		return errors.New("no transactions to search")
	}

	switch opts.format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(metrics)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(metrics)
	default:
		return printMetrics(out, metrics)
	}
}

func printMetrics(out io.Writer, m *index.Metrics) error {
	_, err := fmt.Fprintf(out, `Dataset size:     %d transactions
Searches:         %d
Index build time: %.4f ms

Linear search:    %.4f ms total, %.6f ms avg
Hash index:       %.4f ms total, %.6f ms avg
Speedup:          %.2fx
Mismatches:       %d
`,
		m.DatasetSize, m.NumSearches, m.BuildTimeMs,
		m.LinearTotalMs, m.LinearAvgMs,
		m.IndexTotalMs, m.IndexAvgMs,
		m.Speedup, m.Mismatches,
	)
	return err
}
