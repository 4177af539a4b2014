package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"adspend/internal/adapter/file"
	"adspend/internal/config"
	"adspend/internal/core/pricing"
)

func computeCmd(cfg *config.Config) *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Price a CSV of ad records",
		Long: `Reads ad records (platform,type,impressions) as CSV and writes them back
with an expenditure column. The batch fails on the first unknown platform,
ad type or missing rate and nothing is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			var buf bytes.Buffer
			if err := compute(cfg.RateCard.File, in, &buf, cmd.ErrOrStderr()); err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			return replaceFile(output, buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "CSV file with ad records, - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "CSV file for results, - for stdout")
	return cmd
}

// compute prices records read from in and writes the augmented CSV to out.
// A per-platform summary goes to summary.
func compute(rateCardFile string, in io.Reader, out, summary io.Writer) error {
	card, err := file.LoadRateCard(rateCardFile)
	if err != nil {
		return fmt.Errorf("load rate card: %w", err)
	}
	records, err := file.ReadRecords(in)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}

	reg := pricing.NewRegistry(card)
	results, err := pricing.NewExpenditureService(reg).ComputeAll(records)
	if err != nil {
		return err
	}
	if err = file.WriteResults(out, results); err != nil {
		return err
	}

	sum := pricing.Summarize(results)
	for _, p := range reg.Platforms() {
		if total, ok := sum.ByPlatform[p]; ok {
			fmt.Fprintf(summary, "%-10s %s\n", p, total)
		}
	}
	fmt.Fprintf(summary, "%-10s %s (%d records, %d impressions)\n", "total", sum.Total, len(results), sum.Impressions)
	return nil
}

// replaceFile writes data to a temporary file next to path and renames it
// over path, so a failed write leaves any previous content in place.
func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
