package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"labelprep/pkg/stats"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <input.csv>",
		Short: "Print the class distribution of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, d, err := a.loadDataset(args[0])
			if err != nil {
				return err
			}
			summaries := stats.Summarize(d)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tCOUNT\tSHARE\tMEAN")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%s%%\t%v\n",
					s.Label,
					humanize.Comma(int64(s.Count)),
					humanize.FtoaWithDigits(s.Share*100, 2),
					formatMeans(s.Mean))
			}
			fmt.Fprintf(w, "\nsamples: %s, features: %d, labels: %d, imbalance: %s\n",
				humanize.Comma(int64(tbl.Arrays.Len())),
				len(tbl.Features),
				len(summaries),
				humanize.FtoaWithDigits(stats.ImbalanceRatio(summaries), 2))
			return w.Flush()
		},
	}
}

func formatMeans(means []float64) []string {
	out := make([]string, len(means))
	for i, m := range means {
		out[i] = humanize.FtoaWithDigits(m, 3)
	}
	return out
}
