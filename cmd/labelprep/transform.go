package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"labelprep/pkg/data"
	"labelprep/pkg/dataset"
)

func newShuffleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle <input.csv> <output.csv>",
		Short: "Shuffle samples and labels together",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, d, err := a.loadDataset(args[0])
			if err != nil {
				return err
			}
			out := dataset.ToArrays(d, a.seed())
			a.log.Infof("Shuffled %d samples", out.Len())
			return data.WriteCSV(a.fs, args[1], tbl.Features, tbl.LabelName, out)
		},
	}
}

func newReduceCmd(a *app) *cobra.Command {
	var label string
	var noShuffle bool
	cmd := &cobra.Command{
		Use:   "reduce <input.csv> <output.csv>",
		Short: "Keep only a proportion of one class",
		Long: `Keep floor(count*proportion) samples of one label and copy every other
label unchanged. Without --label the smallest label (in sort order) is reduced.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, d, err := a.loadDataset(args[0])
			if err != nil {
				return err
			}
			opts := []dataset.Option{a.seed(), dataset.WithShuffle(!noShuffle)}
			var out dataset.Dataset[string, float64]
			target := label
			if cmd.Flags().Changed("label") {
				out, err = dataset.ReduceClassOf(d, label, a.cfg.Proportion, opts...)
			} else {
				out, target, err = dataset.ReduceClass(d, a.cfg.Proportion, opts...)
			}
			if err != nil {
				return err
			}
			a.log.WithField("label", target).
				Infof("Reduced from %d to %d samples", len(d[target]), len(out[target]))
			return data.WriteDataset(a.fs, args[1], tbl.Features, tbl.LabelName, out)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&label, "label", "", "label to reduce")
	flags.BoolVar(&noShuffle, "no-shuffle", false, "keep the first samples instead of a random subset")
	flags.Float64("proportion", 0.2, "proportion of the label's samples to keep, within [0, 1]")
	checkNoErr(a.v.BindPFlag("proportion", flags.Lookup("proportion")))
	return cmd
}

func newBalanceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance <input.csv> <output.csv>",
		Short: "Give the most frequent classes the same number of samples",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := a.load(args[0])
			if err != nil {
				return err
			}
			out, err := dataset.Balance(tbl.Arrays, dataset.WithLabelNumber(a.cfg.Labels))
			if err != nil {
				return err
			}
			a.log.Infof("Kept %d labels with %d samples each", len(out), out.Len()/len(out))
			return data.WriteDataset(a.fs, args[1], tbl.Features, tbl.LabelName, out)
		},
	}
	flags := cmd.Flags()
	flags.Int("labels", 0, "number of most frequent labels to keep, 0 keeps all")
	checkNoErr(a.v.BindPFlag("labels", flags.Lookup("labels")))
	return cmd
}

func newSplitCmd(a *app) *cobra.Command {
	var shuffle bool
	cmd := &cobra.Command{
		Use:   "split <input.csv> <train.csv> <test.csv>",
		Short: "Split every class into train and test sets",
		Long: `For every label, the first floor(count*test-rate) samples go to the test
file and the rest to the train file. Use --shuffle for a random split.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, d, err := a.loadDataset(args[0])
			if err != nil {
				return err
			}
			if shuffle {
				d, err = dataset.Group(dataset.ToArrays(d, a.seed()))
				if err != nil {
					return err
				}
			}
			train, test, err := dataset.TrainTestSplit(d, a.cfg.TestRate)
			if err != nil {
				return err
			}
			a.log.Infof("Split into %d train and %d test samples", train.Len(), test.Len())
			if err := data.WriteDataset(a.fs, args[1], tbl.Features, tbl.LabelName, train); err != nil {
				return err
			}
			return data.WriteDataset(a.fs, args[2], tbl.Features, tbl.LabelName, test)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&shuffle, "shuffle", false, "shuffle every class before splitting")
	flags.Float64("test-rate", 0.2, "proportion of every class sent to the test set")
	checkNoErr(a.v.BindPFlag("test_rate", flags.Lookup("test-rate")))
	return cmd
}

func newKFoldCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kfold <input.csv> <output-dir>",
		Short: "Write stratified k-fold train/test files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, d, err := a.loadDataset(args[0])
			if err != nil {
				return err
			}
			folds, err := dataset.KFold(d, a.cfg.Folds, a.seed())
			if err != nil {
				return err
			}
			if err := a.fs.MkdirAll(args[1], 0o755); err != nil {
				return err
			}
			for i, f := range folds {
				train := filepath.Join(args[1], fmt.Sprintf("fold-%d-train.csv", i))
				test := filepath.Join(args[1], fmt.Sprintf("fold-%d-test.csv", i))
				if err := data.WriteDataset(a.fs, train, tbl.Features, tbl.LabelName, f.Train); err != nil {
					return err
				}
				if err := data.WriteDataset(a.fs, test, tbl.Features, tbl.LabelName, f.Test); err != nil {
					return err
				}
			}
			a.log.Infof("Wrote %d folds to %s", len(folds), args[1])
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Int("folds", 5, "number of folds")
	checkNoErr(a.v.BindPFlag("folds", flags.Lookup("folds")))
	return cmd
}
