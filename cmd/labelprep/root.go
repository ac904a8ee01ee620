package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"labelprep/pkg/config"
	"labelprep/pkg/data"
	"labelprep/pkg/dataset"
	"labelprep/pkg/logger"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	fs      afero.Fs
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *logrus.Entry
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, v: viper.New()}

	root := &cobra.Command{
		Use:   "labelprep",
		Short: "labelprep reshapes labeled CSV datasets",
		Long: `labelprep prepares labeled sample data for a machine-learning pipeline.
Input files are CSV with a header row, numeric feature columns and one label
column (the last one unless --label-col says otherwise).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "configuration file (yaml, json or toml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	checkNoErr(a.v.BindPFlag("log_level", flags.Lookup("log-level")))
	flags.Bool("log-json", false, "log in JSON")
	checkNoErr(a.v.BindPFlag("log_json", flags.Lookup("log-json")))
	flags.Uint64("seed", 0, "seed of the random generator used for shuffling")
	checkNoErr(a.v.BindPFlag("seed", flags.Lookup("seed")))
	flags.Int("label-col", -1, "index of the label column, negative counts from the end")
	checkNoErr(a.v.BindPFlag("label_col", flags.Lookup("label-col")))

	root.AddCommand(
		newDescribeCmd(a),
		newShuffleCmd(a),
		newReduceCmd(a),
		newBalanceCmd(a),
		newSplitCmd(a),
		newKFoldCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	err = logger.Init(logger.Options{
		Output: cmd.ErrOrStderr(),
		Level:  cfg.LogLevel,
		JSON:   cfg.LogJSON,
	})
	if err != nil {
		return err
	}
	a.log = logger.WithNamespace(cmd.Name())
	return nil
}

// load reads a CSV input using the configured label column.
func (a *app) load(path string) (*data.Table, error) {
	tbl, err := data.ReadCSV(a.fs, path, data.Options{LabelCol: a.cfg.LabelCol})
	if err != nil {
		return nil, err
	}
	entry := a.log.WithField("file", path)
	if tbl.Skipped > 0 {
		entry.Warnf("Skipped %d malformed records", tbl.Skipped)
	}
	entry.Debugf("Loaded %d samples with %d features", tbl.Arrays.Len(), len(tbl.Features))
	return tbl, nil
}

// loadDataset reads a CSV input in mapping form.
func (a *app) loadDataset(path string) (*data.Table, dataset.Dataset[string, float64], error) {
	tbl, err := a.load(path)
	if err != nil {
		return nil, nil, err
	}
	d, err := dataset.Group(tbl.Arrays)
	if err != nil {
		return nil, nil, err
	}
	return tbl, d, nil
}

func (a *app) seed() dataset.Option {
	return dataset.WithSeed(a.cfg.Seed)
}

func checkNoErr(err error) {
	if err != nil {
		panic(err)
	}
}
