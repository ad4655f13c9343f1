package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/dataset/csv"
	"github.com/pezwarinaan/id3/dataset/sqldataset"
)

type setCmdConfig struct {
	*rootCmdConfig
	data        dataConfig
	setOutput   string
	outputTable string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Convert sets of data",
		Long:  `Read a set of data and write it as CSV or onto a SQLite3 or PostgreSQL table`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.data.Validate()
			if err != nil {
				fail(1, err)
			}
			_, ds, err := config.data.load(cmd.Context(), config.logger)
			if err != nil {
				fail(2, err)
			}
			if err = config.write(cmd.Context(), ds); err != nil {
				fail(3, err)
			}
			config.logger.Info("set written", zap.Int("samples", ds.Count()))
		},
	}
	config.data.addFlags(cmd)
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to an output CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL to write the set to (defaults to STDOUT, written as CSV)")
	cmd.Flags().StringVar(&(config.outputTable), "output-table", "samples", "name of the table to write the samples to on SQL outputs")
	return cmd
}

func (scc *setCmdConfig) write(ctx context.Context, ds *dataset.Dataset) error {
	switch {
	case strings.HasPrefix(scc.setOutput, "postgresql://"), strings.HasPrefix(scc.setOutput, "postgres://"):
		return scc.writeSQL(ctx, sqldataset.PostgreSQL, ds)
	case strings.HasSuffix(scc.setOutput, ".db"):
		return scc.writeSQL(ctx, sqldataset.SQLite3, ds)
	}
	f, err := createOutput(scc.setOutput)
	if err != nil {
		return err
	}
	defer f.Close()
	return csv.WriteDataset(f, ds)
}

func (scc *setCmdConfig) writeSQL(ctx context.Context, a sqldataset.Adapter, ds *dataset.Dataset) error {
	scc.logger.Debug("writing set to database",
		zap.String("driver", a.DriverName()),
		zap.String("table", scc.outputTable),
	)
	db, err := sqldataset.Open(a, scc.setOutput)
	if err != nil {
		return err
	}
	defer db.Close()
	if err = sqldataset.Write(ctx, db, a, scc.outputTable, ds); err != nil {
		return fmt.Errorf("writing set: %v", err)
	}
	return nil
}
