package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/dataset/csv"
)

type splitCmdConfig struct {
	*rootCmdConfig
	data             dataConfig
	setOutput        string
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, for instance to keep part of the data to test trees grown from the rest`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fail(1, err)
			}
			_, ds, err := config.data.load(cmd.Context(), config.logger)
			if err != nil {
				fail(2, err)
			}
			seed := config.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			output, split, err := splitDataset(ds, config.splitProbability, rand.New(rand.NewSource(seed)))
			if err != nil {
				fail(3, err)
			}
			if err = writeCSV(config.setOutput, output); err != nil {
				fail(4, err)
			}
			if err = writeCSV(config.splitOutput, split); err != nil {
				fail(5, err)
			}
			config.logger.Info("set split",
				zap.Int("samples", ds.Count()),
				zap.Int("output", output.Count()),
				zap.Int("split", split.Count()),
				zap.Int64("seed", seed),
			)
		},
	}
	config.data.addFlags(cmd)
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV file to dump the output set (defaults to STDOUT)")
	cmd.Flags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the set will be assigned to the split set")
	cmd.Flags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a CSV file to dump the split set (required)")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of samples (defaults to 0: seed from the current time)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if err := scc.data.Validate(); err != nil {
		return err
	}
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return nil
}

/*
splitDataset assigns every sample of the dataset to the split set with the
given percent probability, and to the output set otherwise. Both sets keep
the order of the samples.
*/
func splitDataset(ds *dataset.Dataset, probability int, r *rand.Rand) (*dataset.Dataset, *dataset.Dataset, error) {
	var outputRows, splitRows []int
	for i := 0; i < ds.Count(); i++ {
		if 100*r.Float32() > float32(probability) {
			outputRows = append(outputRows, i)
		} else {
			splitRows = append(splitRows, i)
		}
	}
	output, err := ds.Select(outputRows)
	if err != nil {
		return nil, nil, err
	}
	split, err := ds.Select(splitRows)
	if err != nil {
		return nil, nil, err
	}
	return output, split, nil
}

func writeCSV(path string, ds *dataset.Dataset) error {
	f, err := createOutput(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return csv.WriteDataset(f, ds)
}
