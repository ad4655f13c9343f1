package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/pezwarinaan/id3"
	"github.com/pezwarinaan/id3/dataset"
)

type statsCmdConfig struct {
	*rootCmdConfig
	data dataConfig
}

func statsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &statsCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the statistics of a set of data",
		Long:  `Show the entropy of every feature of a set of data and the information gain on its target of splitting on each candidate feature`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.data.Validate()
			if err != nil {
				fail(1, err)
			}
			md, ds, err := config.data.load(cmd.Context(), config.logger)
			if err != nil {
				fail(2, err)
			}
			if err = renderStats(os.Stdout, ds, md.CandidatesFor(ds)); err != nil {
				fail(3, err)
			}
		},
	}
	config.data.addFlags(cmd)
	return cmd
}

/*
renderStats writes a table with a row per feature of the dataset showing
its kind, number of distinct values, entropy and, for candidates, the
information gain on the target of splitting on it.
*/
func renderStats(w io.Writer, ds *dataset.Dataset, candidates []string) error {
	isCandidate := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		isCandidate[c] = true
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%d samples predicting %s", ds.Count(), ds.Target()))
	t.AppendHeader(table.Row{"Feature", "Kind", "Role", "Values", "Entropy", "Information Gain"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Values", Align: text.AlignRight},
		{Name: "Entropy", Align: text.AlignRight},
		{Name: "Information Gain", Align: text.AlignRight},
	})
	for _, f := range ds.Features() {
		values, err := ds.UniqueValues(f.Name())
		if err != nil {
			return err
		}
		entropy, err := id3.Entropy(ds, f.Name())
		if err != nil {
			return err
		}
		role, gain := "", ""
		switch {
		case f.Name() == ds.Target():
			role = "target"
		case f.Name() == ds.Identifier():
			role = "identifier"
		case isCandidate[f.Name()]:
			role = "candidate"
			g, err := id3.InformationGain(ds, f.Name(), ds.Target())
			if err != nil {
				return err
			}
			gain = fmt.Sprintf("%.4f", g)
		}
		t.AppendRow(table.Row{f.Name(), f.Kind(), role, len(values), fmt.Sprintf("%.4f", entropy), gain})
	}
	t.Render()
	return nil
}
