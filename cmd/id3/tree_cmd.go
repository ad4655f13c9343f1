package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pezwarinaan/id3/tree"
	"github.com/pezwarinaan/id3/tree/dot"
	"github.com/pezwarinaan/id3/tree/json"
)

type treeCmdConfig struct {
	*rootCmdConfig
	tree   treeConfig
	format string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a tree",
		Long:  `Show a tree read from a JSON file or a redis store as text, a Graphviz digraph or JSON`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fail(1, err)
			}
			label, t, err := config.tree.load(cmd.Context(), config.logger)
			if err != nil {
				fail(2, err)
			}
			switch config.format {
			case "text":
				fmt.Printf("%s\n%s", label, tree.String(t))
			case "dot":
				s, err := dot.Render(label, t)
				if err != nil {
					fail(3, err)
				}
				fmt.Print(s)
			case "json":
				if err = json.WriteJSONTree(os.Stdout, label, t); err != nil {
					fail(3, err)
				}
			}
		},
	}
	config.tree.addFlags(cmd)
	cmd.Flags().StringVar(&(config.format), "format", "text", "format to show the tree in: text, dot or json")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if err := tcc.tree.Validate(); err != nil {
		return err
	}
	switch tcc.format {
	case "text", "dot", "json":
		return nil
	}
	return fmt.Errorf("unknown format %q", tcc.format)
}
