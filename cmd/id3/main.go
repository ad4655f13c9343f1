package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envPrefix prefixes the environment variables that can set any flag
const envPrefix = "ID3"

type rootCmdConfig struct {
	verbose    bool
	configFile string
	v          *viper.Viper
	logger     *zap.Logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{v: viper.New(), logger: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to grow ID3 decision trees",
		Long: `A tool to grow ID3 decision trees from your data, test them, and use them to make predictions.

Every flag can also be set with an ID3_<FLAG> environment variable (dashes
replaced by underscores) or a <flag>: <value> entry on the YML file given
with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log debug information on STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YML file with values for flags")
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		treeCmd(config),
		predictCmd(config),
		testCmd(config),
		statsCmd(config),
		setCmd(config),
		splitCmd(config),
	)
	return rootCmd
}

/*
init loads the configuration file and environment into the flags of the
command that were not given on the command line, then builds the logger.
*/
func (rcc *rootCmdConfig) init(cmd *cobra.Command) error {
	if rcc.configFile != "" {
		rcc.v.SetConfigFile(rcc.configFile)
		rcc.v.SetConfigType("yml")
		if err := rcc.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %v", rcc.configFile, err)
		}
	}
	rcc.v.SetEnvPrefix(envPrefix)
	rcc.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	rcc.v.AutomaticEnv()
	if err := bindFlags(cmd.Flags(), rcc.v); err != nil {
		return err
	}
	logger, err := newLogger(rcc.verbose)
	if err != nil {
		return err
	}
	rcc.logger = logger
	return nil
}

func bindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		value := v.GetString(f.Name)
		if f.Value.Type() == "stringSlice" {
			value = strings.Join(v.GetStringSlice(f.Name), ",")
		}
		if serr := flags.Set(f.Name, value); serr != nil {
			err = fmt.Errorf("setting flag %s from configuration: %v", f.Name, serr)
		}
	})
	return err
}

// fail prints the error on STDERR and exits with the given code
func fail(code int, err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(code)
}
