package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/redis.v5"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/dataset/csv"
	"github.com/pezwarinaan/id3/dataset/sqldataset"
	"github.com/pezwarinaan/id3/feature/yaml"
	"github.com/pezwarinaan/id3/tree"
	"github.com/pezwarinaan/id3/tree/json"
	"github.com/pezwarinaan/id3/tree/redisstore"
)

// builtinDataset is the input name of the reference vegetation dataset
const builtinDataset = "vegetation"

/*
dataConfig holds the flags shared by the commands that read a dataset:
where to read it from and the metadata describing it.
*/
type dataConfig struct {
	dataInput     string
	metadataInput string
	table         string
}

func (dc *dataConfig) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&(dc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, a PostgreSQL DB connection URL or 'vegetation' for the built-in dataset (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(dc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features available on the input (required unless the input is 'vegetation')")
	cmd.Flags().StringVar(&(dc.table), "table", "samples", "name of the table holding the samples on SQL inputs")
}

func (dc *dataConfig) Validate() error {
	if dc.metadataInput == "" && dc.dataInput != builtinDataset {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

// metadata returns the metadata for the input
func (dc *dataConfig) metadata(logger *zap.Logger) (*dataset.Metadata, error) {
	if dc.metadataInput == "" {
		return dataset.MetadataOf(dataset.Vegetation()), nil
	}
	logger.Debug("reading metadata", zap.String("path", dc.metadataInput))
	return yaml.ReadMetadataFromFile(dc.metadataInput)
}

// dataset reads the dataset described by the metadata from the input
func (dc *dataConfig) dataset(ctx context.Context, md *dataset.Metadata, logger *zap.Logger) (*dataset.Dataset, error) {
	switch {
	case dc.dataInput == builtinDataset:
		logger.Debug("using built-in dataset", zap.String("name", builtinDataset))
		return dataset.Vegetation(), nil
	case strings.HasPrefix(dc.dataInput, "postgresql://"), strings.HasPrefix(dc.dataInput, "postgres://"):
		return dc.sqlDataset(ctx, sqldataset.PostgreSQL, md, logger)
	case strings.HasSuffix(dc.dataInput, ".db"):
		return dc.sqlDataset(ctx, sqldataset.SQLite3, md, logger)
	}
	if dc.dataInput == "" {
		logger.Debug("reading dataset from STDIN")
	} else {
		logger.Debug("reading dataset", zap.String("path", dc.dataInput))
	}
	return csv.ReadDatasetFromFilePath(dc.dataInput, md)
}

func (dc *dataConfig) sqlDataset(ctx context.Context, a sqldataset.Adapter, md *dataset.Metadata, logger *zap.Logger) (*dataset.Dataset, error) {
	logger.Debug("reading dataset from database",
		zap.String("driver", a.DriverName()),
		zap.String("table", dc.table),
	)
	db, err := sqldataset.Open(a, dc.dataInput)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return sqldataset.Read(ctx, db, a, dc.table, md)
}

// load reads the metadata and then the dataset
func (dc *dataConfig) load(ctx context.Context, logger *zap.Logger) (*dataset.Metadata, *dataset.Dataset, error) {
	md, err := dc.metadata(logger)
	if err != nil {
		return nil, nil, err
	}
	ds, err := dc.dataset(ctx, md, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dataset: %w", err)
	}
	logger.Debug("dataset read", zap.Int("samples", ds.Count()), zap.Int("features", len(ds.Features())))
	return md, ds, nil
}

/*
treeConfig holds the flags shared by the commands that read a tree:
a JSON file or the ID of a tree on a redis store.
*/
type treeConfig struct {
	treeInput   string
	treeID      string
	redisConfig redisConfig
}

func (tc *treeConfig) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&(tc.treeInput), "tree", "t", "", "path to a file from which the tree will be read and parsed as JSON")
	cmd.Flags().StringVar(&(tc.treeID), "tree-id", "", "ID of the tree to read from the redis store")
	tc.redisConfig.addFlags(cmd)
}

func (tc *treeConfig) Validate() error {
	if (tc.treeInput == "") == (tc.treeID == "") {
		return fmt.Errorf("exactly one of the tree and tree-id flags must be set")
	}
	if tc.treeID != "" && tc.redisConfig.addr == "" {
		return fmt.Errorf("required redis flag was not set to read tree %s", tc.treeID)
	}
	return nil
}

// load returns the label and the tree
func (tc *treeConfig) load(ctx context.Context, logger *zap.Logger) (string, tree.Tree, error) {
	if tc.treeID != "" {
		logger.Debug("reading tree from redis", zap.String("addr", tc.redisConfig.addr), zap.String("id", tc.treeID))
		store, closer := tc.redisConfig.store()
		defer closer()
		return store.Get(ctx, tc.treeID)
	}
	logger.Debug("reading tree", zap.String("path", tc.treeInput))
	f, err := os.Open(tc.treeInput)
	if err != nil {
		return "", nil, fmt.Errorf("reading tree in JSON from %s: %v", tc.treeInput, err)
	}
	defer f.Close()
	label, t, err := json.ReadJSONTree(f)
	if err != nil {
		return "", nil, fmt.Errorf("parsing tree in JSON from %s: %v", tc.treeInput, err)
	}
	return label, t, nil
}

type redisConfig struct {
	addr   string
	prefix string
}

func (rc *redisConfig) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&(rc.addr), "redis", "", "address (host:port) of a redis server storing trees")
	cmd.Flags().StringVar(&(rc.prefix), "redis-prefix", "id3:trees", "prefix for the keys of trees on redis")
}

// store returns a tree store on the redis server and a function to close it
func (rc *redisConfig) store() (*redisstore.Store, func()) {
	client := redis.NewClient(&redis.Options{Addr: rc.addr})
	return redisstore.New(client, rc.prefix), func() { client.Close() }
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

/*
createOutput returns the file created at the given path, or STDOUT if it
is "". Closing STDOUT through it has no effect.
*/
func createOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %v", path, err)
	}
	return f, nil
}
