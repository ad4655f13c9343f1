/*
Package csv reads datasets from CSV streams and writes them back.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
)

/*
Writer writes samples of a dataset as CSV rows, after a header row with
the names of its features.
*/
type Writer struct {
	count    int
	features []feature.Feature
	w        *csv.Writer
}

/*
ReadDataset takes an io.Reader for a CSV stream and the metadata of the
dataset and returns the dataset parsed from the reader or an error.

The header or first row of the CSV content is expected to consist of the
names of all the features in the metadata, in any order. The rest of the
rows should consist of valid values for those features, as parsed by
feature.Parse for the kind of each one.
*/
func ReadDataset(reader io.Reader, md *dataset.Metadata) (*dataset.Dataset, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	featureOrder, err := parseFeaturesFromCSVHeader(header, md)
	if err != nil {
		return nil, err
	}
	values := make([][]feature.Value, len(featureOrder))
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		for i, f := range featureOrder {
			v, err := feature.Parse(f.Kind(), row[i])
			if err != nil {
				return nil, fmt.Errorf("parsing line %d: feature %s: %v", l, f.Name(), err)
			}
			values[i] = append(values[i], v)
		}
	}
	byName := make(map[string][]feature.Value, len(featureOrder))
	for i, f := range featureOrder {
		byName[f.Name()] = values[i]
	}
	columns := make([]dataset.Column, 0, len(md.Features))
	for _, f := range md.Features {
		columns = append(columns, dataset.Column{Feature: f, Values: byName[f.Name()]})
	}
	return dataset.New(columns, md.Target, md.Identifier)
}

/*
ReadDatasetFromFilePath takes a filepath string and the metadata of the
dataset, opens the file to which the filepath points to and uses
ReadDataset to return the dataset or an error read from it. If the
filepath is "" the dataset is read from os.Stdin.
*/
func ReadDatasetFromFilePath(filepath string, md *dataset.Metadata) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	ds, err := ReadDataset(f, md)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return ds, nil
}

/*
NewWriter takes an io.Writer and a slice of feature.Features and
returns a Writer that will write any samples on the io.Writer.
*/
func NewWriter(writer io.Writer, features []feature.Feature) (*Writer, error) {
	w := csv.NewWriter(writer)
	record := make([]string, len(features))
	for i, f := range features {
		record[i] = f.Name()
	}
	if err := w.Write(record); err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &Writer{features: features, w: w}, nil
}

/*
WriteDataset takes a writer and a dataset and dumps to the writer the
dataset in CSV format, all its features in schema order. It returns an error
if something went wrong when writing to the writer.
*/
func WriteDataset(writer io.Writer, ds *dataset.Dataset) error {
	cw, err := NewWriter(writer, ds.Features())
	if err != nil {
		return err
	}
	for _, s := range ds.Samples() {
		if err := cw.WriteSample(s); err != nil {
			return err
		}
	}
	return cw.Flush()
}

// Count returns the number of samples written
func (cw *Writer) Count() int {
	return cw.count
}

// WriteSample writes a row with the value of the sample for every feature
func (cw *Writer) WriteSample(sample feature.Sample) error {
	record := make([]string, len(cw.features))
	for j, f := range cw.features {
		v, err := sample.ValueFor(f.Name())
		if err != nil {
			return err
		}
		record[j] = v.String()
	}
	if err := cw.w.Write(record); err != nil {
		return fmt.Errorf("writing CSV row for sample %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

// Flush ensures every written row reaches the underlying io.Writer
func (cw *Writer) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

func parseFeaturesFromCSVHeader(header []string, md *dataset.Metadata) ([]feature.Feature, error) {
	featureOrder := make([]feature.Feature, 0, len(header))
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		f, ok := md.Feature(name)
		if !ok {
			return nil, fmt.Errorf("parsing header: %w: reference to unknown feature %s", dataset.ErrInvalidColumn, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("parsing header: %w: feature %s given twice", dataset.ErrInvalidColumn, name)
		}
		seen[name] = true
		featureOrder = append(featureOrder, f)
	}
	for _, f := range md.Features {
		if !seen[f.Name()] {
			return nil, fmt.Errorf("parsing header: %w: missing feature %s", dataset.ErrInvalidColumn, f.Name())
		}
	}
	return featureOrder, nil
}
