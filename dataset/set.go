package dataset

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/pezwarinaan/id3/feature"
)

// Error represents an error related with datasets
type Error string

func (e Error) Error() string {
	return string(e)
}

/*
ErrInvalidColumn is the error returned when a column name not present
in the dataset's schema is referenced, or a schema declares a column twice.
It is always a caller error, never a data error.
*/
const ErrInvalidColumn = Error("invalid column")

/*
ErrInvalidSchema is the error returned when the columns given to build a
dataset are inconsistent: they have different lengths or hold values of a
kind different from the one declared by their feature.
*/
const ErrInvalidSchema = Error("invalid schema")

// Column is a feature together with its value for every row
type Column struct {
	Feature feature.Feature
	Values  []feature.Value
}

/*
Dataset represents an ordered collection of rows over a fixed, named set
of columns. One column is the target (label) to predict, another may be
an identifier that is never used to split the data.

Column names are validated once, when the dataset is built. A Dataset is
never modified afterwards: subsetting it returns a new dataset that does
not share any slice with the original.
*/
type Dataset struct {
	features   []feature.Feature
	columns    map[string][]feature.Value
	index      map[string]int
	target     string
	identifier string
	count      int
}

/*
New takes a slice of columns, the name of the target column and the name
of the identifier column (or "" if there is none) and returns a dataset
with them or an error if they do not define a valid schema.
*/
func New(columns []Column, target, identifier string) (*Dataset, error) {
	ds := &Dataset{
		features:   make([]feature.Feature, 0, len(columns)),
		columns:    make(map[string][]feature.Value, len(columns)),
		index:      make(map[string]int, len(columns)),
		target:     target,
		identifier: identifier,
	}
	for i, c := range columns {
		name := c.Feature.Name()
		if name == "" {
			return nil, fmt.Errorf("column %d: %w: empty name", i, ErrInvalidColumn)
		}
		if _, ok := ds.index[name]; ok {
			return nil, fmt.Errorf("%w: %q declared twice", ErrInvalidColumn, name)
		}
		if i == 0 {
			ds.count = len(c.Values)
		} else if len(c.Values) != ds.count {
			return nil, fmt.Errorf("%w: column %q has %d values, expected %d", ErrInvalidSchema, name, len(c.Values), ds.count)
		}
		for row, v := range c.Values {
			if err := c.Feature.Valid(v); err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidSchema, row, err)
			}
		}
		ds.index[name] = i
		ds.features = append(ds.features, c.Feature)
		ds.columns[name] = append([]feature.Value(nil), c.Values...)
	}
	if _, ok := ds.index[target]; !ok {
		return nil, fmt.Errorf("target: %w: %q", ErrInvalidColumn, target)
	}
	if identifier != "" {
		if _, ok := ds.index[identifier]; !ok {
			return nil, fmt.Errorf("identifier: %w: %q", ErrInvalidColumn, identifier)
		}
		if identifier == target {
			return nil, fmt.Errorf("identifier: %w: %q is the target column", ErrInvalidColumn, identifier)
		}
	}
	return ds, nil
}

// Count returns the number of rows in the dataset
func (ds *Dataset) Count() int {
	return ds.count
}

// Target returns the name of the target column
func (ds *Dataset) Target() string {
	return ds.target
}

// Identifier returns the name of the identifier column, "" if there is none
func (ds *Dataset) Identifier() string {
	return ds.identifier
}

// Features returns the features of the dataset in schema order
func (ds *Dataset) Features() []feature.Feature {
	return append([]feature.Feature(nil), ds.features...)
}

/*
Feature takes a column name and returns the feature for that column
or an ErrInvalidColumn error if the dataset has no such column.
*/
func (ds *Dataset) Feature(name string) (feature.Feature, error) {
	i, ok := ds.index[name]
	if !ok {
		return feature.Feature{}, fmt.Errorf("%w: %q", ErrInvalidColumn, name)
	}
	return ds.features[i], nil
}

/*
Candidates returns the names of the columns that may be used to split
the dataset, that is, all but the target and identifier columns, in
schema order.
*/
func (ds *Dataset) Candidates() []string {
	var result []string
	for _, f := range ds.features {
		if f.Name() != ds.target && f.Name() != ds.identifier {
			result = append(result, f.Name())
		}
	}
	return result
}

/*
Column takes a column name and returns a copy of the values of that
column in row order or an ErrInvalidColumn error.
*/
func (ds *Dataset) Column(name string) ([]feature.Value, error) {
	vs, err := ds.column(name)
	if err != nil {
		return nil, err
	}
	return append([]feature.Value(nil), vs...), nil
}

/*
Value takes a column name and a row index and returns the value at
that cell or an error if the column or the row do not exist.
*/
func (ds *Dataset) Value(name string, row int) (feature.Value, error) {
	vs, err := ds.column(name)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= ds.count {
		return nil, fmt.Errorf("row %d out of range [0, %d)", row, ds.count)
	}
	return vs[row], nil
}

/*
UniqueValues takes a column name and returns the distinct values in
that column, deduplicated and sorted according to feature.Compare.
The result is empty for an empty dataset.
*/
func (ds *Dataset) UniqueValues(name string) ([]feature.Value, error) {
	vs, err := ds.column(name)
	if err != nil {
		return nil, err
	}
	uniq := treeset.NewWith(func(a, b interface{}) int {
		return feature.Compare(a.(feature.Value), b.(feature.Value))
	})
	for _, v := range vs {
		uniq.Add(v)
	}
	result := make([]feature.Value, 0, uniq.Size())
	for _, v := range uniq.Values() {
		result = append(result, v.(feature.Value))
	}
	return result, nil
}

/*
CountValues takes a column name and returns the number of rows holding
each value of the column.
*/
func (ds *Dataset) CountValues(name string) (map[feature.Value]int, error) {
	vs, err := ds.column(name)
	if err != nil {
		return nil, err
	}
	result := make(map[feature.Value]int)
	for _, v := range vs {
		result[v]++
	}
	return result, nil
}

/*
RowsWhere takes a column name and a value and returns the indexes, in
ascending order, of the rows whose value for the column is equal to the
given one.
*/
func (ds *Dataset) RowsWhere(name string, v feature.Value) ([]int, error) {
	vs, err := ds.column(name)
	if err != nil {
		return nil, err
	}
	var rows []int
	for i, cv := range vs {
		if cv == v {
			rows = append(rows, i)
		}
	}
	return rows, nil
}

/*
Select takes a slice of row indexes and returns a new dataset with the
same schema holding only those rows, in the given order. An error is
returned if an index is out of range.
*/
func (ds *Dataset) Select(rows []int) (*Dataset, error) {
	result := &Dataset{
		features:   ds.Features(),
		columns:    make(map[string][]feature.Value, len(ds.columns)),
		index:      make(map[string]int, len(ds.index)),
		target:     ds.target,
		identifier: ds.identifier,
		count:      len(rows),
	}
	for name, i := range ds.index {
		result.index[name] = i
	}
	for name, vs := range ds.columns {
		nvs := make([]feature.Value, 0, len(rows))
		for _, r := range rows {
			if r < 0 || r >= ds.count {
				return nil, fmt.Errorf("selecting rows: row %d out of range [0, %d)", r, ds.count)
			}
			nvs = append(nvs, vs[r])
		}
		result.columns[name] = nvs
	}
	return result, nil
}

/*
SubsetWith takes a feature.Criterion and returns a new dataset that only
contains the rows that satisfy it.
*/
func (ds *Dataset) SubsetWith(c feature.Criterion) (*Dataset, error) {
	var rows []int
	for i := 0; i < ds.count; i++ {
		ok, err := c.SatisfiedBy(ds.Sample(i))
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, i)
		}
	}
	return ds.Select(rows)
}

// Sample returns the row with the given index as a feature.Sample
func (ds *Dataset) Sample(row int) feature.Sample {
	return &rowSample{ds, row}
}

// Samples returns all rows of the dataset as samples, in row order
func (ds *Dataset) Samples() []feature.Sample {
	result := make([]feature.Sample, 0, ds.count)
	for i := 0; i < ds.count; i++ {
		result = append(result, ds.Sample(i))
	}
	return result
}

func (ds *Dataset) String() string {
	return fmt.Sprintf("[ %v ]", ds.count)
}

func (ds *Dataset) column(name string) ([]feature.Value, error) {
	vs, ok := ds.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, name)
	}
	return vs, nil
}
