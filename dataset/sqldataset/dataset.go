package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
)

/*
MaxSampleInsertionsPerStatement is the maximum number of samples that are
added with a single insert command by Write. Trying to add more will
result in making more insertion commands.
*/
const MaxSampleInsertionsPerStatement = 10

/*
Write takes a context, a database, the adapter for it, a table name and a
dataset and stores the dataset on the table, creating it if it does not
exist. All samples are inserted in a single transaction.
*/
func Write(ctx context.Context, db *sql.DB, a Adapter, table string, ds *dataset.Dataset) error {
	qtable, err := a.Quote(table)
	if err != nil {
		return fmt.Errorf("table name: %v", err)
	}
	features := ds.Features()
	columns, err := quoteColumns(a, features)
	if err != nil {
		return err
	}
	var createStmtBuf bytes.Buffer
	fmt.Fprintf(&createStmtBuf, "CREATE TABLE IF NOT EXISTS %s(", qtable)
	for i, f := range features {
		t, err := a.ColumnType(f.Kind())
		if err != nil {
			return err
		}
		fmt.Fprintf(&createStmtBuf, "%s %s NOT NULL, ", columns[i], t)
	}
	fmt.Fprintf(&createStmtBuf, `"%s" INTEGER PRIMARY KEY)`, RowColumn)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %v", err)
	}
	defer tx.Rollback()
	if _, err = tx.ExecContext(ctx, createStmtBuf.String()); err != nil {
		return fmt.Errorf("ensuring table %s exists: %v", table, err)
	}
	samples := ds.Samples()
	for start := 0; start < len(samples); start += MaxSampleInsertionsPerStatement {
		end := start + MaxSampleInsertionsPerStatement
		if end > len(samples) {
			end = len(samples)
		}
		stmt, args, err := insertStatement(a, qtable, features, columns, samples[start:end], start)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("inserting samples %d to %d: %v", start, end-1, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing samples: %v", err)
	}
	return nil
}

/*
Read takes a context, a database, the adapter for it, a table name and the
metadata of a dataset and returns the dataset stored on the table, with
its samples in the order they were written.
*/
func Read(ctx context.Context, db *sql.DB, a Adapter, table string, md *dataset.Metadata) (*dataset.Dataset, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	qtable, err := a.Quote(table)
	if err != nil {
		return nil, fmt.Errorf("table name: %v", err)
	}
	columns, err := quoteColumns(a, md.Features)
	if err != nil {
		return nil, err
	}
	var queryBuf bytes.Buffer
	queryBuf.WriteString("SELECT ")
	for i, c := range columns {
		if i > 0 {
			queryBuf.WriteString(", ")
		}
		queryBuf.WriteString(c)
	}
	fmt.Fprintf(&queryBuf, ` FROM %s ORDER BY "%s"`, qtable, RowColumn)
	rows, err := db.QueryContext(ctx, queryBuf.String())
	if err != nil {
		return nil, fmt.Errorf("querying samples from %s: %v", table, err)
	}
	defer rows.Close()
	values := make([][]feature.Value, len(md.Features))
	raw := make([]interface{}, len(md.Features))
	dest := make([]interface{}, len(md.Features))
	for i := range raw {
		dest[i] = &raw[i]
	}
	for row := 0; rows.Next(); row++ {
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning sample %d: %v", row, err)
		}
		for i, f := range md.Features {
			v, err := toValue(f, raw[i])
			if err != nil {
				return nil, fmt.Errorf("sample %d: %v", row, err)
			}
			values[i] = append(values[i], v)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading samples from %s: %v", table, err)
	}
	result := make([]dataset.Column, 0, len(md.Features))
	for i, f := range md.Features {
		result = append(result, dataset.Column{Feature: f, Values: values[i]})
	}
	return dataset.New(result, md.Target, md.Identifier)
}

func quoteColumns(a Adapter, features []feature.Feature) ([]string, error) {
	result := make([]string, 0, len(features))
	for _, f := range features {
		if f.Name() == RowColumn {
			return nil, fmt.Errorf(`'%s' is reserved and cannot be used as feature name`, RowColumn)
		}
		c, err := a.Quote(f.Name())
		if err != nil {
			return nil, fmt.Errorf("feature %s: %v", f.Name(), err)
		}
		result = append(result, c)
	}
	return result, nil
}

func insertStatement(a Adapter, qtable string, features []feature.Feature, columns []string, samples []feature.Sample, offset int) (string, []interface{}, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "INSERT INTO %s (", qtable)
	for _, c := range columns {
		buf.WriteString(c)
		buf.WriteString(", ")
	}
	fmt.Fprintf(&buf, `"%s") VALUES `, RowColumn)
	args := make([]interface{}, 0, len(samples)*(len(features)+1))
	for i, s := range samples {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for _, f := range features {
			v, err := s.ValueFor(f.Name())
			if err != nil {
				return "", nil, err
			}
			args = append(args, fromValue(v))
			fmt.Fprintf(&buf, "%s, ", a.Placeholder(len(args)))
		}
		args = append(args, int64(offset+i))
		fmt.Fprintf(&buf, "%s)", a.Placeholder(len(args)))
	}
	return buf.String(), args, nil
}

func fromValue(v feature.Value) interface{} {
	switch v := v.(type) {
	case feature.Int:
		return int64(v)
	case feature.Label:
		return string(v)
	case feature.Bool:
		return bool(v)
	}
	return nil
}

func toValue(f feature.Feature, raw interface{}) (feature.Value, error) {
	switch f.Kind() {
	case feature.KindInt:
		if i, ok := raw.(int64); ok {
			return feature.Int(i), nil
		}
	case feature.KindLabel:
		switch s := raw.(type) {
		case string:
			return feature.Label(s), nil
		case []byte:
			return feature.Label(string(s)), nil
		}
	case feature.KindBool:
		switch b := raw.(type) {
		case bool:
			return feature.Bool(b), nil
		case int64:
			return feature.Bool(b != 0), nil
		}
	}
	return nil, fmt.Errorf("feature %s: cannot take value %v of type %T", f.Name(), raw, raw)
}
