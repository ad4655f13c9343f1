/*
Package sqldataset stores datasets on SQL database tables and reads them
back, with an Adapter for each supported database engine.

Every table has a column per feature plus a reserved "_row" integer
primary key holding the position of each sample, so the dataset is read
back in the order it was written.
*/
package sqldataset

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pezwarinaan/id3/feature"
)

// RowColumn is the reserved name of the column holding sample positions
const RowColumn = "_row"

/*
Adapter is an interface providing the dialect specific bits needed to store
datasets on a database.
*/
type Adapter interface {
	// DriverName returns the database/sql driver name for the engine
	DriverName() string
	// Quote returns the given table or column name quoted as an identifier,
	// or an error if it cannot be used as one.
	Quote(name string) (string, error)
	// Placeholder returns the parameter placeholder for the nth (1-based)
	// argument of a statement.
	Placeholder(n int) string
	// ColumnType returns the SQL type of the columns holding values of a kind.
	ColumnType(k feature.Kind) (string, error)
}

/*
Open takes an adapter and a data source name and opens a connection pool
on it with the driver of the adapter.
*/
func Open(a Adapter, dsn string) (*sql.DB, error) {
	db, err := sql.Open(a.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %v", a.DriverName(), err)
	}
	return db, nil
}

func quoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, "\"\x00") {
		return "", fmt.Errorf(`identifier '%s' contains invalid character`, name)
	}
	return `"` + name + `"`, nil
}

type sqlite3Adapter struct{}

// SQLite3 is the Adapter for SQLite3 databases, using the sqlite3 driver
var SQLite3 Adapter = sqlite3Adapter{}

func (sqlite3Adapter) DriverName() string                { return "sqlite3" }
func (sqlite3Adapter) Quote(name string) (string, error) { return quoteIdentifier(name) }
func (sqlite3Adapter) Placeholder(int) string            { return "?" }

func (sqlite3Adapter) ColumnType(k feature.Kind) (string, error) {
	switch k {
	case feature.KindInt:
		return "INTEGER", nil
	case feature.KindLabel:
		return "TEXT", nil
	case feature.KindBool:
		return "BOOLEAN", nil
	}
	return "", fmt.Errorf("no sqlite3 column type for kind %v", k)
}

type pgAdapter struct{}

// PostgreSQL is the Adapter for PostgreSQL databases, using the postgres driver
var PostgreSQL Adapter = pgAdapter{}

func (pgAdapter) DriverName() string                { return "postgres" }
func (pgAdapter) Quote(name string) (string, error) { return quoteIdentifier(name) }
func (pgAdapter) Placeholder(n int) string          { return fmt.Sprintf("$%d", n) }

func (pgAdapter) ColumnType(k feature.Kind) (string, error) {
	switch k {
	case feature.KindInt:
		return "BIGINT", nil
	case feature.KindLabel:
		return "TEXT", nil
	case feature.KindBool:
		return "BOOLEAN", nil
	}
	return "", fmt.Errorf("no postgres column type for kind %v", k)
}
