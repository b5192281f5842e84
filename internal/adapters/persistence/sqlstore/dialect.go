package sqlstore

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"modernc.org/sqlite"
)

// Supported values for Config.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// sqliteTimeLayout is fixed width so lexical order of stored text equals chronological order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// sqliteFoldFunc lowercases with Unicode rules. SQLite's own LOWER only folds ASCII.
const sqliteFoldFunc = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(sqliteFoldFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// dialect captures the differences between the supported databases.
// Queries are written with "?" placeholders and rebound per dialect.
type dialect struct {
	name       string
	driverName string
	positional bool
	schema     []string

	// fold names the SQL function used for case-insensitive comparison.
	fold string
}

func dialectFor(driver string) (dialect, error) {
	switch strings.ToLower(driver) {
	case DriverSQLite, "sqlite3":
		return dialect{name: DriverSQLite, driverName: "sqlite", schema: sqliteSchema, fold: sqliteFoldFunc}, nil
	case DriverPostgres, "pgx", "postgresql":
		return dialect{name: DriverPostgres, driverName: "pgx", positional: true, schema: postgresSchema, fold: "LOWER"}, nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// rebind rewrites "?" placeholders as "$1..$n" for positional dialects.
// Placeholders inside single-quoted literals are left alone.
func (d dialect) rebind(query string) string {
	if !d.positional {
		return query
	}

	var (
		b       strings.Builder
		n       int
		inQuote bool
	)

	b.Grow(len(query) + 8)

	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote

			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++

			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// folded wraps a column in the case folding function.
func (d dialect) folded(column string) string {
	return d.fold + "(" + column + ")"
}

// foldArg lowercases a query argument the same way stored values are folded.
func foldArg(s string) string {
	return strings.ToLower(s)
}

// timeArg encodes an instant as a query argument. Instants are always stored in UTC.
func (d dialect) timeArg(t time.Time) any {
	if d.positional {
		return t.UTC()
	}

	return t.UTC().Format(sqliteTimeLayout)
}

// timeValue scans a stored instant from either a native timestamp or its text form.
type timeValue struct {
	Time time.Time
}

// Scan implements sql.Scanner.
func (v *timeValue) Scan(src any) error {
	switch s := src.(type) {
	case time.Time:
		v.Time = s.UTC()
		return nil
	case string:
		return v.parse(s)
	case []byte:
		return v.parse(string(s))
	case nil:
		v.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported time value %T", src)
	}
}

func (v *timeValue) parse(s string) error {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("parse stored time %q: %w", s, err)
	}

	v.Time = t.UTC()

	return nil
}

// zoneOffset returns the UTC offset of t in seconds.
func zoneOffset(t time.Time) int {
	_, offset := t.Zone()
	return offset
}

// inZone restores an instant to the offset it was submitted with.
func inZone(t time.Time, offset int) time.Time {
	if offset == 0 {
		return t.UTC()
	}

	return t.In(time.FixedZone("", offset))
}
