package sql

import (
	"context"
	"database/sql"
	"regexp"
	"strconv"
	"strings"

	"github.com/syssam/entigen/schema"
)

// tinyintWidthRe extracts the display width from a raw COLUMN_TYPE such as
// "tinyint(1)". The width decides the boolean special case in the mapper.
var tinyintWidthRe = regexp.MustCompile(`^tinyint\((\d+)\)`)

// Inspector reads table and column metadata from the information_schema
// catalog of a single database.
type Inspector struct {
	drv      *Driver
	database string
}

// NewInspector creates an Inspector scoped to the given database name.
func NewInspector(drv *Driver, database string) *Inspector {
	return &Inspector{drv: drv, database: database}
}

// Tables returns the base-table names of the configured database in
// TABLE_NAME order, so a run processes tables deterministically regardless
// of catalog storage order. A database with zero tables is a SchemaError;
// there is nothing useful to generate.
func (i *Inspector) Tables(ctx context.Context) ([]string, error) {
	const q = `
		SELECT TABLE_NAME
		FROM information_schema.tables
		WHERE TABLE_SCHEMA = ?
		  AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME`

	rows, err := i.drv.DB().QueryContext(ctx, q, i.database)
	if err != nil {
		return nil, NewConnectionError(i.database, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, NewConnectionError(i.database, err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, NewConnectionError(i.database, err)
	}
	if len(tables) == 0 {
		return nil, NewSchemaError(i.database)
	}
	return tables, nil
}

// Table returns the column metadata of one table in ordinal order.
func (i *Inspector) Table(ctx context.Context, name string) (schema.Table, error) {
	const q = `
		SELECT
			COLUMN_NAME,
			DATA_TYPE,
			IS_NULLABLE,
			COLUMN_KEY,
			EXTRA,
			CHARACTER_MAXIMUM_LENGTH,
			NUMERIC_PRECISION,
			NUMERIC_SCALE,
			COLUMN_TYPE,
			ORDINAL_POSITION
		FROM information_schema.columns
		WHERE TABLE_SCHEMA = ?
		  AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION`

	rows, err := i.drv.DB().QueryContext(ctx, q, i.database, name)
	if err != nil {
		return schema.Table{}, NewConnectionError(i.database, err)
	}
	defer rows.Close()

	t := schema.Table{Name: name}
	for rows.Next() {
		var (
			col        schema.Column
			nullable   string
			columnKey  string
			extra      string
			charLength sql.NullInt64
			precision  sql.NullInt64
			scale      sql.NullInt64
			columnType string
		)
		if err := rows.Scan(
			&col.Name, &col.DataType, &nullable, &columnKey, &extra,
			&charLength, &precision, &scale, &columnType, &col.Ordinal,
		); err != nil {
			return schema.Table{}, NewConnectionError(i.database, err)
		}
		col.DataType = strings.ToLower(col.DataType)
		col.Nullable = nullable == "YES"
		col.PrimaryKey = columnKey == "PRI"
		col.AutoIncrement = strings.Contains(extra, "auto_increment")
		col.MaxLength = columnLength(col.DataType, columnType, charLength)
		if precision.Valid {
			col.Precision = int(precision.Int64)
		}
		if scale.Valid {
			col.Scale = int(scale.Int64)
		}
		t.Columns = append(t.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return schema.Table{}, NewConnectionError(i.database, err)
	}
	return t, nil
}

// columnLength resolves the length descriptor for a column: the display
// width parsed from COLUMN_TYPE for tinyint, CHARACTER_MAXIMUM_LENGTH for
// everything else.
func columnLength(dataType, columnType string, charLength sql.NullInt64) int {
	if dataType == "tinyint" {
		if m := tinyintWidthRe.FindStringSubmatch(strings.ToLower(columnType)); m != nil {
			width, _ := strconv.Atoi(m[1])
			return width
		}
		return 0
	}
	if charLength.Valid {
		return int(charLength.Int64)
	}
	return 0
}

// CreateStatement returns the server's CREATE TABLE statement for the
// given table, as reported by SHOW CREATE TABLE.
func (i *Inspector) CreateStatement(ctx context.Context, name string) (string, error) {
	var table, stmt string
	row := i.drv.DB().QueryRowContext(ctx, "SHOW CREATE TABLE `"+name+"`")
	if err := row.Scan(&table, &stmt); err != nil {
		return "", NewConnectionError(i.database, err)
	}
	return stmt, nil
}
