package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"log"
)

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HasTable reports whether the current schema has the table. Any error,
// including a bad connection, reads as "no table".
func HasTable(ctx context.Context, q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		logBadConn("HasTable", err)
		return false
	}
	return name.Valid && name.String != ""
}

func HasColumn(ctx context.Context, q QueryRower, table, column string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)
	if err != nil {
		logBadConn("HasColumn", err)
		return false
	}
	return name.Valid && name.String != ""
}

// ColumnOr returns the COALESCEd column when it exists, else the fallback
// literal, so optional columns can be selected uniformly.
func ColumnOr(ctx context.Context, q QueryRower, table, column, fallback string) string {
	if HasColumn(ctx, q, table, column) {
		return "COALESCE(" + column + "," + fallback + ")"
	}
	return fallback
}

func logBadConn(tag string, err error) {
	if errors.Is(err, driver.ErrBadConn) {
		log.Println("[DB]", tag, "driver.ErrBadConn")
	}
}
