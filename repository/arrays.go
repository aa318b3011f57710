package repository

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgtype"
)

// textArray returns a scanner that decodes a Postgres text[] column into dst.
// database/sql has no native slice support, so pgtype does the decoding; a fresh
// Map is used per scanner because pgtype.Map is not safe for concurrent use.
func textArray(dst *[]string) sql.Scanner {
	return pgtype.NewMap().SQLScanner(dst)
}

// nonNil keeps NOT NULL text[] columns from receiving NULL
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
