// Package dberr classifies database errors coming back through gorm/pgx.
//
// Classification looks at the Postgres SQLSTATE first and falls back to message
// substrings, because errors relayed through other layers often only keep the text.
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	CodeUndefinedTable  = "42P01"
	CodeUndefinedColumn = "42703"
	CodeDuplicateTable  = "42P07"
	CodeDuplicateObject = "42710"
	CodeDuplicateColumn = "42701"
	CodeUniqueViolation = "23505"
)

func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsMissingRelation reports a missing table or column.
func IsMissingRelation(err error) bool {
	if err == nil {
		return false
	}
	switch Code(err) {
	case CodeUndefinedTable, CodeUndefinedColumn:
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "does not exist") &&
		(strings.Contains(msg, "relation") || strings.Contains(msg, "column"))
}

// IsDuplicate reports unique violations and "already exists" DDL errors.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	switch Code(err) {
	case CodeUniqueViolation, CodeDuplicateTable, CodeDuplicateObject, CodeDuplicateColumn:
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate")
}

// IsBenign reports errors the seeding and repair tools log and skip.
func IsBenign(err error) bool {
	return IsDuplicate(err) || IsMissingRelation(err)
}
