package repository

import (
	"context"
	"errors"

	driver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"storefront-service/src/pkg/databases/mysql"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDuplicateReference  = errors.New("duplicate transaction reference")
	ErrInvalidTransition   = errors.New("invalid payment status transition")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

// mysqlDuplicateEntry is the server error number for unique-key violations.
const mysqlDuplicateEntry = 1062

func isDuplicateEntry(err error) bool {
	var mysqlErr *driver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// withTx runs fn inside a transaction, rolling back on error.
func withTx(ctx context.Context, dbi mysql.DBInterface, fn func(tx *sqlx.Tx) error) error {
	db, err := dbi.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
