package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Storage error kinds. Match them with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrConnectionFailure   = errors.New("connection failure")
)

// StorageError carries the failed operation alongside its kind and the
// underlying driver error.
type StorageError struct {
	Op         string
	Table      string
	Constraint string
	Kind       error
	Err        error
}

func (e *StorageError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Kind)
	if e.Constraint != "" {
		msg += fmt.Sprintf(" (%s)", e.Constraint)
	}
	if e.Err != nil && e.Err != e.Kind {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StorageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// wrap classifies err and annotates it with the operation. Errors that fit no
// kind are returned wrapped but unclassified.
func wrap(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &StorageError{Op: op, Table: table, Kind: ErrNotFound, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
			return &StorageError{Op: op, Table: table, Constraint: pgErr.ConstraintName, Kind: ErrConstraintViolation, Err: err}
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgErr.Code == pgerrcode.AdminShutdown,
			pgErr.Code == pgerrcode.CannotConnectNow:
			return &StorageError{Op: op, Table: table, Kind: ErrConnectionFailure, Err: err}
		}
		return fmt.Errorf("%s %s: %w", op, table, err)
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return &StorageError{Op: op, Table: table, Kind: ErrConnectionFailure, Err: err}
	}

	return fmt.Errorf("%s %s: %w", op, table, err)
}

func notFound(op, table string) error {
	return &StorageError{Op: op, Table: table, Kind: ErrNotFound}
}

// expectOne turns a zero-row update or delete into ErrNotFound.
func expectOne(op, table string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return wrap(op, table, err)
	}
	if n == 0 {
		return notFound(op, table)
	}
	return nil
}
