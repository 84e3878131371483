package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/port"
)

// ErrNotFound aliases the port-level sentinel so callers inside this package
// read naturally.
var ErrNotFound = port.ErrNotFound

// scannable is satisfied by both pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
