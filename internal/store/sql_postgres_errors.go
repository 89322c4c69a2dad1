package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement could succeed on a
// second attempt. The repositories only log it.
type ErrorClassification int

const (
	// NonRetryable is the classification of unknown errors, constraint
	// violations and malformed statements.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a dropped connection or a
	// deadlock rollback.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] over the SQLSTATE
// codes reported by pgx.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Connection exceptions (class 08),
// transaction rollbacks (class 40) and 57P03 "cannot connect now" are
// retryable, everything else is not.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code, ok := sqlState(err)
	if !ok {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// IsConstraintViolation implements [ErrorClassificator]. Every code of
// class 23 counts as a violation.
func (c *PostgresErrorClassifier) IsConstraintViolation(err error) bool {
	code, ok := sqlState(err)
	return ok && pgerrcode.IsIntegrityConstraintViolation(code)
}

func sqlState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	return pgErr.Code, true
}
