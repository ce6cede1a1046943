package repository

import (
	"errors"

	"bookmarket/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

// storeKind classifies a raw pg error into a repository error kind so
// write paths can report constraint violations distinctly from plain
// database failures.
func storeKind(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.KindDuplicateKey
		case pgForeignKeyViolation:
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}
