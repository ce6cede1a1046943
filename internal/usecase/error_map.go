package usecase

import (
	"bookmarket/internal/infra"
	"bookmarket/internal/pkg/errs"
)

// translateStoreErr converts store-layer error kinds into usecase
// sentinels so handlers never branch on infra types. notFound is the
// sentinel for both a missing row and a broken reference; everything
// else is a data access failure, except duplicate keys which always
// mean a booking conflict.
func translateStoreErr(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrBookingConflict)
	default:
		return errs.Mark(err, ErrDataAccessFailed)
	}
}
