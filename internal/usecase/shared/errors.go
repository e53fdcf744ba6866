package shared

import (
	"billboard-booking/internal/infra"
	"billboard-booking/internal/pkg/errs"
)

// SessionErr translates session store failures into domain markers.
func SessionErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrSessionNotFound)
	}
	return errs.Mark(err, errs.ErrSystemUnavailable)
}

// ResourceErr translates resource lookups into domain markers.
func ResourceErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrResourceNotFound)
	}
	return errs.Mark(err, errs.ErrSystemUnavailable)
}

// WriteErr classifies a failed booking write: a store-side overlap is an
// availability conflict, anything else a persistence failure.
func WriteErr(err error) error {
	if err == nil {
		return nil
	}
	switch infra.KindOf(err) {
	case infra.KindConflict, infra.KindDuplicateKey:
		return errs.Mark(err, errs.ErrAvailabilityConflict)
	case infra.KindNotFound:
		return errs.Mark(err, errs.ErrBookingNotFound)
	}
	return errs.Mark(err, errs.ErrPersistence)
}
