package hrm

import "github.com/oleeahmmed/UniworldHrm/internal/platform/pgstore"

var (
	ErrNotFound = pgstore.ErrNotFound
	ErrInUse    = pgstore.ErrInUse
)

// ConstraintError carries a persistence-level rejection back to the form
// field that caused it.
type ConstraintError = pgstore.ConstraintError
