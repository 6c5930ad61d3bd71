package hrm

import (
	"context"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/audit"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
)

// Repository persists one record type. Mutations write their audit entry in
// the same transaction.
type Repository[T any] interface {
	List(ctx context.Context, q query.Query) ([]T, error)
	Count(ctx context.Context, q query.Query) (int, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T, ev audit.Entry) error
	Update(ctx context.Context, item *T, ev audit.Entry) error
	Delete(ctx context.Context, ids []string, ev audit.Entry) (int64, error)
}

type EmployeeRepository interface {
	Repository[Employee]
	// MaxEmployeeCode returns the numerically largest code with the prefix,
	// or "" when there is none.
	MaxEmployeeCode(ctx context.Context, prefix string) (string, error)
}
