// Package hrmtest provides in-memory repositories that evaluate the same
// predicate trees the Postgres store renders to SQL.
package hrmtest

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/audit"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
)

type record[T any] interface {
	*T
	Columns() query.Columns
	Key() string
}

type Memory[T any, P record[T]] struct {
	mu   sync.Mutex
	rows []*T

	// Unique maps a qualified column to the field reported on a duplicate.
	Unique map[string]string
	Events []audit.Entry
}

func NewMemory[T any, P record[T]](unique map[string]string) *Memory[T, P] {
	return &Memory[T, P]{Unique: unique}
}

func (m *Memory[T, P]) List(_ context.Context, q query.Query) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []T{}
	skipped := 0
	for _, row := range m.rows {
		if !q.Match(P(row).Columns()) {
			continue
		}
		if skipped < q.Offset {
			skipped++
			continue
		}
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
		out = append(out, *query.Clone[T, P](row))
	}
	return out, nil
}

func (m *Memory[T, P]) Count(_ context.Context, q query.Query) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, row := range m.rows {
		if q.Match(P(row).Columns()) {
			n++
		}
	}
	return n, nil
}

func (m *Memory[T, P]) Get(_ context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.index(id); i >= 0 {
		return query.Clone[T, P](m.rows[i]), nil
	}
	return nil, hrm.ErrNotFound
}

func (m *Memory[T, P]) Create(_ context.Context, item *T, ev audit.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkUnique(item, ""); err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, c := range P(item).Columns() {
		switch {
		case c.Has(query.Key):
			*c.Ref.(*string) = uuid.NewString()
		case c.Has(query.Generated):
			if ts, ok := c.Ref.(*time.Time); ok {
				*ts = now
			}
		}
	}
	m.rows = append(m.rows, query.Clone[T, P](item))
	ev.EntityID, ev.After = P(item).Key(), query.Clone[T, P](item)
	m.Events = append(m.Events, ev)
	return nil
}

func (m *Memory[T, P]) Update(_ context.Context, item *T, ev audit.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := P(item).Key()
	i := m.index(id)
	if i < 0 {
		return hrm.ErrNotFound
	}
	if err := m.checkUnique(item, id); err != nil {
		return err
	}
	prev := P(m.rows[i]).Columns()
	for j, c := range P(item).Columns() {
		ts, ok := c.Ref.(*time.Time)
		if !ok || !c.Has(query.Generated) {
			continue
		}
		if c.Name == "updated_at" {
			*ts = time.Now().UTC()
		} else if old, ok := prev[j].Ref.(*time.Time); ok {
			*ts = *old
		}
	}
	m.rows[i] = query.Clone[T, P](item)
	ev.EntityID, ev.After = id, query.Clone[T, P](item)
	m.Events = append(m.Events, ev)
	return nil
}

func (m *Memory[T, P]) Delete(_ context.Context, ids []string, ev audit.Entry) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	drop := map[string]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	kept := m.rows[:0]
	var n int64
	for _, row := range m.rows {
		if drop[P(row).Key()] {
			n++
			continue
		}
		kept = append(kept, row)
	}
	m.rows = kept
	ev.EntityID = strings.Join(ids, ",")
	m.Events = append(m.Events, ev)
	return n, nil
}

// Len reports how many rows are stored.
func (m *Memory[T, P]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *Memory[T, P]) index(id string) int {
	for i, row := range m.rows {
		if P(row).Key() == id {
			return i
		}
	}
	return -1
}

func (m *Memory[T, P]) checkUnique(item *T, self string) error {
	cols := P(item).Columns()
	for column, field := range m.Unique {
		want, ok := cols.Value(column)
		if !ok || want == nil || fmt.Sprint(want) == "" {
			continue
		}
		for _, row := range m.rows {
			if P(row).Key() == self {
				continue
			}
			if got, _ := P(row).Columns().Value(column); fmt.Sprint(got) == fmt.Sprint(want) {
				return &hrm.ConstraintError{Field: field, Reason: "already exists"}
			}
		}
	}
	return nil
}

// Employees adds the employee code lookup to the generic memory store.
type Employees struct {
	*Memory[hrm.Employee, *hrm.Employee]
}

func NewEmployees() *Employees {
	return &Employees{NewMemory[hrm.Employee, *hrm.Employee](map[string]string{
		"emp.employee_id": "employeeId",
		"emp.email":       "email",
	})}
}

func (m *Employees) MaxEmployeeCode(_ context.Context, prefix string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var best string
	var bestN *big.Int
	for _, row := range m.rows {
		digits, ok := strings.CutPrefix(row.EmployeeID, prefix)
		if !ok || digits == "" {
			continue
		}
		n, ok := new(big.Int).SetString(digits, 10)
		if !ok || strings.ContainsAny(digits, "+-") {
			continue
		}
		if bestN == nil || n.Cmp(bestN) > 0 {
			best, bestN = row.EmployeeID, n
		}
	}
	return best, nil
}
