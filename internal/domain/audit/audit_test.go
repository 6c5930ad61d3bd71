package audit

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
)

func TestFilterApply(t *testing.T) {
	where, args := Filter{Action: " hrm.employee.create ", ActorUser: "9b2f6a5e-1c1a-4c47-9d55-0d8f7c1e2a10"}.
		Apply(query.Query{}).WhereSQL(nil)

	assert.Equal(t, " WHERE action = $1 AND actor_user_id::text = $2", where)
	assert.Equal(t, []any{"hrm.employee.create", "9b2f6a5e-1c1a-4c47-9d55-0d8f7c1e2a10"}, args)
}

func TestEmptyFilterAddsNothing(t *testing.T) {
	q := Filter{}.Apply(query.Query{})
	assert.Empty(t, q.Where)
}

func TestActionName(t *testing.T) {
	assert.Equal(t, "hrm.employee.bulk_delete", Action("employee", "bulk_delete"))
}

type execRecorder struct {
	sql  string
	args []any
}

func (e *execRecorder) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.sql, e.args = sql, args
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestRecordMarshalsSnapshots(t *testing.T) {
	rec := &execRecorder{}
	err := Record(context.Background(), rec, Entry{
		Action:     "hrm.department.update",
		EntityType: "department",
		EntityID:   "d1",
		After:      map[string]string{"name": "Finance"},
	})
	require.NoError(t, err)
	require.Len(t, rec.args, 8)

	assert.Nil(t, rec.args[0], "system actor is stored as NULL")
	assert.Nil(t, rec.args[4])
	assert.JSONEq(t, `{"name":"Finance"}`, string(rec.args[5].([]byte)))
}

type secretRecord struct {
	Name   string `json:"name"`
	Secret string `json:"secret"`
}

func (r secretRecord) AuditSnapshot() any {
	r.Secret = "***"
	return r
}

func TestRecordUsesAuditSnapshots(t *testing.T) {
	rec := &execRecorder{}
	err := Record(context.Background(), rec, Entry{
		Action: "hrm.employee.bulk_delete",
		Before: []secretRecord{{Name: "a", Secret: "1234"}, {Name: "b", Secret: "5678"}},
		After:  &secretRecord{Name: "c", Secret: "9999"},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"name":"a","secret":"***"},{"name":"b","secret":"***"}]`, string(rec.args[4].([]byte)))
	assert.JSONEq(t, `{"name":"c","secret":"***"}`, string(rec.args[5].([]byte)))
}
