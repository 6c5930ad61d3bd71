package audit

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
)

type Event struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actorId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	RequestID  string          `json:"requestId"`
	IP         string          `json:"ip"`
	CreatedAt  time.Time       `json:"createdAt"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
}

// Entry is an audit event about to be written.
type Entry struct {
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	RequestID  string
	IP         string
	Before     any
	After      any
}

// Action names follow hrm.<entity>.<verb>.
func Action(entity, verb string) string {
	return "hrm." + entity + "." + verb
}

type Filter struct {
	Action     string `form:"action" json:"action" validate:"omitempty,max=100"`
	EntityType string `form:"entityType" json:"entityType" validate:"omitempty,max=100"`
	ActorUser  string `form:"actorUserId" json:"actorUserId" validate:"omitempty,uuid"`
}

func (f Filter) Apply(q query.Query) query.Query {
	if v := strings.TrimSpace(f.Action); v != "" {
		q = q.Filter(query.Eq("action", v))
	}
	if v := strings.TrimSpace(f.EntityType); v != "" {
		q = q.Filter(query.Eq("entity_type", v))
	}
	if v := strings.TrimSpace(f.ActorUser); v != "" {
		q = q.Filter(query.Eq("actor_user_id::text", v))
	}
	return q
}

// Execer is satisfied by the pool and by a transaction, so events can be
// written atomically with the change they describe.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func Record(ctx context.Context, db Execer, e Entry) error {
	before, err := marshal(e.Before)
	if err != nil {
		return errors.Wrap(err, "marshal before")
	}
	after, err := marshal(e.After)
	if err != nil {
		return errors.Wrap(err, "marshal after")
	}
	var actor any
	if e.ActorID != "" {
		actor = e.ActorID
	}
	_, err = db.Exec(ctx, `
    INSERT INTO audit_events (actor_user_id, action, entity_type, entity_id, before_json, after_json, request_id, ip)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
  `, actor, e.Action, e.EntityType, e.EntityID, before, after, e.RequestID, e.IP)
	return errors.Wrap(err, "insert audit event")
}

// Snapshotter is implemented by records that hold values which must not be
// copied into the audit trail in clear text.
type Snapshotter interface {
	AuditSnapshot() any
}

func marshal(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(snapshot(v))
}

// snapshot swaps records, and the elements of a bulk slice, for their audit
// snapshot.
func snapshot(v any) any {
	if s, ok := v.(Snapshotter); ok {
		return s.AuditSnapshot()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return v
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = snapshot(rv.Index(i).Interface())
	}
	return out
}

type Service struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

func (s *Service) Record(ctx context.Context, e Entry) error {
	return Record(ctx, s.DB, e)
}

func (s *Service) Count(ctx context.Context, filter Filter) (int, error) {
	where, args := filter.Apply(query.Query{}).WhereSQL(nil)
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM audit_events"+where, args...).Scan(&total); err != nil {
		return 0, errors.Wrap(err, "count audit events")
	}
	return total, nil
}

const eventColumns = "id, COALESCE(actor_user_id::text, ''), action, entity_type, entity_id, request_id, ip, created_at"

func (s *Service) List(ctx context.Context, filter Filter, includeDetails bool, limit, offset int) ([]Event, error) {
	cols := eventColumns
	if includeDetails {
		cols += ", before_json, after_json"
	}
	q := filter.Apply(query.Query{}).Page(limit, offset)
	where, args := q.WhereSQL(nil)
	page, args := q.LimitSQL(args)

	rows, err := s.DB.Query(ctx, "SELECT "+cols+" FROM audit_events"+where+" ORDER BY created_at DESC"+page, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list audit events")
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var evt Event
		dest := []any{&evt.ID, &evt.ActorID, &evt.Action, &evt.EntityType, &evt.EntityID, &evt.RequestID, &evt.IP, &evt.CreatedAt}
		var before, after []byte
		if includeDetails {
			dest = append(dest, &before, &after)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrap(err, "scan audit event")
		}
		evt.Before, evt.After = before, after
		out = append(out, evt)
	}
	return out, errors.Wrap(rows.Err(), "list audit events")
}

func (s *Service) ListExport(ctx context.Context, filter Filter) ([]Event, error) {
	return s.List(ctx, filter, false, 0, 0)
}
