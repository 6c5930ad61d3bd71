package pgstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
)

// DB is satisfied by *pgxpool.Pool and pgx.Tx.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Cipher interface {
	EncryptString(value string) ([]byte, error)
	DecryptString(value []byte) (string, error)
}

type Record interface {
	Columns() query.Columns
}

// Table maps a record type onto one table plus optional joins. The column
// descriptors returned by the record drive SELECT, INSERT and UPDATE alike.
type Table[T any, P interface {
	*T
	Record
}] struct {
	Name        string
	Alias       string
	Joins       string
	OrderBy     string
	Constraints map[string]string
	Cipher      Cipher
}

func (t *Table[T, P]) from() string {
	out := t.Name + " " + t.Alias
	if t.Joins != "" {
		out += " " + t.Joins
	}
	return out
}

func (t *Table[T, P]) List(ctx context.Context, db DB, q query.Query) ([]T, error) {
	var zero T
	cols := P(&zero).Columns()
	sql := "SELECT " + strings.Join(cols.Select(), ", ") + " FROM " + t.from()
	where, args := q.WhereSQL(nil)
	sql += where
	if t.OrderBy != "" {
		sql += " ORDER BY " + t.OrderBy
	}
	limit, args := q.LimitSQL(args)
	sql += limit

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, t.mapError(err, "list", false)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var item T
		if err := t.scan(rows, P(&item).Columns()); err != nil {
			return nil, errors.Wrapf(err, "scan %s", t.Name)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, t.mapError(err, "list", false)
	}
	return out, nil
}

func (t *Table[T, P]) Count(ctx context.Context, db DB, q query.Query) (int, error) {
	where, args := q.WhereSQL(nil)
	var total int
	if err := db.QueryRow(ctx, "SELECT COUNT(1) FROM "+t.from()+where, args...).Scan(&total); err != nil {
		return 0, t.mapError(err, "count", false)
	}
	return total, nil
}

func (t *Table[T, P]) Get(ctx context.Context, db DB, id string) (*T, error) {
	items, err := t.List(ctx, db, query.Query{}.Filter(query.Eq(t.Alias+".id", id)).Page(1, 0))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeInvalidText {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return &items[0], nil
}

// Insert writes item and reads back its key and generated columns.
func (t *Table[T, P]) Insert(ctx context.Context, db DB, item P) error {
	cols := item.Columns()
	var names, placeholders []string
	var args []any
	for _, c := range cols {
		if !c.Writable() {
			continue
		}
		value, err := t.encode(c)
		if err != nil {
			return err
		}
		args = append(args, value)
		names = append(names, c.Name)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}
	returning, dest := t.returning(cols)
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Name, strings.Join(names, ", "), strings.Join(placeholders, ", "), strings.Join(returning, ", "))
	if err := db.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		return t.mapError(err, "insert", false)
	}
	return nil
}

// Update rewrites every updatable column of the row identified by id.
func (t *Table[T, P]) Update(ctx context.Context, db DB, id string, item P) error {
	cols := item.Columns()
	var sets []string
	var args []any
	touchesUpdatedAt := false
	for _, c := range cols {
		if c.Has(query.Generated) && c.Table == t.Alias && c.Name == "updated_at" {
			touchesUpdatedAt = true
		}
		if !c.Updatable() {
			continue
		}
		value, err := t.encode(c)
		if err != nil {
			return err
		}
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Name, len(args)))
	}
	if touchesUpdatedAt {
		sets = append(sets, "updated_at = now()")
	}
	args = append(args, id)
	returning, dest := t.returning(cols)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		t.Name, strings.Join(sets, ", "), len(args), strings.Join(returning, ", "))
	if err := db.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		return t.mapError(err, "update", false)
	}
	return nil
}

// Delete removes the rows with the given ids and reports how many went.
func (t *Table[T, P]) Delete(ctx context.Context, db DB, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := db.Exec(ctx, "DELETE FROM "+t.Name+" WHERE id = ANY($1)", ids)
	if err != nil {
		return 0, t.mapError(err, "delete", true)
	}
	return tag.RowsAffected(), nil
}

func (t *Table[T, P]) returning(cols query.Columns) ([]string, []any) {
	var names []string
	var dest []any
	for _, c := range cols {
		if c.Has(query.Key|query.Generated) && (c.Table == "" || c.Table == t.Alias) {
			names = append(names, c.Name)
			dest = append(dest, c.Ref)
		}
	}
	return names, dest
}

func (t *Table[T, P]) encode(c query.Column) (any, error) {
	switch {
	case c.Has(query.Encrypted):
		plain, _ := c.Ref.(*string)
		if plain == nil || *plain == "" {
			return nil, nil
		}
		if t.Cipher == nil {
			return []byte(*plain), nil
		}
		enc, err := t.Cipher.EncryptString(*plain)
		if err != nil {
			return nil, errors.Wrapf(err, "encrypt %s.%s", t.Name, c.Name)
		}
		return enc, nil
	case c.Has(query.NullIfEmpty):
		if s, ok := c.Ref.(*string); ok && (s == nil || *s == "") {
			return nil, nil
		}
	}
	return c.Ref, nil
}

func (t *Table[T, P]) scan(rows pgx.Rows, cols query.Columns) error {
	dest := make([]any, len(cols))
	encrypted := map[int]*[]byte{}
	for i, c := range cols {
		if c.Has(query.Encrypted) {
			buf := new([]byte)
			encrypted[i] = buf
			dest[i] = buf
			continue
		}
		if c.Has(query.NullIfEmpty) {
			if s, ok := c.Ref.(*string); ok {
				dest[i] = &nullString{dst: s}
				continue
			}
		}
		dest[i] = c.Ref
	}
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	for i, buf := range encrypted {
		target, ok := cols[i].Ref.(*string)
		if !ok || len(*buf) == 0 {
			continue
		}
		*target = t.decrypt(cols[i], *buf)
	}
	return nil
}

// decrypt never hands ciphertext back as a value; a row that fails to
// decrypt reads as empty.
func (t *Table[T, P]) decrypt(c query.Column, raw []byte) string {
	if t.Cipher == nil {
		return string(raw)
	}
	plain, err := t.Cipher.DecryptString(raw)
	if err != nil {
		slog.Warn("decrypt column failed", "err", err, "table", t.Name, "column", c.Name)
		return ""
	}
	return plain
}

// nullString scans a nullable text column into a plain string.
type nullString struct {
	dst *string
}

func (n *nullString) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n.dst = ""
	case string:
		*n.dst = v
	case []byte:
		*n.dst = string(v)
	default:
		*n.dst = fmt.Sprint(v)
	}
	return nil
}
