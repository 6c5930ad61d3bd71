package query

import (
	"fmt"
	"slices"
	"strings"
)

// Row is anything a predicate can be evaluated against without a database.
type Row interface {
	Value(column string) (any, bool)
}

type Predicate interface {
	render(args *[]any) string
	Match(row Row) bool
}

// Query is a value type: Filter and Page return modified copies.
type Query struct {
	Where  []Predicate
	Limit  int
	Offset int
}

func (q Query) Filter(p Predicate) Query {
	if p == nil {
		return q
	}
	out := q
	out.Where = append(slices.Clip(q.Where), p)
	return out
}

func (q Query) Page(limit, offset int) Query {
	out := q
	out.Limit = limit
	out.Offset = offset
	return out
}

// WhereSQL renders the predicates as a " WHERE ..." clause whose placeholders
// start after the args already collected.
func (q Query) WhereSQL(args []any) (string, []any) {
	if len(q.Where) == 0 {
		return "", args
	}
	parts := make([]string, 0, len(q.Where))
	for _, p := range q.Where {
		parts = append(parts, p.render(&args))
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

// LimitSQL renders LIMIT/OFFSET. A zero limit means unbounded.
func (q Query) LimitSQL(args []any) (string, []any) {
	var b strings.Builder
	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}
	return b.String(), args
}

func (q Query) Match(row Row) bool {
	for _, p := range q.Where {
		if !p.Match(row) {
			return false
		}
	}
	return true
}

type eq struct {
	column string
	value  any
}

func Eq(column string, value any) Predicate {
	return eq{column: column, value: value}
}

func (p eq) render(args *[]any) string {
	*args = append(*args, p.value)
	return fmt.Sprintf("%s = $%d", p.column, len(*args))
}

func (p eq) Match(row Row) bool {
	got, ok := row.Value(p.column)
	if !ok || got == nil {
		return false
	}
	if got == p.value {
		return true
	}
	return fmt.Sprint(got) == fmt.Sprint(p.value)
}

type icontains struct {
	column string
	text   string
}

// IContains matches rows whose column contains text, ignoring case.
func IContains(column, text string) Predicate {
	return icontains{column: column, text: text}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (p icontains) render(args *[]any) string {
	*args = append(*args, "%"+likeEscaper.Replace(p.text)+"%")
	return fmt.Sprintf("%s ILIKE $%d", p.column, len(*args))
}

func (p icontains) Match(row Row) bool {
	got, ok := row.Value(p.column)
	if !ok || got == nil {
		return false
	}
	return strings.Contains(strings.ToLower(fmt.Sprint(got)), strings.ToLower(p.text))
}

type or []Predicate

func Or(preds ...Predicate) Predicate {
	return or(preds)
}

func (p or) render(args *[]any) string {
	if len(p) == 0 {
		return "FALSE"
	}
	parts := make([]string, 0, len(p))
	for _, child := range p {
		parts = append(parts, child.render(args))
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func (p or) Match(row Row) bool {
	for _, child := range p {
		if child.Match(row) {
			return true
		}
	}
	return false
}

type and []Predicate

func And(preds ...Predicate) Predicate {
	return and(preds)
}

func (p and) render(args *[]any) string {
	if len(p) == 0 {
		return "TRUE"
	}
	parts := make([]string, 0, len(p))
	for _, child := range p {
		parts = append(parts, child.render(args))
	}
	return "(" + strings.Join(parts, " AND ") + ")"
}

func (p and) Match(row Row) bool {
	for _, child := range p {
		if !child.Match(row) {
			return false
		}
	}
	return true
}

// ContainsAny ORs a case-insensitive substring match over columns.
func ContainsAny(text string, columns ...string) Predicate {
	preds := make([]Predicate, 0, len(columns))
	for _, col := range columns {
		preds = append(preds, IContains(col, text))
	}
	return Or(preds...)
}
