package query

import (
	"reflect"
	"strings"
)

type Mode uint8

const (
	// Data columns are selected, inserted and updated.
	Data Mode = 0
	// Key is the primary key; set by the database on insert.
	Key Mode = 1 << iota
	// Generated columns (timestamps) are only ever read.
	Generated
	// Joined columns come from another table and are only ever read.
	Joined
	// Immutable columns are written on insert and never updated.
	Immutable
	// NullIfEmpty stores the zero string as NULL.
	NullIfEmpty
	// Encrypted columns are stored as ciphertext bytes.
	Encrypted
)

// Column ties a SQL column to the struct field that holds its value.
type Column struct {
	Table string
	Name  string
	Ref   any
	Mode  Mode
}

func (c Column) Qualified() string {
	if c.Table == "" {
		return c.Name
	}
	return c.Table + "." + c.Name
}

func (c Column) Has(m Mode) bool {
	return c.Mode&m != 0
}

// Writable reports whether the column is part of INSERT.
func (c Column) Writable() bool {
	return !c.Has(Key | Generated | Joined)
}

// Updatable reports whether the column is part of UPDATE ... SET.
func (c Column) Updatable() bool {
	return c.Writable() && !c.Has(Immutable)
}

type Columns []Column

// Value returns the dereferenced value of the column with the given qualified
// name, or its bare name when unambiguous.
func (cs Columns) Value(name string) (any, bool) {
	for _, c := range cs {
		if c.Qualified() == name || (!strings.Contains(name, ".") && c.Name == name) {
			return deref(c.Ref), true
		}
	}
	return nil, false
}

func (cs Columns) Select() []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Qualified())
	}
	return out
}

// CopyImmutable overwrites every immutable column of cs with the value held by
// the same column in from.
func (cs Columns) CopyImmutable(from Columns) {
	for i, c := range cs {
		if !c.Has(Immutable) || i >= len(from) || from[i].Name != c.Name {
			continue
		}
		dst := reflect.ValueOf(c.Ref)
		src := reflect.ValueOf(from[i].Ref)
		if dst.Kind() != reflect.Pointer || src.Type() != dst.Type() {
			continue
		}
		dst.Elem().Set(src.Elem())
	}
}

// Detach gives every pointer field behind cs its own copy of the value it
// points at, so a shallow struct copy no longer shares it with the original.
func (cs Columns) Detach() {
	for _, c := range cs {
		ref := reflect.ValueOf(c.Ref)
		if ref.Kind() != reflect.Pointer || ref.IsNil() {
			continue
		}
		field := ref.Elem()
		if field.Kind() != reflect.Pointer || field.IsNil() {
			continue
		}
		fresh := reflect.New(field.Type().Elem())
		fresh.Elem().Set(field.Elem())
		field.Set(fresh)
	}
}

// Clone copies a record without sharing any pointer field with it.
func Clone[T any, P interface {
	*T
	Columns() Columns
}](item *T) *T {
	cp := *item
	P(&cp).Columns().Detach()
	return &cp
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
