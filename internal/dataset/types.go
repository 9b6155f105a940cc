// Package dataset holds the immutable, schema-checked datasets shown by abxdash.
//
// Datasets are authored once (embedded TOML or a sqlite export) and type-checked
// against their declared schema when the Registry is built. Nothing in this
// package mutates a Dataset after construction.
package dataset

import (
	"fmt"
	"strconv"
)

// Kind is the declared type of a schema field.
type Kind string

const (
	KindInt    Kind = "int"
	KindNumber Kind = "number"
	KindText   Kind = "text"
)

// Numeric reports whether values of this kind can be plotted.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindNumber
}

func (k Kind) valid() bool {
	switch k {
	case KindInt, KindNumber, KindText:
		return true
	}
	return false
}

// Field describes one column of a dataset.
type Field struct {
	Name  string `json:"name" toml:"name"`
	Label string `json:"label,omitempty" toml:"label"`
	Kind  Kind   `json:"kind" toml:"kind"`
	Unit  string `json:"unit,omitempty" toml:"unit"`
}

// DisplayLabel returns the authored label, falling back to the field name.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Schema is the ordered field list shared by every record of a dataset.
type Schema struct {
	fields []Field
	index  map[string]int
}

func newSchema(fields []Field) Schema {
	s := Schema{fields: append([]Field(nil), fields...), index: make(map[string]int, len(fields))}
	for i, f := range s.fields {
		s.index[f.Name] = i
	}
	return s
}

// Fields returns the schema in declared order.
func (s Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Len returns the number of fields.
func (s Schema) Len() int { return len(s.fields) }

// Value is a single numeric or text cell.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Number builds a numeric value.
func Number(v float64) Value { return Value{kind: KindNumber, num: v} }

// Int builds an integral numeric value.
func Int(v int64) Value { return Value{kind: KindInt, num: float64(v)} }

// Text builds a text value.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Float returns the numeric value; ok is false for text.
func (v Value) Float() (float64, bool) {
	if !v.kind.Numeric() {
		return 0, false
	}
	return v.num, true
}

// String formats the value for display without any unit.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.str
	case KindInt:
		return strconv.FormatInt(int64(v.num), 10)
	default:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
}

// Raw returns the value as a plain Go value (int64, float64 or string).
func (v Value) Raw() any {
	switch v.kind {
	case KindText:
		return v.str
	case KindInt:
		return int64(v.num)
	default:
		return v.num
	}
}

// Record is one observation, aligned to its dataset's schema.
type Record struct {
	schema *Schema
	values []Value
}

// Get returns the named field's value.
func (r Record) Get(name string) (Value, bool) {
	if r.schema == nil {
		return Value{}, false
	}
	i, ok := r.schema.index[name]
	if !ok {
		return Value{}, false
	}
	return r.values[i], true
}

// Values returns the cells in schema order.
func (r Record) Values() []Value {
	return append([]Value(nil), r.values...)
}

// Dataset is an ordered sequence of records sharing one schema.
type Dataset struct {
	name        string
	description string
	schema      Schema
	records     []Record
}

func (d *Dataset) Name() string        { return d.name }
func (d *Dataset) Description() string { return d.description }
func (d *Dataset) Schema() Schema      { return d.schema }
func (d *Dataset) Len() int            { return len(d.records) }

// Records returns the records in authored order.
func (d *Dataset) Records() []Record {
	return append([]Record(nil), d.records...)
}

func (d *Dataset) String() string {
	return fmt.Sprintf("%s (%d fields, %d records)", d.name, d.schema.Len(), len(d.records))
}
