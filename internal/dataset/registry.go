package dataset

import (
	"encoding/json"
	stderrors "errors"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownDataset is returned by Get for names that were never registered.
	ErrUnknownDataset = stderrors.New("unknown dataset")
	// ErrSchemaMismatch marks a definition whose rows do not match its schema.
	ErrSchemaMismatch = stderrors.New("schema mismatch")
)

// Definition is the authored form of a dataset before type-checking.
type Definition struct {
	Name        string           `json:"name" toml:"name"`
	Description string           `json:"description,omitempty" toml:"description"`
	Fields      []Field          `json:"fields" toml:"fields"`
	Rows        []map[string]any `json:"rows" toml:"rows"`
}

// Registry maps dataset names to immutable datasets.
type Registry struct {
	order []string
	byKey map[string]*Dataset
}

// NewRegistry type-checks every definition and returns the registry.
// Any schema violation fails the whole construction.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{byKey: make(map[string]*Dataset, len(defs))}
	for _, def := range defs {
		ds, err := build(def)
		if err != nil {
			return nil, err
		}
		if _, dup := r.byKey[ds.name]; dup {
			return nil, errors.Wrapf(ErrSchemaMismatch, "dataset %q registered twice", ds.name)
		}
		r.byKey[ds.name] = ds
		r.order = append(r.order, ds.name)
	}
	return r, nil
}

// Get returns the named dataset.
func (r *Registry) Get(name string) (*Dataset, error) {
	ds, ok := r.byKey[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDataset, "dataset %q", name)
	}
	return ds, nil
}

// Names lists registered datasets in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Datasets returns every dataset in registration order.
func (r *Registry) Datasets() []*Dataset {
	out := make([]*Dataset, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byKey[n])
	}
	return out
}

func build(def Definition) (*Dataset, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return nil, errors.Wrap(ErrSchemaMismatch, "dataset without a name")
	}
	if len(def.Fields) == 0 {
		return nil, errors.Wrapf(ErrSchemaMismatch, "dataset %q declares no fields", name)
	}

	seen := make(map[string]bool, len(def.Fields))
	for _, f := range def.Fields {
		if f.Name == "" {
			return nil, errors.Wrapf(ErrSchemaMismatch, "dataset %q has an unnamed field", name)
		}
		if seen[f.Name] {
			return nil, errors.Wrapf(ErrSchemaMismatch, "dataset %q declares field %q twice", name, f.Name)
		}
		if !f.Kind.valid() {
			return nil, errors.Wrapf(ErrSchemaMismatch, "dataset %q field %q has unknown kind %q", name, f.Name, f.Kind)
		}
		seen[f.Name] = true
	}

	ds := &Dataset{name: name, description: def.Description, schema: newSchema(def.Fields)}
	for i, row := range def.Rows {
		if extra := extraKeys(row, seen); len(extra) > 0 {
			return nil, errors.Wrapf(ErrSchemaMismatch, "dataset %q row %d has undeclared fields %v", name, i, extra)
		}
		values := make([]Value, len(def.Fields))
		for j, f := range def.Fields {
			raw, ok := row[f.Name]
			if !ok {
				return nil, errors.Wrapf(ErrSchemaMismatch, "dataset %q row %d is missing field %q", name, i, f.Name)
			}
			v, err := coerce(f.Kind, raw)
			if err != nil {
				return nil, errors.Wrapf(err, "dataset %q row %d field %q", name, i, f.Name)
			}
			values[j] = v
		}
		ds.records = append(ds.records, Record{schema: &ds.schema, values: values})
	}
	return ds, nil
}

func extraKeys(row map[string]any, declared map[string]bool) []string {
	var extra []string
	for k := range row {
		if !declared[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return extra
}

// coerce converts a decoded TOML/JSON value to the declared kind.
func coerce(kind Kind, raw any) (Value, error) {
	if kind == KindText {
		s, ok := raw.(string)
		if !ok {
			return Value{}, errors.Wrapf(ErrSchemaMismatch, "want text, got %T", raw)
		}
		return Text(s), nil
	}

	f, ok := toFloat(raw)
	if !ok {
		return Value{}, errors.Wrapf(ErrSchemaMismatch, "want %s, got %T", kind, raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, errors.Wrapf(ErrSchemaMismatch, "non-finite %s", kind)
	}
	if kind == KindInt {
		if f != math.Trunc(f) {
			return Value{}, errors.Wrapf(ErrSchemaMismatch, "want int, got %v", f)
		}
		return Int(int64(f)), nil
	}
	return Number(f), nil
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Definition converts d back to its authored form. Feeding the result to
// NewRegistry yields an equal dataset.
func (d *Dataset) Definition() Definition {
	def := Definition{
		Name:        d.name,
		Description: d.description,
		Fields:      d.schema.Fields(),
		Rows:        make([]map[string]any, 0, len(d.records)),
	}
	for _, rec := range d.records {
		row := make(map[string]any, len(def.Fields))
		for i, f := range def.Fields {
			row[f.Name] = rec.values[i].Raw()
		}
		def.Rows = append(def.Rows, row)
	}
	return def
}
