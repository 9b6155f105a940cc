package render

import (
	stderrors "errors"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
	"github.com/Mr-Dark-debug/abxdash/internal/dataset"
	"github.com/Mr-Dark-debug/abxdash/pkg/numfmt"
)

var (
	// ErrFieldNotFound is returned when a descriptor names a field the
	// dataset's schema does not declare.
	ErrFieldNotFound = stderrors.New("field not found")
	// ErrFieldType is returned when a plotted field is not numeric.
	ErrFieldType = stderrors.New("field is not numeric")
	// ErrInvalidShare is returned when a pie breakdown has a negative value.
	ErrInvalidShare = stderrors.New("invalid share")
	// ErrUnknownKind is returned for descriptors of an unknown widget kind.
	ErrUnknownKind = stderrors.New("unknown widget kind")
)

// DatasetSource resolves dataset names. *dataset.Registry satisfies it.
type DatasetSource interface {
	Get(name string) (*dataset.Dataset, error)
}

// Renderer renders descriptors against a dataset source.
type Renderer struct {
	palette Palette
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPalette replaces the default palette. An empty palette is ignored.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		if len(p) > 0 {
			r.palette = append(Palette(nil), p...)
		}
	}
}

// New creates a renderer using DefaultPalette unless overridden.
func New(opts ...Option) *Renderer {
	r := &Renderer{palette: DefaultPalette()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the widget for d.
func (r *Renderer) Render(d catalog.Descriptor, src DatasetSource) (Widget, error) {
	w := Widget{
		Kind:    d.Kind,
		Title:   d.Title,
		Caption: d.Caption,
		Note:    d.Note,
	}

	if !d.Kind.Valid() {
		return Widget{}, errors.Wrapf(ErrUnknownKind, "%q", d.Kind)
	}
	if !d.Kind.NeedsData() {
		text := catalog.TextBlock{}
		if d.Text != nil {
			text = d.Text.Clone()
		}
		w.Text = &text
		return w, nil
	}

	ds, err := src.Get(d.Dataset)
	if err != nil {
		return Widget{}, err
	}
	w.Dataset = ds.Name()
	palette := r.palette
	if len(d.Hints.Colors) > 0 {
		palette = Palette(d.Hints.Colors)
	}

	switch d.Kind {
	case catalog.KindLine, catalog.KindBar:
		err = renderSeries(&w, d, ds, palette)
	case catalog.KindPie:
		err = renderPie(&w, d, ds, palette)
	case catalog.KindTable:
		renderGrid(&w, ds)
	}
	if err != nil {
		return Widget{}, err
	}
	return w, nil
}

// RenderView renders every widget of v in order. The first failure aborts.
func (r *Renderer) RenderView(v catalog.View, src DatasetSource) ([]Widget, error) {
	out := make([]Widget, 0, len(v.Widgets))
	for i, d := range v.Widgets {
		w, err := r.Render(d, src)
		if err != nil {
			return nil, errors.Wrapf(err, "view %q widget %d", v.ID, i)
		}
		out = append(out, w)
	}
	return out, nil
}

func renderSeries(w *Widget, d catalog.Descriptor, ds *dataset.Dataset, palette Palette) error {
	schema := ds.Schema()

	xf, ok := schema.Field(d.XField)
	if !ok {
		return errors.Wrapf(ErrFieldNotFound, "dataset %q has no x field %q", ds.Name(), d.XField)
	}
	// Bars may be keyed by a text category; lines need a numeric axis.
	if d.Kind == catalog.KindLine && !xf.Kind.Numeric() {
		return errors.Wrapf(ErrFieldType, "dataset %q x field %q", ds.Name(), xf.Name)
	}
	if len(d.YFields) == 0 {
		return errors.Wrapf(ErrFieldNotFound, "%s over %q selects no value fields", d.Kind, ds.Name())
	}

	yfs := make([]dataset.Field, 0, len(d.YFields))
	for _, name := range d.YFields {
		yf, ok := schema.Field(name)
		if !ok {
			return errors.Wrapf(ErrFieldNotFound, "dataset %q has no field %q", ds.Name(), name)
		}
		if !yf.Kind.Numeric() {
			return errors.Wrapf(ErrFieldType, "dataset %q field %q", ds.Name(), name)
		}
		yfs = append(yfs, yf)
	}

	records := ds.Records()
	w.Series = make([]Series, len(yfs))
	for i, yf := range yfs {
		s := Series{
			Field:  yf.Name,
			Label:  yf.DisplayLabel(),
			Unit:   yf.Unit,
			Color:  palette.Color(i),
			Points: make([]Point, 0, len(records)),
		}
		for j, rec := range records {
			xv, _ := rec.Get(xf.Name)
			yv, _ := rec.Get(yf.Name)
			y, _ := yv.Float()
			x, numeric := xv.Float()
			if !numeric {
				x = float64(j)
			}
			s.Points = append(s.Points, Point{X: x, Label: xv.String(), Y: y})
		}
		w.Series[i] = s
	}

	w.XLabel = d.Hints.XLabel
	if w.XLabel == "" {
		w.XLabel = xf.DisplayLabel()
	}
	w.YLabel = d.Hints.YLabel
	return nil
}

func renderPie(w *Widget, d catalog.Descriptor, ds *dataset.Dataset, palette Palette) error {
	schema := ds.Schema()

	lf, ok := schema.Field(d.LabelField)
	if !ok {
		return errors.Wrapf(ErrFieldNotFound, "dataset %q has no label field %q", ds.Name(), d.LabelField)
	}
	vf, ok := schema.Field(d.ValueField)
	if !ok {
		return errors.Wrapf(ErrFieldNotFound, "dataset %q has no value field %q", ds.Name(), d.ValueField)
	}
	if !vf.Kind.Numeric() {
		return errors.Wrapf(ErrFieldType, "dataset %q field %q", ds.Name(), vf.Name)
	}

	records := ds.Records()
	slices := make([]Slice, 0, len(records))
	var total float64
	for i, rec := range records {
		lv, _ := rec.Get(lf.Name)
		vv, _ := rec.Get(vf.Name)
		v, _ := vv.Float()
		if v < 0 {
			return errors.Wrapf(ErrInvalidShare, "dataset %q slice %q has value %s", ds.Name(), lv.String(), numfmt.Value(v))
		}
		total += v
		slices = append(slices, Slice{Name: lv.String(), Value: v, Color: palette.Color(i)})
	}
	// Values are kept as authored; Share only scales the drawing.
	if total > 0 {
		for i := range slices {
			slices[i].Share = slices[i].Value / total
		}
	}
	w.Slices = slices
	return nil
}

func renderGrid(w *Widget, ds *dataset.Dataset) {
	fields := ds.Schema().Fields()
	g := &Grid{Columns: make([]Column, len(fields))}
	for i, f := range fields {
		g.Columns[i] = Column{Field: f.Name, Label: f.DisplayLabel(), Unit: f.Unit}
	}
	for _, rec := range ds.Records() {
		values := rec.Values()
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatCell(v, fields[i].Unit)
		}
		g.Rows = append(g.Rows, row)
	}
	w.Grid = g
}

func formatCell(v dataset.Value, unit string) string {
	f, ok := v.Float()
	if !ok {
		return v.String()
	}
	if v.Kind() == dataset.KindInt && unit == "" {
		return strconv.FormatInt(int64(f), 10)
	}
	return numfmt.WithUnit(f, unit)
}
