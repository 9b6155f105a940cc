package catalog

import "slices"

// Kind selects how a widget is rendered.
type Kind string

const (
	KindLine  Kind = "line-series"
	KindBar   Kind = "bar-series"
	KindPie   Kind = "pie-breakdown"
	KindTable Kind = "tabular-grid"
	KindText  Kind = "static-text-block"
)

// Valid reports whether k is a known widget kind.
func (k Kind) Valid() bool {
	switch k {
	case KindLine, KindBar, KindPie, KindTable, KindText:
		return true
	}
	return false
}

// NeedsData reports whether the kind reads a dataset.
func (k Kind) NeedsData() bool {
	return k != KindText
}

// Hints are display-only settings for a widget.
type Hints struct {
	Colors []string `json:"colors,omitempty" toml:"colors"`
	XLabel string   `json:"x_label,omitempty" toml:"x_label"`
	YLabel string   `json:"y_label,omitempty" toml:"y_label"`
}

// Link is an external reference shown inside a text block.
type Link struct {
	Label string `json:"label" toml:"label"`
	URL   string `json:"url" toml:"url"`
}

// TextBlock is pre-authored content rendered verbatim.
type TextBlock struct {
	Heading    string   `json:"heading,omitempty" toml:"heading"`
	Paragraphs []string `json:"paragraphs,omitempty" toml:"paragraphs"`
	Bullets    []string `json:"bullets,omitempty" toml:"bullets"`
	Links      []Link   `json:"links,omitempty" toml:"links"`
}

// Clone returns a copy of t that shares no slices with it.
func (t TextBlock) Clone() TextBlock {
	t.Paragraphs = slices.Clone(t.Paragraphs)
	t.Bullets = slices.Clone(t.Bullets)
	t.Links = slices.Clone(t.Links)
	return t
}

// Descriptor is the authored description of one widget.
//
// Line and bar series read XField and YFields; pie breakdowns read LabelField
// and ValueField; tables read the whole dataset; text blocks read only Text.
type Descriptor struct {
	Kind       Kind       `json:"kind" toml:"kind"`
	Title      string     `json:"title,omitempty" toml:"title"`
	Caption    string     `json:"caption,omitempty" toml:"caption"`
	Note       string     `json:"note,omitempty" toml:"note"`
	Dataset    string     `json:"dataset,omitempty" toml:"dataset"`
	XField     string     `json:"x_field,omitempty" toml:"x_field"`
	YFields    []string   `json:"y_fields,omitempty" toml:"y_fields"`
	LabelField string     `json:"label_field,omitempty" toml:"label_field"`
	ValueField string     `json:"value_field,omitempty" toml:"value_field"`
	Hints      Hints      `json:"hints,omitempty" toml:"hints"`
	Text       *TextBlock `json:"text,omitempty" toml:"text"`
}

func cloneDescriptors(in []Descriptor) []Descriptor {
	if in == nil {
		return nil
	}
	out := make([]Descriptor, len(in))
	for i, d := range in {
		d.YFields = slices.Clone(d.YFields)
		d.Hints.Colors = slices.Clone(d.Hints.Colors)
		if d.Text != nil {
			t := d.Text.Clone()
			d.Text = &t
		}
		out[i] = d
	}
	return out
}
